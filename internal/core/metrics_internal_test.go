package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricName(t *testing.T) {
	assert.Equal(t, "daily_doodles", metricName("daily-doodles"))
	assert.Equal(t, "core", metricName("core"))
	assert.Equal(t, "_lives", metricName("9lives"))
	assert.Equal(t, "a_b_c1", metricName("a.b c1"))
}

func TestNewMetricsHyphenatedNamespace(t *testing.T) {
	assert.NotPanics(t, func() {
		m := NewMetrics("daily-doodles", "core")
		m.RecordAPI("/api/v1/journal", "GET", 200, 0)
		m.RecordAI("prompt", nil)
	})
}
