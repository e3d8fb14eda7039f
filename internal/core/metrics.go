package core

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	aiRequests  *prometheus.CounterVec
}

// metricName rewrites runes prometheus rejects, hyphenated service
// names included, so MustRegister cannot blow up on a bad namespace.
func metricName(s string) string {
	out := []rune(s)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

func NewMetrics(namespace, subsystem string) *Metrics {
	namespace = metricName(namespace)
	subsystem = metricName(subsystem)
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "api_requests_total",
			Help:      "Total api requests by path, method and status.",
		}, []string{"path", "method", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "api_request_duration_seconds",
			Help:      "Api request latency distributions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method"}),
		aiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ai_requests_total",
			Help:      "Total ai driver calls by usage and result.",
		}, []string{"usage", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.apiRequests,
		m.apiLatency,
		m.aiRequests,
	)
	return m
}

func (m *Metrics) RecordAPI(path, method string, status int, elapsed time.Duration) {
	m.apiRequests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.apiLatency.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordAI(usage string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.aiRequests.WithLabelValues(usage, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
