package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/arnav-motiramani/daily-doodles/internal/logic/v1"
)

func TestAppendTranscript(t *testing.T) {
	assert.Equal(t, "hello", v1.AppendTranscript("", "hello"))
	assert.Equal(t, "hello world", v1.AppendTranscript("hello", "world"))
	assert.Equal(t, "hello world", v1.AppendTranscript("hello ", "world"))
	assert.Equal(t, "hello\nworld", v1.AppendTranscript("hello\n", "world"))
	assert.Equal(t, "hello\tworld", v1.AppendTranscript("hello\t", "world"))
	assert.Equal(t, "hello world", v1.AppendTranscript("hello ", "world"))
	assert.Equal(t, "hello", v1.AppendTranscript("hello", ""))
}

func TestAppendTranscriptIncremental(t *testing.T) {
	content := "Today I went"
	for _, chunk := range []string{"to the", "park and", "", "felt calm."} {
		content = v1.AppendTranscript(content, chunk)
	}
	assert.Equal(t, "Today I went to the park and felt calm.", content)
}
