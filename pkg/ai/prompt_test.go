package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
)

func TestBuildJournalPrompt(t *testing.T) {
	prompt := ai.BuildJournalPrompt("Ava")
	assert.Contains(t, prompt, "Ava")
	assert.Contains(t, prompt, "mindfulness or personal growth")
}

func TestBuildAnalyzePromptQuotesEntry(t *testing.T) {
	prompt := ai.BuildAnalyzePrompt(`today was "strange" but good`)
	assert.Contains(t, prompt, `\"strange\"`)
}

func TestBuildAnalyzePromptMatchesEntryLanguage(t *testing.T) {
	en := ai.BuildAnalyzePrompt("I walked by the river and felt at ease today.")
	assert.False(t, strings.Contains(en, "Reply in Chinese."))

	cn := ai.BuildAnalyzePrompt("今天我在河边散步，感觉很平静，心情不错。")
	assert.True(t, strings.HasSuffix(cn, "Reply in Chinese."))
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, ai.MODEL_BASE_LANGUAGE_CN, ai.DetectLanguage("今天我在河边散步，感觉很平静。"))
	assert.Equal(t, ai.MODEL_BASE_LANGUAGE_EN, ai.DetectLanguage("I went for a long walk today."))
}

func TestAnalyzeFallbacks(t *testing.T) {
	fallback := ai.FallbackAnalyze()
	assert.Equal(t, "Thoughtful", fallback.Mood)
	assert.Equal(t, "Every word you write helps clarify your path.", fallback.Insight)

	malformed := ai.MalformedAnalyze()
	assert.Equal(t, "Reflective", malformed.Mood)
	assert.Equal(t, "Your thoughts are a bridge to your inner peace.", malformed.Insight)
}
