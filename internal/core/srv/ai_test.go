package srv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
)

type stubChatDriver struct{}

func (stubChatDriver) GenerateJournalPrompt(ctx context.Context, name string) (ai.PromptResult, error) {
	return ai.PromptResult{Text: "hello " + name}, nil
}

func (stubChatDriver) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_EN
}

func (stubChatDriver) AnalyzeEntry(ctx context.Context, content string) (ai.AnalyzeResult, error) {
	return ai.AnalyzeResult{Mood: "Calm", Insight: "ok"}, nil
}

func TestSetupAIRequiresCoreDrivers(t *testing.T) {
	assert.PanicsWithValue(t, "AI driver of prompt and analyze must be set", func() {
		SetupAI(AIConfig{})
	})
}

func TestInstallAIRegistersCapabilities(t *testing.T) {
	a := &AI{
		promptDrivers:     make(map[string]PromptAI),
		promptUsage:       make(map[string]PromptAI),
		analyzeDrivers:    make(map[string]AnalyzeAI),
		analyzeUsage:      make(map[string]AnalyzeAI),
		transcribeDrivers: make(map[string]TranscribeAI),
		transcribeUsage:   make(map[string]TranscribeAI),
	}

	installAI(a, "stub", stubChatDriver{})
	assert.NotNil(t, a.promptDrivers["stub"])
	assert.NotNil(t, a.analyzeDrivers["stub"])
	assert.Empty(t, a.transcribeDrivers)

	_, err := a.OpenTranscription(context.Background())
	assert.Equal(t, ERROR_UNSUPPORTED_FEATURE, err)
}
