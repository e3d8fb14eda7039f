package ai

import (
	"github.com/abadojack/whatlanggo"

	"github.com/arnav-motiramani/daily-doodles/pkg/audio"
)

const (
	MODEL_BASE_LANGUAGE_EN = "en"
	MODEL_BASE_LANGUAGE_CN = "zh-CN"
)

type ModelName struct {
	ChatModel string
	LiveModel string
}

// PromptResult is a generated reflective writing prompt.
type PromptResult struct {
	Text  string
	Model string
}

// AnalyzeResult is the structured entry analysis: one mood word and one
// insight sentence.
type AnalyzeResult struct {
	Mood    string `json:"mood"`
	Insight string `json:"insight"`
	Model   string `json:"-"`
}

type TranscriptEvent struct {
	Text string
}

// TranscriptionSession is a live audio-in, text-out session. Events is
// closed when the remote side ends the session; Close is idempotent.
type TranscriptionSession interface {
	SendAudio(chunk audio.Chunk) error
	Events() <-chan TranscriptEvent
	Close() error
}

// DetectLanguage guesses the language of a journal entry so the model
// answers in kind.
func DetectLanguage(content string) string {
	info := whatlanggo.Detect(content)
	if info.Lang == whatlanggo.Cmn {
		return MODEL_BASE_LANGUAGE_CN
	}
	return MODEL_BASE_LANGUAGE_EN
}
