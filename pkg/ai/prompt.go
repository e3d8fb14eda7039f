package ai

import "fmt"

const (
	PROMPT_JOURNAL_PROMPT_EN = "Generate a short, deeply reflective journaling prompt for %s. Focus on mindfulness or personal growth."

	PROMPT_ANALYZE_ENTRY_EN = "Analyze this journal entry. Provide a 1-word mood and a one-sentence mindful insight.\n\nEntry: %q"

	// TRANSCRIBE_SYSTEM_INSTRUCTION keeps the live model silent; the
	// session exists only for input transcription events.
	TRANSCRIBE_SYSTEM_INSTRUCTION = "You are a silent transcription assistant. Transcribe the user's spoken journal entry exactly as said. Do not respond to them or provide any spoken output. Only provide the transcription in the metadata."
)

const (
	// PromptTemperature and PromptMaxTokens bound prompt generation.
	PromptTemperature = 0.8
	PromptMaxTokens   = 60

	// AnalyzeMaxInputTokens rejects oversized entries before they reach
	// the model.
	AnalyzeMaxInputTokens = 8000
)

const (
	// FALLBACK_PROMPT is returned when prompt generation fails.
	FALLBACK_PROMPT = "Reflect on a moment today that made you feel present."
	// EMPTY_RESPONSE_PROMPT is returned when the model answers with
	// nothing usable.
	EMPTY_RESPONSE_PROMPT = "What's one thing that felt meaningful today?"
)

// FallbackAnalyze is stored when analysis fails outright.
func FallbackAnalyze() AnalyzeResult {
	return AnalyzeResult{
		Mood:    "Thoughtful",
		Insight: "Every word you write helps clarify your path.",
	}
}

// MalformedAnalyze is stored when the model answered but the structured
// payload could not be decoded.
func MalformedAnalyze() AnalyzeResult {
	return AnalyzeResult{
		Mood:    "Reflective",
		Insight: "Your thoughts are a bridge to your inner peace.",
	}
}

func BuildJournalPrompt(name string) string {
	return fmt.Sprintf(PROMPT_JOURNAL_PROMPT_EN, name)
}

// BuildAnalyzePrompt asks for the analysis in the language the entry
// was written in.
func BuildAnalyzePrompt(content string) string {
	prompt := fmt.Sprintf(PROMPT_ANALYZE_ENTRY_EN, content)
	if DetectLanguage(content) == MODEL_BASE_LANGUAGE_CN {
		prompt += "\nReply in Chinese."
	}
	return prompt
}
