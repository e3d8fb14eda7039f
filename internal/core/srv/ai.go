package srv

import (
	"context"
	"errors"
	"os"

	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
	"github.com/arnav-motiramani/daily-doodles/pkg/ai/gemini"
	"github.com/arnav-motiramani/daily-doodles/pkg/ai/openai"
)

type PromptAI interface {
	GenerateJournalPrompt(ctx context.Context, name string) (ai.PromptResult, error)
	Lang() string
}

type AnalyzeAI interface {
	AnalyzeEntry(ctx context.Context, content string) (ai.AnalyzeResult, error)
}

type TranscribeAI interface {
	OpenTranscription(ctx context.Context) (ai.TranscriptionSession, error)
}

type AIDriver interface {
	PromptAI
	AnalyzeAI
	TranscribeAI
}

type AIConfig struct {
	Gemini Gemini `toml:"gemini"`
	Openai Openai `toml:"openai"`
	// Usage list
	// prompt
	// analyze
	// transcribe
	Usage map[string]string `toml:"usage"`
}

func (c *AIConfig) FromENV() {
	c.Usage = make(map[string]string)
	c.Usage["prompt"] = os.Getenv("DOODLES_AI_USAGE_PROMPT")
	c.Usage["analyze"] = os.Getenv("DOODLES_AI_USAGE_ANALYZE")
	c.Usage["transcribe"] = os.Getenv("DOODLES_AI_USAGE_TRANSCRIBE")

	c.Gemini.FromENV()
	c.Openai.FromENV()
}

type Gemini struct {
	Token     string `toml:"token"`
	ChatModel string `toml:"chat_model"`
	LiveModel string `toml:"live_model"`
}

func (c *Gemini) FromENV() {
	c.Token = os.Getenv("DOODLES_AI_GEMINI_TOKEN")
	c.ChatModel = os.Getenv("DOODLES_AI_GEMINI_CHAT_MODEL")
	c.LiveModel = os.Getenv("DOODLES_AI_GEMINI_LIVE_MODEL")
}

func (cfg *Gemini) Install(root *AI) {
	if cfg.Token == "" {
		return
	}
	var driver any
	driver = gemini.New(cfg.Token, ai.ModelName{
		ChatModel: cfg.ChatModel,
		LiveModel: cfg.LiveModel,
	})

	installAI(root, gemini.NAME, driver)
}

type Openai struct {
	Token     string `toml:"token"`
	Endpoint  string `toml:"endpoint"`
	ChatModel string `toml:"chat_model"`
}

func (c *Openai) FromENV() {
	c.Token = os.Getenv("DOODLES_AI_OPENAI_TOKEN")
	c.Endpoint = os.Getenv("DOODLES_AI_OPENAI_ENDPOINT")
	c.ChatModel = os.Getenv("DOODLES_AI_OPENAI_CHAT_MODEL")
}

func (cfg *Openai) Install(root *AI) {
	if cfg.Token == "" {
		return
	}
	var driver any
	driver = openai.New(cfg.Token, cfg.Endpoint, ai.ModelName{
		ChatModel: cfg.ChatModel,
	})

	installAI(root, openai.NAME, driver)
}

type AI struct {
	promptDrivers     map[string]PromptAI
	analyzeDrivers    map[string]AnalyzeAI
	transcribeDrivers map[string]TranscribeAI

	promptUsage     map[string]PromptAI
	analyzeUsage    map[string]AnalyzeAI
	transcribeUsage map[string]TranscribeAI

	promptDefault     PromptAI
	analyzeDefault    AnalyzeAI
	transcribeDefault TranscribeAI
}

func (s *AI) GenerateJournalPrompt(ctx context.Context, name string) (ai.PromptResult, error) {
	if d := s.promptUsage["prompt"]; d != nil {
		return d.GenerateJournalPrompt(ctx, name)
	}
	return s.promptDefault.GenerateJournalPrompt(ctx, name)
}

func (s *AI) Lang() string {
	if d := s.promptUsage["prompt"]; d != nil {
		return d.Lang()
	}
	return s.promptDefault.Lang()
}

func (s *AI) AnalyzeEntry(ctx context.Context, content string) (ai.AnalyzeResult, error) {
	if d := s.analyzeUsage["analyze"]; d != nil {
		return d.AnalyzeEntry(ctx, content)
	}
	return s.analyzeDefault.AnalyzeEntry(ctx, content)
}

var (
	ERROR_UNSUPPORTED_FEATURE = errors.New("Unsupported feature")
)

// Option Feature
func (s *AI) OpenTranscription(ctx context.Context) (ai.TranscriptionSession, error) {
	if d := s.transcribeUsage["transcribe"]; d != nil {
		return d.OpenTranscription(ctx)
	}

	if s.transcribeDefault == nil {
		return nil, ERROR_UNSUPPORTED_FEATURE
	}
	return s.transcribeDefault.OpenTranscription(ctx)
}

func installAI(a *AI, name string, driver any) {
	if d, ok := driver.(PromptAI); ok {
		a.promptDrivers[name] = d
	}

	if d, ok := driver.(AnalyzeAI); ok {
		a.analyzeDrivers[name] = d
	}

	if d, ok := driver.(TranscribeAI); ok {
		a.transcribeDrivers[name] = d
	}
}

func SetupAI(cfg AIConfig) (*AI, error) {
	a := &AI{
		promptDrivers:     make(map[string]PromptAI),
		promptUsage:       make(map[string]PromptAI),
		analyzeDrivers:    make(map[string]AnalyzeAI),
		analyzeUsage:      make(map[string]AnalyzeAI),
		transcribeDrivers: make(map[string]TranscribeAI),
		transcribeUsage:   make(map[string]TranscribeAI),
	}

	cfg.Gemini.Install(a)
	cfg.Openai.Install(a)

	for k, v := range cfg.Usage {
		switch k {
		case "prompt":
			a.promptUsage[k] = a.promptDrivers[v]
		case "analyze":
			a.analyzeUsage[k] = a.analyzeDrivers[v]
		case "transcribe":
			a.transcribeUsage[k] = a.transcribeDrivers[v]
		}
	}

	for _, v := range a.promptDrivers {
		a.promptDefault = v
		break
	}

	for _, v := range a.analyzeDrivers {
		a.analyzeDefault = v
		break
	}

	for _, v := range a.transcribeDrivers {
		a.transcribeDefault = v
		break
	}

	if a.promptDefault == nil || a.analyzeDefault == nil {
		panic("AI driver of prompt and analyze must be set")
	}

	return a, nil
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		ai, err := SetupAI(cfg)
		if err != nil {
			panic(err)
		}
		s.ai = ai
	}
}
