package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
)

const (
	NAME = "gemini"

	defaultChatModel = "gemini-3-flash-preview"
	defaultLiveModel = "gemini-2.5-flash-native-audio-preview-12-2025"
)

type Driver struct {
	client *genai.Client
	token  string
	model  ai.ModelName
}

func New(token string, model ai.ModelName) *Driver {
	if model.ChatModel == "" {
		model.ChatModel = defaultChatModel
	}
	if model.LiveModel == "" {
		model.LiveModel = defaultLiveModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(token))
	if err != nil {
		panic(fmt.Errorf("failed to setup gemini client: %w", err))
	}

	return &Driver{
		client: client,
		token:  token,
		model:  model,
	}
}

func (s *Driver) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_EN
}

func (s *Driver) GenerateJournalPrompt(ctx context.Context, name string) (ai.PromptResult, error) {
	slog.Debug("GenerateJournalPrompt", slog.String("driver", NAME))

	model := s.client.GenerativeModel(s.model.ChatModel)
	model.SetTemperature(ai.PromptTemperature)
	model.SetMaxOutputTokens(ai.PromptMaxTokens)

	result := ai.PromptResult{Model: s.model.ChatModel}
	resp, err := model.GenerateContent(ctx, genai.Text(ai.BuildJournalPrompt(name)))
	if err != nil {
		return result, fmt.Errorf("Generation error: %w", err)
	}

	result.Text = strings.TrimSpace(responseText(resp))
	return result, nil
}

func (s *Driver) AnalyzeEntry(ctx context.Context, content string) (ai.AnalyzeResult, error) {
	slog.Debug("AnalyzeEntry", slog.String("driver", NAME))

	model := s.client.GenerativeModel(s.model.ChatModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"mood": {
				Type:        genai.TypeString,
				Description: "A single word representing the primary emotion.",
			},
			"insight": {
				Type:        genai.TypeString,
				Description: "A brief, encouraging mindful reflection.",
			},
		},
		Required: []string{"mood", "insight"},
	}

	result := ai.AnalyzeResult{Model: s.model.ChatModel}
	resp, err := model.GenerateContent(ctx, genai.Text(ai.BuildAnalyzePrompt(content)))
	if err != nil {
		return result, fmt.Errorf("Generation error: %w", err)
	}

	if err = json.Unmarshal([]byte(responseText(resp)), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal structured analyze output, %w", err)
	}
	return result, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
