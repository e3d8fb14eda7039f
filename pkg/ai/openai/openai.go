package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
)

const (
	NAME = "openai"
)

type Driver struct {
	client *openai.Client
	model  ai.ModelName
}

func New(token, proxy string, model ai.ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_EN
}

func (s *Driver) GenerateJournalPrompt(ctx context.Context, name string) (ai.PromptResult, error) {
	slog.Debug("GenerateJournalPrompt", slog.String("driver", NAME))

	req := openai.ChatCompletionRequest{
		Model:       s.model.ChatModel,
		Temperature: ai.PromptTemperature,
		MaxTokens:   ai.PromptMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: ai.BuildJournalPrompt(name)},
		},
	}

	result := ai.PromptResult{Model: s.model.ChatModel}
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil || len(resp.Choices) != 1 {
		return result, fmt.Errorf("Completion error: err:%v len(choices):%v\n", err, len(resp.Choices))
	}

	result.Text = strings.TrimSpace(resp.Choices[0].Message.Content)
	return result, nil
}

const AnalyzeFuncName = "analyze_entry"

func (s *Driver) AnalyzeEntry(ctx context.Context, content string) (ai.AnalyzeResult, error) {
	slog.Debug("AnalyzeEntry", slog.String("driver", NAME))
	// describe the function & its inputs
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"mood": {
				Type:        jsonschema.String,
				Description: "A single word representing the primary emotion.",
			},
			"insight": {
				Type:        jsonschema.String,
				Description: "A brief, encouraging mindful reflection.",
			},
		},
		Required: []string{"mood", "insight"},
	}

	f := openai.FunctionDefinition{
		Name:        AnalyzeFuncName,
		Description: "Report the mood and mindful insight of a journal entry.",
		Parameters:  params,
	}
	t := openai.Tool{
		Type:     openai.ToolTypeFunction,
		Function: &f,
	}

	dialogue := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: ai.BuildAnalyzePrompt(content)},
	}
	result := ai.AnalyzeResult{
		Model: s.model.ChatModel,
	}
	resp, err := s.client.CreateChatCompletion(ctx,
		openai.ChatCompletionRequest{
			Model:    s.model.ChatModel,
			Messages: dialogue,
			Tools:    []openai.Tool{t},
		},
	)
	if err != nil || len(resp.Choices) != 1 {
		return result, fmt.Errorf("Completion error: err:%v len(choices):%v\n", err, len(resp.Choices))
	}

	var matched bool
	for _, v := range resp.Choices[0].Message.ToolCalls {
		if v.Function.Name != AnalyzeFuncName {
			continue
		}
		if err = json.Unmarshal([]byte(v.Function.Arguments), &result); err != nil {
			return result, fmt.Errorf("failed to unmarshal func call arguments of AnalyzeResult, %w", err)
		}
		matched = true
	}

	if !matched {
		return result, fmt.Errorf("model skipped the %s function call", AnalyzeFuncName)
	}
	return result, nil
}
