package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/greeshma-prabhu/marketing-tool/config"
)

// OpenAIClient implements LLMClient using the official openai-go SDK
// (chat completions).
type OpenAIClient struct {
	model   string
	opts    []option.RequestOption
	timeout time.Duration
}

func NewOpenAIClient(cfg *config.LLMConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4-turbo-preview"
	}

	return &OpenAIClient{
		model:   model,
		opts:    opts,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Complete sends a single prompt and returns the generated text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned empty choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai returned empty response")
	}

	return text, nil
}
