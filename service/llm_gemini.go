package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/greeshma-prabhu/marketing-tool/config"
	"google.golang.org/genai"
)

// GeminiClient implements LLMClient using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiClient(cfg *config.LLMConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-pro"
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Complete sends a single prompt and returns the generated text.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}

	return text, nil
}
