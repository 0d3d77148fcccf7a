package service

import (
	"context"
	"fmt"

	"github.com/greeshma-prabhu/marketing-tool/config"
)

// LLMClient abstracts the text completion backend so generation code can
// run against a fake in tests. One call per prompt, no retries.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewLLMClient builds the configured backend client. An unknown provider is
// a hard error surfaced at startup, before any generation attempt.
func NewLLMClient(cfg *config.LLMConfig) (LLMClient, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(cfg)
	case "openai":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
