package judge

import (
	"context"
	"fmt"

	"github.com/dverney/quizine/internal/store"
)

// New creates a Judge from configuration. When eventRepo is non-nil the
// judge is wrapped so every call is recorded as an event.
func New(ctx context.Context, cfg Config, eventRepo store.JudgeEventRepo) (Judge, error) {
	var base Judge
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIJudge(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicJudge(cfg.Anthropic)
	case "ollama":
		base, err = NewOllamaJudge(cfg.Ollama)
	case "gemini":
		base, err = NewGeminiJudge(ctx, cfg.Gemini)
	case "mock":
		base = NewMockJudge()
	default:
		return nil, fmt.Errorf("unknown judge provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s judge: %w", cfg.Provider, err)
	}

	if eventRepo != nil {
		base = WithLogging(base, eventRepo)
	}
	return base, nil
}

// NewFromEnv builds a Judge from QUIZINE_* environment variables, falling
// back to discovery of standard provider key variables.
func NewFromEnv(ctx context.Context, eventRepo store.JudgeEventRepo) (Judge, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return New(ctx, cfg, eventRepo)
}
