package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/control-validator/internal/config"
	"github.com/phrazzld/control-validator/internal/generation"
	"github.com/phrazzld/control-validator/internal/platform/anthropic"
	"github.com/phrazzld/control-validator/internal/platform/cohere"
	"github.com/phrazzld/control-validator/internal/platform/gemini"
	"github.com/phrazzld/control-validator/internal/platform/openai"
)

// newGenerator builds the generator for the configured provider.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	params := generation.Params{
		Model:       cfg.ModelName,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}

	switch cfg.Provider {
	case cohere.ProviderName:
		return cohere.NewGenerator(logger, cohere.Config{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL}, params)
	case gemini.ProviderName:
		return gemini.NewGeminiGenerator(ctx, logger, gemini.Config{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL}, params)
	case openai.ProviderName:
		return openai.NewGenerator(logger, openai.Config{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL}, params)
	case anthropic.ProviderName:
		return anthropic.NewGenerator(logger, anthropic.Config{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL}, params)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
