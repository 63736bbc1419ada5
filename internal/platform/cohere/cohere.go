// Package cohere implements generation.Generator on Cohere's Generate endpoint
// using the official cohere-go SDK.
package cohere

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/option"
	"github.com/phrazzld/control-validator/internal/generation"
)

// ProviderName identifies this provider in configuration and logs.
const ProviderName = "cohere"

// DefaultModel is used when no model is configured.
const DefaultModel = "command-xlarge"

// Config holds the connection settings for the Cohere API.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

// Generator calls Cohere's text generation endpoint.
type Generator struct {
	logger *slog.Logger
	client *cohereclient.Client
	params generation.Params
}

// NewGenerator builds a Cohere-backed generator. An empty model or zero max
// tokens take the package defaults; the temperature is sent as given. Each
// Generate call makes a single attempt.
func NewGenerator(logger *slog.Logger, cfg Config, params generation.Params) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: cohere API key cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		cohereclient.WithToken(cfg.APIKey),
		cohereclient.WithMaxAttempts(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, cohereclient.WithBaseURL(cfg.BaseURL))
	}
	client := cohereclient.NewClient(opts...)

	return &Generator{
		logger: logger,
		client: client,
		params: params.WithDefaults(DefaultModel),
	}, nil
}

// Model returns the configured model identifier.
func (g *Generator) Model() string {
	return g.params.Model
}

// Generate sends prompt to Cohere and returns the first generation's text,
// trimmed of surrounding whitespace.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	ctx, cancel := g.params.WithTimeout(ctx)
	defer cancel()

	g.logger.DebugContext(ctx, "Making Cohere API call",
		"model", g.params.Model,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.client.Generate(ctx, &cohere.GenerateRequest{
		Prompt:      prompt,
		Model:       ptr(g.params.Model),
		MaxTokens:   ptr(g.params.MaxTokens),
		Temperature: ptr(g.params.Temperature),
	})
	if err != nil {
		return "", generation.NewProviderError(ProviderName, err)
	}

	if resp == nil || len(resp.Generations) == 0 || resp.Generations[0] == nil {
		return "", generation.NewProviderError(ProviderName,
			fmt.Errorf("%w: no generations returned", generation.ErrInvalidResponse))
	}

	text := strings.TrimSpace(resp.Generations[0].Text)
	if text == "" {
		return "", generation.NewProviderError(ProviderName,
			fmt.Errorf("%w: empty generation text", generation.ErrInvalidResponse))
	}
	g.logger.InfoContext(ctx, "Cohere API call successful",
		"model", g.params.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"completion_length", len(text))

	return text, nil
}

func ptr[T any](v T) *T {
	return &v
}
