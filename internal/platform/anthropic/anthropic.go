// Package anthropic implements generation.Generator with the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/phrazzld/control-validator/internal/generation"
)

// ProviderName identifies this provider in configuration and logs.
const ProviderName = "anthropic"

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-5-haiku-latest"

// Config holds the connection settings for the Anthropic API.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

// Generator sends the prompt as a single user message.
type Generator struct {
	logger *slog.Logger
	client sdk.Client
	params generation.Params
}

// NewGenerator creates a new Anthropic-backed generator. SDK retries are
// disabled so that each request makes exactly one provider call.
func NewGenerator(logger *slog.Logger, cfg Config, params generation.Params) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: Anthropic API key cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		logger: logger,
		client: sdk.NewClient(opts...),
		params: params.WithDefaults(DefaultModel),
	}, nil
}

// Model returns the configured model identifier.
func (g *Generator) Model() string {
	return g.params.Model
}

// Generate returns the concatenated text blocks of the reply, trimmed of
// surrounding whitespace.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	ctx, cancel := g.params.WithTimeout(ctx)
	defer cancel()

	g.logger.DebugContext(ctx, "Making Anthropic API call",
		"model", g.params.Model,
		"prompt_length", len(prompt))

	start := time.Now()
	message, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(g.params.Model),
		MaxTokens:   int64(g.params.MaxTokens),
		Temperature: sdk.Float(g.params.Temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", generation.NewProviderError(ProviderName, err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case sdk.TextBlock:
			sb.WriteString(b.Text)
		}
	}
	if sb.Len() == 0 {
		return "", generation.NewProviderError(ProviderName,
			fmt.Errorf("%w: no text content returned", generation.ErrInvalidResponse))
	}

	text := strings.TrimSpace(sb.String())
	g.logger.InfoContext(ctx, "Anthropic API call successful",
		"model", g.params.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"output_tokens", message.Usage.OutputTokens)

	return text, nil
}
