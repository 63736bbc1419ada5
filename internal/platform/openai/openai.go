// Package openai implements generation.Generator with OpenAI chat completions
// through the sashabaranov/go-openai client.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/control-validator/internal/generation"
	goopenai "github.com/sashabaranov/go-openai"
)

// ProviderName identifies this provider in configuration and logs.
const ProviderName = "openai"

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Config holds the connection settings for the OpenAI API.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint (for example an Azure or proxy
	// deployment); empty uses the SDK default.
	BaseURL string
}

// Generator sends the prompt as a single user message.
type Generator struct {
	logger *slog.Logger
	client *goopenai.Client
	params generation.Params
}

// NewGenerator creates a new OpenAI-backed generator. An empty model or zero max
// tokens take the package defaults; the temperature is sent as given.
func NewGenerator(logger *slog.Logger, cfg Config, params generation.Params) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Generator{
		logger: logger,
		client: goopenai.NewClientWithConfig(clientConfig),
		params: params.WithDefaults(DefaultModel),
	}, nil
}

// Model returns the configured model identifier.
func (g *Generator) Model() string {
	return g.params.Model
}

// Generate returns the first choice's message content, trimmed of surrounding whitespace.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	ctx, cancel := g.params.WithTimeout(ctx)
	defer cancel()

	g.logger.DebugContext(ctx, "Making OpenAI API call",
		"model", g.params.Model,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: g.params.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.params.MaxTokens,
		Temperature: float32(g.params.Temperature),
	})
	if err != nil {
		return "", generation.NewProviderError(ProviderName, err)
	}

	if len(resp.Choices) == 0 {
		return "", generation.NewProviderError(ProviderName,
			fmt.Errorf("%w: no choices returned", generation.ErrInvalidResponse))
	}
	if resp.Choices[0].FinishReason == goopenai.FinishReasonContentFilter {
		return "", generation.NewProviderError(ProviderName, generation.ErrContentBlocked)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", generation.NewProviderError(ProviderName,
			fmt.Errorf("%w: empty message content", generation.ErrInvalidResponse))
	}
	g.logger.InfoContext(ctx, "OpenAI API call successful",
		"model", g.params.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"completion_tokens", resp.Usage.CompletionTokens)

	return text, nil
}
