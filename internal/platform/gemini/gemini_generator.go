package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/control-validator/internal/generation"
	"google.golang.org/genai"
)

// ProviderName identifies this provider in configuration and logs.
const ProviderName = "gemini"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Config holds the connection settings for the Gemini API.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	params generation.Params
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: API key and optional endpoint
//   - params: model, token cap and temperature; an empty model or zero token
//     cap take defaults, the temperature is sent as given
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg Config,
	params generation.Params,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger,
		client: client,
		params: params.WithDefaults(DefaultModel),
	}, nil
}

// Model returns the configured model identifier.
func (g *GeminiGenerator) Model() string {
	return g.params.Model
}

// Generate sends prompt to Gemini and returns the first candidate's text,
// trimmed of surrounding whitespace.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	ctx, cancel := g.params.WithTimeout(ctx)
	defer cancel()

	temperature := float32(g.params.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(g.params.MaxTokens),
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.params.Model,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.params.Model, genai.Text(prompt), config)
	if err != nil {
		return "", generation.NewProviderError(ProviderName, err)
	}

	text, err := firstCandidateText(resp)
	if err != nil {
		return "", generation.NewProviderError(ProviderName, err)
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", g.params.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"completion_length", len(text))

	return text, nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	switch {
	case resp == nil:
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	case len(resp.Candidates) == 0 || resp.Candidates[0] == nil:
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", fmt.Errorf("%w", generation.ErrContentBlocked)
	case resp.Candidates[0].Content == nil:
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate text", generation.ErrInvalidResponse)
	}
	return text, nil
}
