package generation

import (
	"context"
	"time"
)

// Default generation parameters.
const (
	DefaultMaxTokens   = 300
	DefaultTemperature = 0.5
)

// Generator defines the interface for turning a prompt into a completion.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate sends prompt to the provider and returns the first candidate's
	// text with surrounding whitespace removed.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Params are the fixed per-deployment generation settings.
type Params struct {
	// Model is the provider-specific model identifier.
	Model       string
	MaxTokens   int
	Temperature float64
	// Timeout caps each call when positive; zero keeps the SDK default.
	Timeout time.Duration
}

// WithDefaults fills an empty Model with defaultModel and a non-positive
// MaxTokens with DefaultMaxTokens. A zero Temperature is kept; only a negative
// one becomes DefaultTemperature.
func (p Params) WithDefaults(defaultModel string) Params {
	if p.Model == "" {
		p.Model = defaultModel
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = DefaultMaxTokens
	}
	if p.Temperature < 0 {
		p.Temperature = DefaultTemperature
	}
	return p
}

// WithTimeout derives a context bounded by p.Timeout when it is positive.
func (p Params) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.Timeout > 0 {
		return context.WithTimeout(ctx, p.Timeout)
	}
	return context.WithCancel(ctx)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
