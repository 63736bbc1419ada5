package generation

import (
	"errors"
)

// Common errors returned by the generation package
var (
	// ErrEmptyPrompt is returned when Generate is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidResponse is returned when the provider response has no usable completion.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the provider blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ProviderError wraps a failure reported by a provider SDK: transport,
// authentication, quota or a malformed response. Its message is the provider's
// own message so that it can be surfaced to callers unchanged.
type ProviderError struct {
	Provider string
	Err      error
}

// NewProviderError wraps err for provider. It returns nil when err is nil.
func NewProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Provider: provider, Err: err}
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err originated in a provider call.
func IsProviderError(err error) bool {
	var pErr *ProviderError
	return errors.As(err, &pErr)
}
