package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/control-validator/internal/domain"
	"github.com/phrazzld/control-validator/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"validation error", domain.NewValidationError("missing required query parameter(s)", "risk"), http.StatusUnprocessableEntity},
		{"wrapped validation sentinel", fmt.Errorf("bind: %w", domain.ErrValidation), http.StatusUnprocessableEntity},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"provider error", generation.NewProviderError("cohere", errors.New("invalid api token")), http.StatusInternalServerError},
		{"provider invalid response", generation.NewProviderError("gemini", generation.ErrInvalidResponse), http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"provider message unchanged", generation.NewProviderError("cohere", errors.New("status code: 401, invalid api token")), "status code: 401, invalid api token"},
		{"wrapped provider error", fmt.Errorf("outer: %w", generation.NewProviderError("openai", errors.New("quota exceeded"))), "quota exceeded"},
		{"validation", domain.NewValidationError("missing required query parameter(s)", "process", "control"), "missing required query parameter(s): process, control"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetErrorDetail(tc.err))
		})
	}
}
