package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/control-validator/internal/api/shared"
	"github.com/phrazzld/control-validator/internal/domain"
	"github.com/phrazzld/control-validator/internal/generation"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Incomplete request
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// The request deadline passed while waiting on the provider
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	// Transport, authentication or malformed provider response
	case generation.IsProviderError(err):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorDetail returns the message placed in the detail field of an error
// response. Provider errors surface the provider's own message unchanged.
func GetErrorDetail(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var pErr *generation.ProviderError
	if errors.As(err, &pErr) {
		return pErr.Error()
	}
	return err.Error()
}

// HandleAPIError writes the error response for err. A non-empty detail
// overrides the message derived from err.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	status := MapErrorToStatusCode(err)
	if detail == "" {
		detail = GetErrorDetail(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, detail, err)
}
