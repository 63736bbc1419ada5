package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request fails validation.
	// It is usually wrapped in a *ValidationError naming the offending fields.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports every field that failed validation.
type ValidationError struct {
	// Fields holds the wire names of the missing or invalid fields, in declaration order.
	Fields []string
	Reason string
	Err    error
}

// NewValidationError creates a ValidationError for the given fields.
func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: reason, Err: ErrValidation}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
