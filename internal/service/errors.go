package service

import (
	"errors"
	"fmt"
)

// ErrNilDependency is returned by constructors given a nil dependency.
var ErrNilDependency = errors.New("required dependency is nil")

// ValidationServiceError wraps unexpected failures of the validation service
// with the operation that produced them.
type ValidationServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ValidationServiceError.
func (e *ValidationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("validation service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationServiceError) Unwrap() error {
	return e.Err
}

// NewValidationServiceError creates a new ValidationServiceError. It returns
// nil when err is nil.
func NewValidationServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
