package config

import (
	"errors"
	"fmt"
)

// ErrMissingRequired is returned (wrapped in a *MissingFieldError) when a
// required setting has no value.
var ErrMissingRequired = errors.New("missing required configuration")

// MissingFieldError names the setting that is absent and the environment
// variable that supplies it.
type MissingFieldError struct {
	Key    string
	EnvVar string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: %s (set %s)", ErrMissingRequired, e.Key, e.EnvVar)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequired
}
