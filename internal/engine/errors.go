package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a variant cannot build a session
// from its configuration (zero-sized field, negative lives, ...).
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError names the offending configuration field.
// It unwraps to ErrInvalidConfiguration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Invalid is shorthand for building a *ConfigError.
func Invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
