package core

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when a page is not a recognized package page,
// or when a recognized page does not yield a complete coordinate.
var ErrNoMatch = errors.New("no match")

// ValidationError is returned when a coordinate is built with missing fields.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid coordinate: %s: %s", e.Field, e.Message)
	}
	return "invalid coordinate: " + e.Message
}

// ConfigurationError is returned for invalid catalog entries.
type ConfigurationError struct {
	RegistryID string
	Err        error
}

func (e *ConfigurationError) Error() string {
	if e.RegistryID != "" {
		return fmt.Sprintf("registry %s: %v", e.RegistryID, e.Err)
	}
	return fmt.Sprintf("registry: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
