// Package errors provides the argument validation error shared by the tool
// packages. Device-side problems are never Go errors; they come back as text.
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError indicates invalid tool arguments, detected before any
// command is sent to the device.
type ValidationError struct {
	Field   string // argument name that failed validation
	Value   string // the invalid value (empty for secrets)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Required reports a missing argument.
func Required(field string) *ValidationError {
	return NewValidationError(field, "", "is required")
}

// OutOfRange reports an integer outside [lo, hi].
func OutOfRange(field string, value, lo, hi int) *ValidationError {
	return NewValidationError(field, strconv.Itoa(value), fmt.Sprintf("must be between %d and %d", lo, hi))
}

// NotOneOf reports a value outside an enumeration.
func NotOneOf(field, value string, allowed []string) *ValidationError {
	return NewValidationError(field, value, "must be one of: "+strings.Join(allowed, ", "))
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
