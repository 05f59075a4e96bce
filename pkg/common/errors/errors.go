package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the taskpool library

var (
	// ErrClosed indicates that an operation was attempted on a closed pool
	ErrClosed = errors.New("pool is closed")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNilTask indicates that a nil task was submitted
	ErrNilTask = errors.New("task is nil")
)

// ValidationError describes a rejected configuration or argument value.
// It wraps ErrInvalidConfiguration so callers can match with errors.Is.
type ValidationError struct {
	Module string      // component that rejected the value, e.g. "taskpool"
	Field  string      // parameter name, e.g. "workers"
	Value  interface{} // the offending value
	Reason string      // why the value was rejected
	Hint   string      // optional guidance for fixing the value
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches guidance to the error and returns the same instance
// for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap makes ValidationError match ErrInvalidConfiguration via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsClosed returns true if the error indicates an operation on a closed pool
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsValidationError returns true if the error is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
