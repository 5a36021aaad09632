// Package errors provides the error taxonomy used by bwcalc.
package errors

import (
	"errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeUsage indicates a missing or invalid command-line argument
	TypeUsage Type = "USAGE_ERROR"

	// TypeInput indicates that interactive input could not be read
	TypeInput Type = "INPUT_ERROR"

	// TypeDomain indicates values that are well-formed but cannot be calculated with
	TypeDomain Type = "DOMAIN_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates a broken internal invariant
	TypeInternal Type = "INTERNAL_ERROR"
)

// ErrNonPositiveDuration is returned when the entered duration adds up to zero seconds.
var ErrNonPositiveDuration = Domain("total transfer time must be greater than zero")

// Error represents a categorized error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with a category and message
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType reports whether err, or an error it wraps, has the given type.
func IsType(err error, t Type) bool {
	e, ok := As(err)
	return ok && e.Type == t
}

// Message returns the bare message of a categorized error, or err.Error() otherwise.
func Message(err error) string {
	if e, ok := As(err); ok {
		return e.Message
	}
	return err.Error()
}

// Usage creates a usage error
func Usage(message string) *Error {
	return New(TypeUsage, message)
}

// Input creates an input error
func Input(message string, cause error) *Error {
	return Wrap(TypeInput, message, cause)
}

// Domain creates a domain error
func Domain(message string) *Error {
	return New(TypeDomain, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(TypeInternal, message)
}
