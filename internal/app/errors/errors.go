package errors

import (
	"fmt"
)

// Common error types
var (
	// Input errors
	ErrMissingInput      = New("missing input")
	ErrUnsupportedFormat = New("unsupported format")

	// Storage errors
	ErrNotFound        = New("file not found")
	ErrFileReadFailed  = New("file read failed")
	ErrFileWriteFailed = New("file write failed")

	// Configuration errors
	ErrMissingAPIKey  = New("API key is required")
	ErrInvalidConfig  = New("invalid configuration")
	ErrUnknownBackend = New("unknown backend")

	// Provider errors
	ErrProviderNotFound = New("provider not found")
	ErrExternalService  = New("external service failure")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message && e.cause == nil && t.cause == nil
}

// ExternalError is returned when a cloud speech service call fails.
// It matches ErrExternalService and unwraps to the provider error.
type ExternalError struct {
	Provider  string
	Operation string
	Err       error
}

// External wraps a provider error as an external service failure
func External(provider, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ExternalError{Provider: provider, Operation: operation, Err: err}
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Operation, e.Err)
}

func (e *ExternalError) Unwrap() error {
	return e.Err
}

func (e *ExternalError) Is(target error) bool {
	return target == ErrExternalService
}

// Helper functions for common patterns

// MissingInput returns an error for an absent file or text field
func MissingInput(field string) error {
	return Wrapf(ErrMissingInput, "%s is required", field)
}

// UnsupportedFormat returns an error for a file outside the allow-list
func UnsupportedFormat(name string, allowed []string) error {
	return Wrapf(ErrUnsupportedFormat, "%s: allowed extensions are %v", name, allowed)
}

// NotFound returns an error for stored files that were not found
func NotFound(collection string, name string) error {
	return Wrapf(ErrNotFound, "%s/%s", collection, name)
}

// InvalidField returns an error for invalid configuration values
func InvalidField(field string, reason string) error {
	return Wrapf(ErrInvalidConfig, "%s is invalid: %s", field, reason)
}
