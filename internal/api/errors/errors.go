package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "speech-studio/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadRequest         ErrorKind = "bad_request"
	KindUnsupportedMedia   ErrorKind = "unsupported_media"
	KindUpstream           ErrorKind = "upstream"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return &APIError{
		Kind:    KindServiceUnavailable,
		Message: message,
	}
}

// NewUpstreamError reports a failed call to a cloud speech service
func NewUpstreamError(message string) *APIError {
	return &APIError{
		Kind:    KindUpstream,
		Message: message,
	}
}

// WrapError wraps an existing error with API error context
func WrapError(err error, kind ErrorKind, message string) *APIError {
	if err == nil {
		return nil
	}

	apiErr := &APIError{
		Kind:    kind,
		Message: message,
	}

	// If the original error is already an APIError, preserve details
	if origAPIErr, ok := err.(*APIError); ok {
		if origAPIErr.Details != nil {
			apiErr.Details = origAPIErr.Details
		}
		if origAPIErr.Code != "" {
			apiErr.Code = origAPIErr.Code
		}
	}

	return apiErr
}

// FromError maps a domain error to its API error. Unknown errors become
// internal errors without leaking their message.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var extErr *apperrors.ExternalError
	switch {
	case stderrors.Is(err, apperrors.ErrMissingInput):
		return WrapError(err, KindBadRequest, err.Error())
	case stderrors.Is(err, apperrors.ErrUnsupportedFormat):
		return WrapError(err, KindUnsupportedMedia, err.Error())
	case stderrors.Is(err, apperrors.ErrNotFound):
		return WrapError(err, KindNotFound, "file not found")
	case stderrors.As(err, &extErr):
		return &APIError{
			Kind:    KindUpstream,
			Message: fmt.Sprintf("speech service %s failed", extErr.Operation),
			Details: map[string]string{"provider": extErr.Provider, "error": extErr.Err.Error()},
		}
	case stderrors.Is(err, apperrors.ErrExternalService):
		return NewUpstreamError("speech service failed")
	default:
		return NewInternalError("internal server error")
	}
}
