// Package errors provides structured error handling for the application
// with error codes that map onto HTTP status codes.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents an error code
type ErrorCode string

// Error codes for the assistant pipeline and its adapters
const (
	// Client errors (4xx)
	CodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	CodeNotFound       ErrorCode = "NOT_FOUND"

	// Server errors (5xx)
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	CodeDependency    ErrorCode = "DEPENDENCY_ERROR"
	CodeCompletion    ErrorCode = "COMPLETION_ERROR"
	CodePersistence   ErrorCode = "PERSISTENCE_ERROR"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status code for the error.
// Caller-input errors map to the 4xx class; upstream failures
// (data store, completion engine) map to 502.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDependency, CodeCompletion:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewInvalidRequestError creates an error for malformed or incomplete caller input
func NewInvalidRequestError(details string) *AppError {
	return NewAppError(CodeInvalidRequest, "Invalid request", details)
}

// NewConfigurationError creates an error for a missing or invalid static
// precondition. These are fatal to the process, not per-request recoverable.
func NewConfigurationError(details string) *AppError {
	return NewAppError(CodeConfiguration, "Configuration error", details)
}

// NewDependencyError creates an error for a data-store read failure.
// A row-not-found result is not a dependency error; see the repository
// contracts for the soft-absence convention.
func NewDependencyError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDependency,
		"Data store unavailable",
		fmt.Sprintf("failed to %s", operation),
	).WithCause(cause)
}

// NewCompletionError creates an error for a failed or malformed response
// from the completion engine, carrying the upstream status when known.
func NewCompletionError(details string, cause error) *AppError {
	return NewAppError(CodeCompletion, "Completion engine error", details).WithCause(cause)
}

// NewPersistenceError creates an error for a write failure after a successful
// completion. Callers are expected to log it rather than surface it.
func NewPersistenceError(operation string, cause error) *AppError {
	return NewAppError(
		CodePersistence,
		"Persistence failure",
		fmt.Sprintf("failed to %s", operation),
	).WithCause(cause)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(CodeNotFound, fmt.Sprintf("%s not found", resource), "")
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}
