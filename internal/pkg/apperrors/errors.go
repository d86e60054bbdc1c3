package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrTokenInvalid     = errors.New("invalid token")

	// Authorization errors; raised client-side before any network call
	ErrPermissionDenied = errors.New("permission denied")

	// Request errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Resource errors
	ErrNotFound = errors.New("resource not found")

	// Transport errors; the request never produced a server response
	ErrTransport = errors.New("server unreachable")
)

// ServerError is a request the server received and rejected. It keeps
// the HTTP status and the message payload, when the server sent one.
type ServerError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("server rejected request with status %d", e.StatusCode)
}

// Unwrap implements errors.Unwrap
func (e *ServerError) Unwrap() error {
	return e.Err
}

// NewServerError creates a ServerError carrying the response status and
// optional message payload.
func NewServerError(statusCode int, message string) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewPermissionError creates a client-side guard rejection with a
// message naming the denied operation.
func NewPermissionError(message string) error {
	return fmt.Errorf("%w: %s", ErrPermissionDenied, message)
}

// NewValidationError creates a client-side validation failure wrapping
// the validator's error.
func NewValidationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidationFailed, err)
}

// IsGuardError reports whether the error was raised by a client-side
// guard (authorization or validation) before any network call.
func IsGuardError(err error) bool {
	return errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrValidationFailed)
}
