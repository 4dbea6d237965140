package errors

import (
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNetwork       ErrorType = "network"
	ErrorTypeServer        ErrorType = "server"
	ErrorTypeUnauthorized  ErrorType = "unauthorized"
	ErrorTypeInternal      ErrorType = "internal"
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ClientError is the base error type for all application errors
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ClientError) WithContext(key string, value any) *ClientError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// DisplayMessage returns the user-facing message without the category prefix
func (e *ClientError) DisplayMessage() string {
	return e.Message
}

// New creates a new ClientError
func New(errorType ErrorType, message string) *ClientError {
	return &ClientError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errorType ErrorType, message string) *ClientError {
	return &ClientError{
		Type:    errorType,
		Message: message,
		Cause:   err,
		Context: make(map[string]any),
	}
}

// Validation creates a validation error
func Validation(message string) *ClientError {
	return New(ErrorTypeValidation, message)
}

// Network creates a network error
func Network(err error) *ClientError {
	return Wrap(err, ErrorTypeNetwork, "network error")
}

// Server creates a server-reported error
func Server(message string) *ClientError {
	return New(ErrorTypeServer, message)
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) *ClientError {
	return New(ErrorTypeUnauthorized, message)
}

// Internal creates an internal error
func Internal(message string) *ClientError {
	return New(ErrorTypeInternal, message)
}

// Configuration creates a configuration error
func Configuration(message string) *ClientError {
	return New(ErrorTypeConfiguration, message)
}

// IsType reports whether err is a ClientError of the given type
func IsType(err error, errorType ErrorType) bool {
	ce, ok := err.(*ClientError)
	return ok && ce.Type == errorType
}
