// Package apperror defines sentinel errors and a typed application error
// shared by the client and server layers. Callers match sentinels with
// errors.Is and extract the typed error with errors.As.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// Repository / collection errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (client-side gating and server-side checks).
	ErrValidation = errors.New("validation error")

	// Transport errors (connection refused, unreachable endpoint).
	ErrUnavailable = errors.New("service unavailable")

	// Everything else.
	ErrInternal = errors.New("internal error")
)

// AppError carries a human-readable message alongside the sentinel it wraps.
// Field is set for validation errors that concern a single field path.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing record.
func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

// ValidationFailed reports a failed check for one field path.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unavailable reports a transport-level failure reaching the service.
func Unavailable(cause error) *AppError {
	return &AppError{
		Err:     ErrUnavailable,
		Message: fmt.Sprintf("service unavailable: %v", cause),
	}
}

// Internal reports an unexpected failure with a safe message.
func Internal(message string) *AppError {
	return &AppError{
		Err:     ErrInternal,
		Message: message,
	}
}
