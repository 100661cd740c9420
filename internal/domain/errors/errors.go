// Package errors defines the application error taxonomy shared by the flows
// and the delivery layer.
package errors

import (
	"net/http"

	"gatekeeper/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message. The context is
// for server-side logs only; the user-facing message stays unchanged.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. Register and login deliberately emit 400 for every
// failure, including unexpected internal ones, so account existence and server
// internals never leak through the status code.
var (
	// Input validation errors.
	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"Please enter a password of at least 8 characters",
	)

	// ErrDuplicateAccount covers both the advisory pre-check in the registration
	// flow and the store's unique-index rejection.
	ErrDuplicateAccount = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_ACCOUNT",
		"A user with this email already exists",
	)

	// ErrInvalidCredentials is shared between the unknown-email and
	// wrong-password cases so the two are indistinguishable to the caller.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"User not found",
	)

	// ErrInternal hides hashing failures, store errors and the like behind one
	// generic message. The wrapped cause is logged server-side, never emitted.
	ErrInternal = NewBaseError(
		http.StatusBadRequest,
		"INTERNAL_ERROR",
		"An internal error occurred",
	)
)
