// Package errors defines application-level errors carrying HTTP status and
// business error codes.
package errors

import (
	"net/http"

	"convoytrack/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
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

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrConvoyNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVOY_NOT_FOUND",
		"Convoy not found",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found",
		"",
	)

	ErrOfferCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"OFFER_CREATION_FAILED",
		"Failed to create offer",
		"",
	)

	ErrOfferUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"OFFER_UPDATE_FAILED",
		"Failed to update offer",
		"",
	)

	ErrTrackingUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"TRACKING_UNAVAILABLE",
		"Tracking data has not been refreshed yet",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error into an AppError.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.WithStack(base)
}
