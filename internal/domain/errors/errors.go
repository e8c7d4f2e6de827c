package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// Auth-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid access token",
		"",
	)

	// Section lifecycle errors
	ErrUnknownSection = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_SECTION",
		"Unknown profile section",
		"",
	)

	ErrSectionNotEditing = NewBaseError(
		http.StatusConflict,
		"SECTION_NOT_EDITING",
		"The section is not in edit mode",
		"",
	)

	ErrSaveInProgress = NewBaseError(
		http.StatusConflict,
		"SAVE_IN_PROGRESS",
		"Another save is already in progress",
		"",
	)

	ErrCancelDuringSave = NewBaseError(
		http.StatusConflict,
		"CANCEL_DURING_SAVE",
		"Cannot cancel while the section is being saved",
		"",
	)

	// Upstream Profile API errors
	ErrProfileFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_FETCH_FAILED",
		"Could not load the profile",
		"",
	)

	ErrProfileWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_WRITE_FAILED",
		"Could not save the profile",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request input",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
