package errors

import (
	"net/http"

	"blogapi/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	// Article-related errors
	ErrArticleNotFound = NewBaseError(
		http.StatusNotFound,
		"ARTICLE_NOT_FOUND",
		"Article not found",
		"",
	)

	ErrArticleCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ARTICLE_CREATION_FAILED",
		"Failed to create article",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	// Authentication-related errors.
	// Invalid credentials are answered 404 with one shared message so a
	// caller cannot tell an unknown email from a wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusNotFound,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrMissingClaim = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_CLAIM",
		"Token is missing the identity claim",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Could not validate credentials",
		"",
	)

	// Ownership violations are answered 401, matching the service's
	// long-standing observable behavior.
	ErrNotResourceOwner = NewBaseError(
		http.StatusUnauthorized,
		"NOT_RESOURCE_OWNER",
		"You are not authorized to modify this resource",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Validation errors
	ErrValidation = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Request payload failed validation",
		"",
	)
)

// NewDatabaseQueryError wraps a database read failure as an internal error,
// keeping the raw message in the details field.
func NewDatabaseQueryError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_QUERY_ERROR",
		message,
		err.Error(),
	)
}

// NewDatabaseExecuteError wraps a database write failure as an internal error.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		message,
		err.Error(),
	)
}
