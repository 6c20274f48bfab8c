package errors

import (
	"net/http"

	"storefront/internal/errors"
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

// Is matches any BaseError carrying the same business error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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

// Business error codes of the gateway error taxonomy.
const (
	CodeAuth  = "AUTH_ERROR"
	CodeFetch = "FETCH_ERROR"
	CodeShape = "SHAPE_ERROR"
)

// NewAuthError reports a rejected login or registration. message comes from the server when it sent one.
func NewAuthError(httpCode int, message string) *BaseError {
	return NewBaseError(httpCode, CodeAuth, message, "")
}

// NewFetchError reports a non-2xx or transport failure on a catalog, cart or order call.
func NewFetchError(httpCode int, message string) *BaseError {
	return NewBaseError(httpCode, CodeFetch, message, "")
}

// NewShapeError reports a response that lacks the expected structure.
func NewShapeError(details string) *BaseError {
	return NewBaseError(http.StatusBadGateway, CodeShape, "Unexpected response from server", details)
}

// Predefined error types
var (
	ErrAuth  = NewAuthError(http.StatusUnauthorized, "Authentication failed")
	ErrFetch = NewFetchError(http.StatusBadGateway, "Request failed")
	ErrShape = NewShapeError("")

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Admin access required",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// IsUnauthorized reports whether err came from a 401 response, which usually means an expired token.
func IsUnauthorized(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() == http.StatusUnauthorized
}

// MessageOf returns the user-facing message of err, without wrapping context.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
