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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies made by WithDetails against their template.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Predefined error types
var (
	// Session and authentication
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrProviderNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"IDENTITY_PROVIDER_NOT_CONFIGURED",
		"No identity provider is configured",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to access this resource",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests, please retry later",
		"",
	)

	// Profile and backend
	ErrProfileUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_UNAVAILABLE",
		"The user profile could not be loaded",
		"",
	)

	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"The backend service is unavailable",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Generic
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input data validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreExecuteError represents a session store failure, implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a session-store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "session store execution failed").Error()
}

func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *StoreExecuteError) ErrorCode() string {
	return "SESSION_STORE_ERROR"
}

func (e *StoreExecuteError) Message() string {
	return "Session storage failed"
}

func (e *StoreExecuteError) Details() string {
	return e.details
}

// causedError keeps an AppError and the failure behind it in one chain.
type causedError struct {
	AppError
	cause error
}

// WithCause annotates appErr with cause. errors.Is and errors.As match both,
// and the response still renders appErr.
func WithCause(appErr AppError, cause error) error {
	if cause == nil {
		return appErr
	}

	return errors.WithStack(&causedError{AppError: appErr, cause: cause})
}

func (e *causedError) Error() string {
	return e.AppError.Error() + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.AppError, e.cause}
}
