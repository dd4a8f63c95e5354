package errors

import (
	"errors"
	"fmt"
	"net/http"

	"auth-facade/app/domain"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Account lifecycle errors
	ErrCodeRegistrationConflict ErrorCode = "REGISTRATION_CONFLICT"
	ErrCodeLoginFailed          ErrorCode = "LOGIN_FAILED"
	ErrCodeResetFailed          ErrorCode = "RESET_FAILED"
	ErrCodeProfileWriteFailed   ErrorCode = "PROFILE_WRITE_FAILED"

	// Token errors
	ErrCodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid ErrorCode = "TOKEN_INVALID"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// System errors
	ErrCodeInternalError       ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabaseError       ErrorCode = "DATABASE_ERROR"
	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	ErrCodeConfigError         ErrorCode = "CONFIG_ERROR"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeTokenExpired, ErrCodeTokenInvalid:
		return http.StatusUnauthorized
	case ErrCodeLoginFailed, ErrCodeResetFailed, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRegistrationConflict, ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeProviderUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeProfileWriteFailed, ErrCodeInternalError, ErrCodeDatabaseError, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// FromDomain translates a domain-layer error into an AppError carrying the
// HTTP status the REST layer should return. The domain message is preserved
// verbatim so the client sees exactly what the use case decided to disclose.
func FromDomain(err error) *AppError {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return Wrap(ErrorCode(authErr.Code), authErr.Message, authErr.Cause)
	}

	switch {
	case errors.Is(err, domain.ErrRegistrationConflict):
		return Wrap(ErrCodeRegistrationConflict, domain.ErrRegistrationConflict.Error(), err)
	case errors.Is(err, domain.ErrLoginFailed):
		return Wrap(ErrCodeLoginFailed, domain.ErrLoginFailed.Error(), err)
	case errors.Is(err, domain.ErrResetFailed):
		return Wrap(ErrCodeResetFailed, domain.ErrResetFailed.Error(), err)
	case errors.Is(err, domain.ErrTokenExpired):
		return Wrap(ErrCodeTokenExpired, "token has expired", err)
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
		return Wrap(ErrCodeTokenInvalid, "invalid token", err)
	case errors.Is(err, domain.ErrProfileWriteFailed):
		return Wrap(ErrCodeProfileWriteFailed, "failed to save user profile", err)
	case errors.Is(err, domain.ErrProviderUnavailable):
		return Wrap(ErrCodeProviderUnavailable, "identity provider unavailable", err)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidEmail):
		return Wrap(ErrCodeInvalidInput, err.Error(), err)
	default:
		return Wrap(ErrCodeInternalError, "internal server error", err)
	}
}

// Predefined common errors

// Token errors
var (
	ErrTokenExpired = New(ErrCodeTokenExpired, "token has expired")
	ErrTokenInvalid = New(ErrCodeTokenInvalid, "invalid token")
)

// System errors
var (
	ErrInternalError       = New(ErrCodeInternalError, "internal server error")
	ErrDatabaseError       = New(ErrCodeDatabaseError, "database error")
	ErrProviderUnavailable = New(ErrCodeProviderUnavailable, "identity provider unavailable")
	ErrConfigError         = New(ErrCodeConfigError, "configuration error")
	ErrRateLimitExceeded   = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
)

// Validation errors
var (
	ErrValidationFailed = New(ErrCodeValidationFailed, "validation failed")
	ErrInvalidInput     = New(ErrCodeInvalidInput, "invalid input")
)

// Generic errors
var (
	ErrBadRequest = New(ErrCodeBadRequest, "bad request")
	ErrNotFound   = New(ErrCodeNotFound, "resource not found")
)

// Helper functions for creating contextual errors

// NewValidationError creates a validation error with details
func NewValidationError(details string) *AppError {
	return New(ErrCodeValidationFailed, "validation failed").WithDetails(details)
}

// NewInternalError creates an internal error with cause
func NewInternalError(cause error) *AppError {
	return Wrap(ErrCodeInternalError, "internal server error", cause)
}

// NewDatabaseError creates a database error with cause
func NewDatabaseError(cause error) *AppError {
	return Wrap(ErrCodeDatabaseError, "database operation failed", cause)
}
