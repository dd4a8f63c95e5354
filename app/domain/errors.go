package domain

import "errors"

// Reconciliation and token errors
var (
	// Identity provider errors
	ErrIdentityConflict     = errors.New("identity already exists")
	ErrIdentityNotFound     = errors.New("identity not found")
	ErrInvalidProviderToken = errors.New("invalid provider token")
	ErrProviderUnavailable  = errors.New("identity provider unavailable")

	// Local token errors
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")

	// Reconciler errors
	ErrRegistrationConflict = errors.New("email already in use")
	ErrLoginFailed          = errors.New("login failed")
	ErrResetFailed          = errors.New("password reset failed")
	ErrProfileWriteFailed   = errors.New("profile write failed")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidEmail = errors.New("invalid email")

	// General errors
	ErrInternal = errors.New("internal error")
)

// AuthError represents authentication-related errors with additional context
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common auth error codes
const (
	ErrCodeRegistrationConflict = "REGISTRATION_CONFLICT"
	ErrCodeLoginFailed          = "LOGIN_FAILED"
	ErrCodeResetFailed          = "RESET_FAILED"
	ErrCodeTokenExpired         = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid         = "TOKEN_INVALID"
	ErrCodeProfileWriteFailed   = "PROFILE_WRITE_FAILED"
	ErrCodeProviderUnavailable  = "PROVIDER_UNAVAILABLE"
	ErrCodeInternal             = "INTERNAL_ERROR"
)
