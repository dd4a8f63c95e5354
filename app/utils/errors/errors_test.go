package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-facade/app/domain"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeLoginFailed, "login failed")

	assert.Equal(t, ErrCodeLoginFailed, err.Code)
	assert.Equal(t, "login failed", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Nil(t, err.Cause)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeInvalidInput, "field %s is invalid", "email")

	assert.Equal(t, ErrCodeInvalidInput, err.Code)
	assert.Equal(t, "field email is invalid", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeProviderUnavailable, "identity provider unavailable", cause)

	assert.Equal(t, ErrCodeProviderUnavailable, err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
	assert.Equal(t, cause, err.Cause)
	assert.True(t, errors.Is(err, cause))
}

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(ErrCodeTokenExpired, "token has expired")
		assert.Equal(t, "TOKEN_EXPIRED: token has expired", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("exp claim in the past")
		err := Wrap(ErrCodeTokenExpired, "token has expired", cause)
		assert.Contains(t, err.Error(), "TOKEN_EXPIRED")
		assert.Contains(t, err.Error(), "exp claim in the past")
	})
}

func TestAppError_WithContext(t *testing.T) {
	err := New(ErrCodeProfileWriteFailed, "failed to save user profile")
	err.WithContext("user_id", "123")

	assert.Equal(t, "123", err.Context["user_id"])
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(ErrCodeValidationFailed, "validation failed").
		WithDetails("email must be a valid email address")

	assert.Equal(t, "email must be a valid email address", err.Details)
}

func TestAsAppError(t *testing.T) {
	t.Run("direct AppError", func(t *testing.T) {
		orig := New(ErrCodeBadRequest, "bad request")
		appErr, ok := AsAppError(orig)
		require.True(t, ok)
		assert.Equal(t, orig, appErr)
	})

	t.Run("wrapped AppError", func(t *testing.T) {
		orig := New(ErrCodeBadRequest, "bad request")
		wrapped := fmt.Errorf("handler: %w", orig)
		appErr, ok := AsAppError(wrapped)
		require.True(t, ok)
		assert.Equal(t, ErrCodeBadRequest, appErr.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsAppError(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenInvalid, http.StatusUnauthorized},
		{ErrCodeLoginFailed, http.StatusNotFound},
		{ErrCodeResetFailed, http.StatusNotFound},
		{ErrCodeRegistrationConflict, http.StatusBadRequest},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeProviderUnavailable, http.StatusServiceUnavailable},
		{ErrCodeProfileWriteFailed, http.StatusInternalServerError},
		{ErrCodeInternalError, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, New(tt.code, "msg").StatusCode)
		})
	}

	t.Run("non-app error", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
	})
}

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   ErrorCode
		status int
	}{
		{
			name:   "registration conflict sentinel",
			err:    domain.ErrRegistrationConflict,
			code:   ErrCodeRegistrationConflict,
			status: http.StatusBadRequest,
		},
		{
			name:   "login failed sentinel",
			err:    fmt.Errorf("usecase: %w", domain.ErrLoginFailed),
			code:   ErrCodeLoginFailed,
			status: http.StatusNotFound,
		},
		{
			name:   "reset failed sentinel",
			err:    domain.ErrResetFailed,
			code:   ErrCodeResetFailed,
			status: http.StatusNotFound,
		},
		{
			name:   "token expired sentinel",
			err:    domain.ErrTokenExpired,
			code:   ErrCodeTokenExpired,
			status: http.StatusUnauthorized,
		},
		{
			name:   "token invalid sentinel",
			err:    domain.ErrTokenInvalid,
			code:   ErrCodeTokenInvalid,
			status: http.StatusUnauthorized,
		},
		{
			name:   "provider unavailable sentinel",
			err:    domain.ErrProviderUnavailable,
			code:   ErrCodeProviderUnavailable,
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "profile write failed sentinel",
			err:    domain.ErrProfileWriteFailed,
			code:   ErrCodeProfileWriteFailed,
			status: http.StatusInternalServerError,
		},
		{
			name:   "unknown error",
			err:    errors.New("something odd"),
			code:   ErrCodeInternalError,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomain(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.StatusCode)
		})
	}

	t.Run("AuthError keeps code and message", func(t *testing.T) {
		authErr := domain.NewAuthError(
			domain.ErrCodeLoginFailed,
			"Invalid email or password",
			domain.ErrLoginFailed,
		)

		appErr := FromDomain(authErr)
		assert.Equal(t, ErrCodeLoginFailed, appErr.Code)
		assert.Equal(t, "Invalid email or password", appErr.Message)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.True(t, errors.Is(appErr, domain.ErrLoginFailed))
	})
}
