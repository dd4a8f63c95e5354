package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-facade/app/domain"
	"auth-facade/app/port"
	apperrors "auth-facade/app/utils/errors"
	"auth-facade/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator.New(),
		logger:      logger,
	}
}

// Request types

type RegisterRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=8"`
	ProfileImage *string `json:"profile_image,omitempty" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ValidateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// Response types

type AuthResponse struct {
	Message string           `json:"message"`
	User    *domain.UserView `json:"user"`
	Token   string           `json:"token"`
}

type ValidateTokenResponse struct {
	Message string           `json:"message"`
	User    *domain.UserView `json:"user"`
}

type ResetPasswordResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Register handles user registration
// @Summary Register a new user
// @Description Create an identity with the provider, store the profile and issue a token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	}

	h.logger.Info("registration requested",
		"email", req.Email,
		"ip", c.RealIP())

	result, err := h.authUsecase.Register(ctx, req.Name, req.Email, req.Password, req.ProfileImage)
	if err != nil {
		h.logger.Error("registration failed",
			"email", req.Email,
			"error", err)
		return h.writeError(c, err)
	}

	h.logger.Info("registration succeeded",
		"user_id", result.User.UserID,
		"email", result.User.Email)

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "User created successfully",
		User:    result.User,
		Token:   result.Token,
	})
}

// Login handles user login
// @Summary Log in an existing user
// @Description Resolve the identity by email and issue a token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	}

	result, err := h.authUsecase.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login failed",
			"email", req.Email,
			"ip", c.RealIP(),
			"error", err)
		return h.writeError(c, err)
	}

	h.logger.Info("login succeeded",
		"user_id", result.User.UserID)

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		User:    result.User,
		Token:   result.Token,
	})
}

// ValidateToken handles token validation
// @Summary Validate a token
// @Description Verify a provider or local token and return the user it belongs to
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body ValidateTokenRequest true "Token to validate"
// @Success 200 {object} ValidateTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req ValidateTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	}

	user, err := h.authUsecase.ValidateToken(ctx, req.Token)
	if err != nil {
		h.logger.Debug("token validation failed",
			"ip", c.RealIP(),
			"error", err)
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, ValidateTokenResponse{
		Message: "Token is valid",
		User:    user,
	})
}

// ResetPassword handles password reset requests
// @Summary Request a password reset
// @Description Ask the identity provider to start account recovery for the email
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Account email"
// @Success 200 {object} ResetPasswordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	}

	ack, err := h.authUsecase.ResetPassword(ctx, req.Email)
	if err != nil {
		h.logger.Warn("password reset failed",
			"email", req.Email,
			"ip", c.RealIP(),
			"error", err)
		return h.writeError(c, err)
	}

	h.logger.Info("password reset initiated",
		"user_id", ack.UserID)

	return c.JSON(http.StatusOK, ResetPasswordResponse{
		Message: ack.Message,
		UserID:  ack.UserID,
	})
}

// writeError translates a use case error into the HTTP response. The status
// and code come from the error taxonomy; the message is whatever the use case
// decided the caller may see.
func (h *AuthHandler) writeError(c echo.Context, err error) error {
	appErr := apperrors.FromDomain(err)
	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}
