package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"auth-facade/app/port"
	"auth-facade/app/rest/handlers"
	custommw "auth-facade/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger      *slog.Logger
	AuthUsecase port.AuthUsecase
	Checkers    map[string]handlers.Checker
	RateLimiter *custommw.RateLimiter
	EnableDebug bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.Checkers)

	rateLimiter := config.RateLimiter
	if rateLimiter == nil {
		rateLimiter = custommw.NewRateLimiter()
	}

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Root welcome endpoint
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Welcome to the Authentication Service",
		})
	})

	// Health endpoints (no auth required)
	health := e.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	health.GET("/ready", healthHandler.ReadinessCheck)
	health.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.POST("/validate-token", authHandler.ValidateToken)

	return e
}
