package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker reports whether a downstream dependency is reachable.
type Checker func(ctx context.Context) error

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	logger   *slog.Logger
	checkers map[string]Checker
}

// NewHealthHandler creates a new health handler. Checkers are probed on
// readiness checks only; liveness never touches downstream dependencies.
func NewHealthHandler(logger *slog.Logger, checkers map[string]Checker) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		checkers: checkers,
	}
}

// HealthCheck performs a basic health check
// @Summary Health check
// @Description Check if the service is healthy and running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "auth-facade",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck performs a readiness check
// @Summary Readiness check
// @Description Check if the service is ready to serve traffic
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /health/ready [get]
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := make(map[string]HealthStatus, len(h.checkers))

	allHealthy := true
	for name, check := range h.checkers {
		start := time.Now()
		err := check(ctx)
		latency := time.Since(start)

		if err != nil {
			allHealthy = false
			checks[name] = HealthStatus{
				Status:  "unhealthy",
				Message: err.Error(),
				Latency: latency.String(),
			}
			h.logger.Warn("readiness check failed",
				"dependency", name,
				"error", err)
			continue
		}

		checks[name] = HealthStatus{
			Status:  "healthy",
			Message: "connected",
			Latency: latency.String(),
		}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now(),
		Service:   "auth-facade",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// LivenessCheck performs a liveness check
// @Summary Liveness check
// @Description Check if the service is alive
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health/live [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "auth-facade",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// Helper functions
func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
