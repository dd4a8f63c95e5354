package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"auth-facade/app/config"
	"auth-facade/app/driver/kratos"
	"auth-facade/app/driver/postgres"
	"auth-facade/app/driver/token"
	"auth-facade/app/gateway"
	"auth-facade/app/port"
	"auth-facade/app/rest"
	"auth-facade/app/rest/handlers"
	"auth-facade/app/rest/middleware"
	"auth-facade/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityProvider port.IdentityProvider

	// Usecases
	AuthUsecase port.AuthUsecase

	// Middleware with background state
	RateLimiter *middleware.RateLimiter
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Initialize database connection (profile store)
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Kratos client (identity provider)
	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)

	// Initialize gateways
	kratosAdapter := kratos.NewClientAdapter(container.KratosClient, logger)
	container.IdentityProvider = gateway.NewIdentityGateway(kratosAdapter, logger)

	// Initialize token codec
	tokenCodec := token.NewJWTCodec(token.Config{
		Secret: cfg.TokenSecret,
		TTL:    cfg.TokenTTL,
	})

	// Initialize usecases
	container.AuthUsecase = usecase.NewAuthUseCase(
		container.IdentityProvider,
		profileRepository,
		tokenCodec,
		logger,
	)

	container.RateLimiter = middleware.NewRateLimiter()

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		AuthUsecase: c.AuthUsecase,
		Checkers: map[string]handlers.Checker{
			"database": c.DB.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
		},
		RateLimiter: c.RateLimiter,
		EnableDebug: c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.RateLimiter != nil {
		c.RateLimiter.Stop()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
