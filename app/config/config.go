package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTokenSecret is the insecure fallback signing secret used when
// TOKEN_SECRET is unset. Kept for parity with development setups; main logs a
// warning whenever it is in effect.
const DefaultTokenSecret = "your-secret-key"

// Config holds all configuration for the auth facade
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database (profile store)
	DatabaseHost     string `env:"DB_HOST" default:"profile-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"profile_db"`
	DatabaseUser     string `env:"DB_USER" default:"profile_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Kratos (identity provider)
	KratosPublicURL string `env:"KRATOS_PUBLIC_URL" required:"true"`
	KratosAdminURL  string `env:"KRATOS_ADMIN_URL" required:"true"`

	// Local token
	TokenSecret string        `env:"TOKEN_SECRET" default:"your-secret-key"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" default:"24h"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "profile-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "profile_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "profile_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Local token configuration
	config.TokenSecret = getEnvOrDefault("TOKEN_SECRET", DefaultTokenSecret)

	tokenTTLStr := getEnvOrDefault("TOKEN_TTL", "24h")
	tokenTTL, err := time.ParseDuration(tokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	config.TokenTTL = tokenTTL

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate token TTL (minimum 1 minute)
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token TTL must be at least 1 minute, got: %v", c.TokenTTL)
	}

	if c.TokenSecret == "" {
		return fmt.Errorf("token secret must not be empty")
	}

	return nil
}

// UsesDefaultTokenSecret reports whether the insecure fallback secret is in
// effect
func (c *Config) UsesDefaultTokenSecret() bool {
	return c.TokenSecret == DefaultTokenSecret
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
