package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimum environment for Load to succeed
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("KRATOS_PUBLIC_URL", "http://kratos-public:4433")
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos-admin:4434")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9600", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "profile-postgres", cfg.DatabaseHost)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.UsesDefaultTokenSecret())
}

func TestLoad_ExplicitValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOKEN_SECRET", "a-real-secret-loaded-from-the-environment")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.UsesDefaultTokenSecret())
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantMsg string
	}{
		{name: "missing db password", unset: "DB_PASSWORD", wantMsg: "DB_PASSWORD is required"},
		{name: "missing kratos public url", unset: "KRATOS_PUBLIC_URL", wantMsg: "KRATOS_PUBLIC_URL is required"},
		{name: "missing kratos admin url", unset: "KRATOS_ADMIN_URL", wantMsg: "KRATOS_ADMIN_URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:        "9600",
			LogLevel:    "info",
			TokenSecret: "secret",
			TokenTTL:    24 * time.Hour,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Port = "not-a-port" },
			wantErr: "invalid port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantErr: "port must be between",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "token TTL too short",
			mutate:  func(c *Config) { c.TokenTTL = time.Second },
			wantErr: "token TTL must be at least",
		},
		{
			name:    "empty token secret",
			mutate:  func(c *Config) { c.TokenSecret = "" },
			wantErr: "token secret must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
