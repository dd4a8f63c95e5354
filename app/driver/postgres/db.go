package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"auth-facade/app/config"
)

// Pool sizing for the profile store. Profile reads/writes are a thin side
// channel next to Kratos, so the pool stays small.
const (
	poolMaxConns        = int32(25)
	poolMinConns        = int32(5)
	poolMaxConnLifetime = time.Hour
	poolMaxConnIdleTime = 30 * time.Minute

	connectTimeout     = 30 * time.Second
	healthCheckTimeout = 5 * time.Second
)

// DB wraps the pgx connection pool backing the profile store.
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConnection opens a pooled connection to the profile store and verifies
// it with a ping before returning.
func NewConnection(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile store config: %w", err)
	}

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile store pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping profile store: %w", err)
	}

	dbLogger := logger.With("component", "profile_store")
	dbLogger.Info("profile store connection established",
		"host", cfg.DatabaseHost,
		"database", cfg.DatabaseName,
		"max_conns", poolConfig.MaxConns)

	return &DB{
		pool:   pool,
		logger: dbLogger,
	}, nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
		db.logger.Info("profile store connection closed")
	}
}

// Pool exposes the underlying pool for repositories.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// HealthCheck pings the profile store with a short deadline.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("profile store connection is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	return db.pool.Ping(ctx)
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
}
