package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Config holds the connection settings for the profile store. The migration
// CLI is the only consumer; the serving path talks to the same database
// through the pgx pool in driver/postgres.
type Config struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnTimeout     time.Duration
}

// Connection wraps a database/sql handle to the profile store.
type Connection struct {
	db     *sql.DB
	config *Config
	logger *slog.Logger
}

// NewConnection opens and pings a connection to the profile store.
func NewConnection(config *Config, logger *slog.Logger) (*Connection, error) {
	conn := &Connection{
		config: config,
		logger: logger.With("component", "profile_store"),
	}

	if err := conn.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to profile store: %w", err)
	}

	return conn, nil
}

func (c *Connection) connect() error {
	c.logger.Info("connecting to profile store",
		"host", c.config.Host,
		"port", c.config.Port,
		"database", c.config.Database,
		"ssl_mode", c.config.SSLMode)

	db, err := sql.Open("postgres", c.buildDSN())
	if err != nil {
		return fmt.Errorf("failed to open connection: %w", err)
	}

	db.SetMaxOpenConns(c.config.MaxOpenConns)
	db.SetMaxIdleConns(c.config.MaxIdleConns)
	db.SetConnMaxLifetime(c.config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), c.config.ConnTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping profile store: %w", err)
	}

	c.db = db
	c.logger.Info("profile store connection established")
	return nil
}

func (c *Connection) buildDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.config.Host,
		c.config.Port,
		c.config.User,
		c.config.Password,
		c.config.Database,
		c.config.SSLMode,
		int(c.config.ConnTimeout.Seconds()),
	)
}

// DB returns the underlying *sql.DB instance
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the connection
func (c *Connection) Close() error {
	if c.db != nil {
		c.logger.Info("closing profile store connection")
		return c.db.Close()
	}
	return nil
}

// Health pings the profile store
func (c *Connection) Health(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("profile store connection is nil")
	}

	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("profile store ping failed: %w", err)
	}

	return nil
}
