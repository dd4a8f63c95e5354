package migration

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Migration is one schema change, loaded from paired NNN_name.up.sql /
// NNN_name.down.sql files.
type Migration struct {
	Version   int
	Name      string
	UpSQL     string
	DownSQL   string
	AppliedAt time.Time
}

// Migrator applies versioned schema migrations to the profile store, tracking
// applied versions in a schema_migrations table.
type Migrator struct {
	db           *sql.DB
	logger       *slog.Logger
	migrationsFS fs.FS
}

// NewMigrator creates a migrator over the given filesystem of SQL files.
func NewMigrator(db *sql.DB, logger *slog.Logger, migrationsFS fs.FS) *Migrator {
	return &Migrator{
		db:           db,
		logger:       logger.With("component", "migrator"),
		migrationsFS: migrationsFS,
	}
}

// Up applies every pending migration in version order.
func (m *Migrator) Up() error {
	if err := m.ensureMigrationsTable(); err != nil {
		return err
	}

	all, err := m.loadMigrations()
	if err != nil {
		return err
	}

	applied, err := m.appliedMigrations()
	if err != nil {
		return err
	}

	appliedVersions := make(map[int]bool, len(applied))
	for _, migration := range applied {
		appliedVersions[migration.Version] = true
	}

	for _, migration := range all {
		if appliedVersions[migration.Version] {
			continue
		}

		if err := m.apply(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}

		m.logger.Info("applied migration",
			"version", migration.Version,
			"name", migration.Name)
	}

	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down() error {
	applied, err := m.appliedMigrations()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		m.logger.Info("no migrations to roll back")
		return nil
	}

	last := applied[len(applied)-1]

	all, err := m.loadMigrations()
	if err != nil {
		return err
	}

	for _, migration := range all {
		if migration.Version != last.Version {
			continue
		}

		if err := m.rollback(migration); err != nil {
			return fmt.Errorf("failed to roll back migration %d: %w", migration.Version, err)
		}

		m.logger.Info("rolled back migration",
			"version", migration.Version,
			"name", migration.Name)
		return nil
	}

	return fmt.Errorf("migration %d not found in filesystem", last.Version)
}

// Status logs the applied/pending state of every known migration.
func (m *Migrator) Status() error {
	all, err := m.loadMigrations()
	if err != nil {
		return err
	}

	applied, err := m.appliedMigrations()
	if err != nil {
		return err
	}

	appliedAt := make(map[int]time.Time, len(applied))
	for _, migration := range applied {
		appliedAt[migration.Version] = migration.AppliedAt
	}

	for _, migration := range all {
		if at, ok := appliedAt[migration.Version]; ok {
			m.logger.Info("migration applied",
				"version", migration.Version,
				"name", migration.Name,
				"applied_at", at.Format(time.RFC3339))
		} else {
			m.logger.Info("migration pending",
				"version", migration.Version,
				"name", migration.Name)
		}
	}

	return nil
}

func (m *Migrator) ensureMigrationsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		checksum VARCHAR(64) NOT NULL
	)`

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	return nil
}

// loadMigrations reads every NNN_name.up.sql in the filesystem together with
// its mandatory .down.sql counterpart, sorted by version.
func (m *Migrator) loadMigrations() ([]Migration, error) {
	var migrations []Migration

	err := fs.WalkDir(m.migrationsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".up.sql") {
			return nil
		}

		filename := filepath.Base(path)
		parts := strings.SplitN(strings.TrimSuffix(filename, ".up.sql"), "_", 2)
		if len(parts) < 2 {
			m.logger.Warn("skipping migration with unexpected filename", "filename", filename)
			return nil
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			m.logger.Warn("skipping migration with non-numeric version", "filename", filename)
			return nil
		}

		upSQL, err := fs.ReadFile(m.migrationsFS, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		downPath := strings.Replace(path, ".up.sql", ".down.sql", 1)
		downSQL, err := fs.ReadFile(m.migrationsFS, downPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", downPath, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    parts[1],
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func (m *Migrator) appliedMigrations() ([]Migration, error) {
	rows, err := m.db.Query(`SELECT version, name, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	var migrations []Migration
	for rows.Next() {
		var migration Migration
		if err := rows.Scan(&migration.Version, &migration.Name, &migration.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		migrations = append(migrations, migration)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating migration rows: %w", err)
	}

	return migrations, nil
}

func (m *Migrator) apply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.UpSQL); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		migration.Version, migration.Name, checksum(migration.UpSQL),
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

func (m *Migrator) rollback(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.DownSQL); err != nil {
		return fmt.Errorf("failed to execute rollback: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, migration.Version); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	return tx.Commit()
}

func checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
