package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"auth-facade/app/domain"
	"auth-facade/app/port"

	"github.com/jackc/pgx/v5"
)

// ProfileRepository implements port.ProfileRepository for PostgreSQL.
// One row per identity; the row is the profile document, keyed by the
// provider-assigned user id.
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Upsert writes the profile document. created_at is assigned by the server on
// first write only; updated_at is refreshed on every write. Idempotent on
// user_id.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (
			user_id, name, email, profile_image, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, now(), now()
		)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			profile_image = EXCLUDED.profile_image,
			updated_at = now()
		RETURNING user_id, name, email, profile_image, created_at, updated_at`

	r.logger.Info("upserting profile", "user_id", profile.UserID)

	stored := &domain.Profile{}
	err := r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Email,
		profile.ProfileImage,
	).Scan(
		&stored.UserID,
		&stored.Name,
		&stored.Email,
		&stored.ProfileImage,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to upsert profile", "user_id", profile.UserID, "error", err)
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	r.logger.Info("profile upserted successfully", "user_id", stored.UserID)
	return stored, nil
}

// GetByUserID reads the profile document for an identity. A missing document
// is reported as (nil, nil): callers proceed with identity data alone.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT user_id, name, email, profile_image, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	profile := &domain.Profile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Email,
		&profile.ProfileImage,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("profile not materialized yet", "user_id", userID)
			return nil, nil
		}
		r.logger.Error("failed to read profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	return profile, nil
}
