package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go

import (
	"context"

	"auth-facade/app/domain"
)

// ProfileRepository defines profile document access. Profiles are keyed 1:1
// by the provider's identity id; the store assigns both timestamps.
type ProfileRepository interface {
	// Upsert writes the profile document, creating it on first write and
	// updating it afterwards. Idempotent on user id. The returned profile
	// carries the server-assigned timestamps.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// GetByUserID reads the profile document for an identity. A missing
	// document is not an error: (nil, nil) is returned so callers can
	// proceed with identity data alone.
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
