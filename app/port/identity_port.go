package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"auth-facade/app/domain"
)

// IdentityProvider defines the identity provider gateway interface.
// The provider is authoritative for identities and credential checks; this
// service never performs password comparison itself.
type IdentityProvider interface {
	// CreateIdentity registers a new identity with the provider.
	// Returns domain.ErrIdentityConflict when the email is already taken.
	CreateIdentity(ctx context.Context, name, email, credential string) (*domain.Identity, error)

	// GetByEmail resolves an identity by its email address.
	// Returns domain.ErrIdentityNotFound when no identity matches.
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)

	// GetByID resolves an identity by its provider-assigned id.
	// Returns domain.ErrIdentityNotFound when no identity matches.
	GetByID(ctx context.Context, id string) (*domain.Identity, error)

	// VerifyProviderToken validates a provider-issued token and resolves it
	// to an identity. Returns domain.ErrInvalidProviderToken on any failure.
	VerifyProviderToken(ctx context.Context, token string) (*domain.Identity, error)

	// CreateRecoveryLink asks the provider for an opaque password recovery
	// reference for an existing identity. No email is sent by this service.
	CreateRecoveryLink(ctx context.Context, identityID string) (string, error)
}

// KratosClient defines the low-level Kratos driver interface consumed by the
// identity gateway
type KratosClient interface {
	CreateIdentity(ctx context.Context, name, email, credential string) (*domain.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
	GetIdentityByID(ctx context.Context, id string) (*domain.Identity, error)
	VerifySessionToken(ctx context.Context, token string) (*domain.Identity, error)
	CreateRecoveryLink(ctx context.Context, identityID string) (string, error)
}
