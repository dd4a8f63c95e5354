package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"auth-facade/app/domain"
	"auth-facade/app/port"
)

// IdentityGateway implements port.IdentityProvider
// It acts as an anti-corruption layer between the domain and the external
// identity provider: every provider failure that leaves this layer is a
// domain error, never a raw client error.
type IdentityGateway struct {
	kratosClient port.KratosClient
	logger       *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(kratosClient port.KratosClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "identity_gateway"),
	}
}

// CreateIdentity registers a new identity with the provider
func (g *IdentityGateway) CreateIdentity(ctx context.Context, name, email, credential string) (*domain.Identity, error) {
	g.logger.Info("creating identity", "email", email)

	identity, err := g.kratosClient.CreateIdentity(ctx, name, email, credential)
	if err != nil {
		g.logger.Error("failed to create identity", "email", email, "error", err)
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	g.logger.Info("identity created successfully", "identity_id", identity.ID)
	return identity, nil
}

// GetByEmail resolves an identity by email
func (g *IdentityGateway) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identity, err := g.kratosClient.GetIdentityByEmail(ctx, email)
	if err != nil {
		g.logger.Debug("identity lookup by email failed", "error", err)
		return nil, fmt.Errorf("failed to resolve identity by email: %w", err)
	}

	return identity, nil
}

// GetByID resolves an identity by its provider-assigned id
func (g *IdentityGateway) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	identity, err := g.kratosClient.GetIdentityByID(ctx, id)
	if err != nil {
		g.logger.Debug("identity lookup by id failed", "identity_id", id, "error", err)
		return nil, fmt.Errorf("failed to resolve identity by id: %w", err)
	}

	return identity, nil
}

// VerifyProviderToken validates a provider-issued token and resolves it to an
// identity
func (g *IdentityGateway) VerifyProviderToken(ctx context.Context, token string) (*domain.Identity, error) {
	identity, err := g.kratosClient.VerifySessionToken(ctx, token)
	if err != nil {
		// Expected for every local token; keep it quiet.
		g.logger.Debug("provider token verification failed", "error", err)
		return nil, fmt.Errorf("provider token verification failed: %w", err)
	}

	g.logger.Info("provider token verified", "identity_id", identity.ID)
	return identity, nil
}

// CreateRecoveryLink asks the provider for a password recovery reference for
// an existing identity
func (g *IdentityGateway) CreateRecoveryLink(ctx context.Context, identityID string) (string, error) {
	g.logger.Info("creating recovery link", "identity_id", identityID)

	link, err := g.kratosClient.CreateRecoveryLink(ctx, identityID)
	if err != nil {
		g.logger.Error("failed to create recovery link", "identity_id", identityID, "error", err)
		return "", fmt.Errorf("failed to create recovery link: %w", err)
	}

	g.logger.Info("recovery link created", "identity_id", identityID)
	return link, nil
}

var _ port.IdentityProvider = (*IdentityGateway)(nil)
