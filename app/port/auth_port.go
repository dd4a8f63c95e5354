package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"auth-facade/app/domain"
)

// AuthUsecase defines the identity reconciliation business logic interface
type AuthUsecase interface {
	// Register creates an identity with the provider, materializes the
	// profile document, and issues a local token.
	Register(ctx context.Context, name, email, credential string, imageRef *string) (*domain.AuthResult, error)

	// Login resolves an identity by email and issues a local token. The
	// password travels through the boundary but is not independently
	// re-verified here; the identity provider owns credential checks.
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)

	// ValidateToken verifies a provider token or, failing that, a local
	// token, and returns the merged user view. Read-only: no new token.
	ValidateToken(ctx context.Context, token string) (*domain.UserView, error)

	// ResetPassword asks the provider for a recovery reference.
	ResetPassword(ctx context.Context, email string) (*domain.ResetAck, error)
}
