package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"auth-facade/app/domain"
	"auth-facade/app/port"
)

// AuthUseCase implements the identity reconciliation business logic. It
// orchestrates the identity provider, the profile store, and the local token
// codec into the four public operations, producing one unified user view from
// two independently owned stores.
//
// The reconciler owns no storage and must not assume transactional atomicity
// across the two stores: the provider is authoritative, the profile store is
// best-effort enrichment.
type AuthUseCase struct {
	identities port.IdentityProvider
	profiles   port.ProfileRepository
	codec      port.TokenCodec
	logger     *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(identities port.IdentityProvider, profiles port.ProfileRepository, codec port.TokenCodec, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		identities: identities,
		profiles:   profiles,
		codec:      codec,
		logger:     logger.With("component", "auth_usecase"),
	}
}

// Register creates an identity with the provider, materializes the profile
// document, and issues a local token.
//
// There is no compensating transaction: when the profile write fails after the
// identity was created, the orphaned identity is logged for manual repair and
// the failure is surfaced as ErrProfileWriteFailed so the caller is never told
// registration fully succeeded.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, credential string, imageRef *string) (*domain.AuthResult, error) {
	identity, err := uc.identities.CreateIdentity(ctx, name, email, credential)
	if err != nil {
		return nil, uc.translateRegistrationError(err, email)
	}

	// Abort between pipeline steps on cancellation; the provider write above
	// is never rolled back.
	if err := ctx.Err(); err != nil {
		uc.logOrphanedIdentity(identity, email, err)
		return nil, domain.NewAuthError(domain.ErrCodeProfileWriteFailed,
			"registration incomplete", domain.ErrProfileWriteFailed)
	}

	profile, err := uc.profiles.Upsert(ctx, &domain.Profile{
		UserID:       identity.ID,
		Name:         name,
		Email:        identity.Email,
		ProfileImage: imageRef,
	})
	if err != nil {
		uc.logOrphanedIdentity(identity, email, err)
		return nil, domain.NewAuthError(domain.ErrCodeProfileWriteFailed,
			"registration incomplete", domain.ErrProfileWriteFailed)
	}

	token, err := uc.codec.Issue(identity.ID)
	if err != nil {
		uc.logger.Error("token issuance failed after registration",
			"identity_id", identity.ID, "error", err)
		return nil, domain.NewAuthError(domain.ErrCodeInternal,
			"registration failed", domain.ErrInternal)
	}

	uc.logger.Info("user registered successfully", "identity_id", identity.ID)

	return &domain.AuthResult{
		User:  domain.MergeUserView(identity, profile),
		Token: token,
	}, nil
}

// Login resolves an identity by email, issues a local token, and merges the
// profile document into the unified view.
//
// Boundary contract: the password travels through the HTTP boundary but is not
// independently re-verified against the provider here. The provider owns
// credential checks; a lookup miss and any other login failure share one
// opaque message so callers cannot enumerate accounts.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	identity, err := uc.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			return nil, domain.NewAuthError(domain.ErrCodeProviderUnavailable,
				"identity provider unavailable", domain.ErrProviderUnavailable)
		}
		uc.logger.Warn("login failed", "error", err)
		return nil, domain.NewAuthError(domain.ErrCodeLoginFailed,
			"login failed", domain.ErrLoginFailed)
	}

	token, err := uc.codec.Issue(identity.ID)
	if err != nil {
		uc.logger.Error("token issuance failed", "identity_id", identity.ID, "error", err)
		return nil, domain.NewAuthError(domain.ErrCodeInternal,
			"login failed", domain.ErrInternal)
	}

	view := uc.mergeWithProfile(ctx, identity)

	uc.logger.Info("user logged in successfully", "identity_id", identity.ID)

	return &domain.AuthResult{
		User:  view,
		Token: token,
	}, nil
}

// ValidateToken verifies a caller credential through an ordered two-stage
// check and returns the merged user view. Validation is read-only: no new
// token is issued.
//
// Stage one tries the provider's own token format; any failure there, from a
// malformed value to a provider-side error, falls through to stage two, the
// local codec. The two formats occupy disjoint verification mechanisms, so
// trying the provider first costs nothing on a local token.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, token string) (*domain.UserView, error) {
	identity, err := uc.identities.VerifyProviderToken(ctx, token)
	if err == nil {
		uc.logger.Info("provider token validated", "identity_id", identity.ID)
		return uc.mergeWithProfile(ctx, identity), nil
	}

	subject, err := uc.codec.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			uc.logger.Warn("token validation failed: expired")
			return nil, domain.NewAuthError(domain.ErrCodeTokenExpired,
				"token has expired", domain.ErrTokenExpired)
		}
		uc.logger.Warn("token validation failed: malformed")
		return nil, domain.NewAuthError(domain.ErrCodeTokenInvalid,
			"invalid token", domain.ErrTokenInvalid)
	}

	// A syntactically valid local token for an identity the provider no
	// longer knows must not validate.
	identity, err = uc.identities.GetByID(ctx, subject)
	if err != nil {
		uc.logger.Warn("local token subject unknown to provider", "subject", subject)
		return nil, domain.NewAuthError(domain.ErrCodeTokenInvalid,
			"invalid token", domain.ErrTokenInvalid)
	}

	uc.logger.Info("local token validated", "identity_id", identity.ID)
	return uc.mergeWithProfile(ctx, identity), nil
}

// ResetPassword asks the provider for a recovery reference. Delivery of the
// reference is out of scope; the acknowledgement confirms the operation was
// accepted.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, email string) (*domain.ResetAck, error) {
	identity, err := uc.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			return nil, domain.NewAuthError(domain.ErrCodeProviderUnavailable,
				"identity provider unavailable", domain.ErrProviderUnavailable)
		}
		uc.logger.Warn("password reset failed", "error", err)
		return nil, domain.NewAuthError(domain.ErrCodeResetFailed,
			"password reset failed", domain.ErrResetFailed)
	}

	if _, err := uc.identities.CreateRecoveryLink(ctx, identity.ID); err != nil {
		uc.logger.Error("recovery link creation failed", "identity_id", identity.ID, "error", err)
		return nil, domain.NewAuthError(domain.ErrCodeProviderUnavailable,
			"identity provider unavailable", domain.ErrProviderUnavailable)
	}

	uc.logger.Info("password reset accepted", "identity_id", identity.ID)

	return &domain.ResetAck{
		Message: "Password reset email sent.",
		UserID:  identity.ID,
	}, nil
}

// mergeWithProfile assembles the unified user view. An absent profile
// document, or a transient profile store failure, degrades to the identity's
// own data instead of failing the request.
func (uc *AuthUseCase) mergeWithProfile(ctx context.Context, identity *domain.Identity) *domain.UserView {
	profile, err := uc.profiles.GetByUserID(ctx, identity.ID)
	if err != nil {
		uc.logger.Warn("profile read failed, proceeding with identity data",
			"identity_id", identity.ID, "error", err)
		profile = nil
	}

	return domain.MergeUserView(identity, profile)
}

// translateRegistrationError maps provider failures during identity creation
// to the reconciler taxonomy
func (uc *AuthUseCase) translateRegistrationError(err error, email string) error {
	if errors.Is(err, domain.ErrIdentityConflict) {
		uc.logger.Warn("registration conflict", "email", email)
		return domain.NewAuthError(domain.ErrCodeRegistrationConflict,
			"email already in use", domain.ErrRegistrationConflict)
	}

	if errors.Is(err, domain.ErrProviderUnavailable) {
		uc.logger.Error("identity provider unavailable during registration", "error", err)
		return domain.NewAuthError(domain.ErrCodeProviderUnavailable,
			"identity provider unavailable", domain.ErrProviderUnavailable)
	}

	uc.logger.Error("identity creation failed", "email", email, "error", err)
	return domain.NewAuthError(domain.ErrCodeInternal,
		"registration failed", domain.ErrInternal)
}

// logOrphanedIdentity records the accepted inconsistency window: an identity
// exists at the provider with no profile document. Logged with enough detail
// to support manual cleanup or a future idempotent repair job.
func (uc *AuthUseCase) logOrphanedIdentity(identity *domain.Identity, email string, cause error) {
	uc.logger.Error("profile write failed after identity creation; orphaned identity requires manual reconciliation",
		"identity_id", identity.ID,
		"email", email,
		"orphaned_at", time.Now().UTC(),
		"error", cause)
}
