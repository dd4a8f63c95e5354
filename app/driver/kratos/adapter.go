package kratos

import (
	"context"
	"log/slog"

	"auth-facade/app/domain"
	"auth-facade/app/port"

	kratosclient "github.com/ory/kratos-client-go"
)

// identitySchemaID is the Kratos identity schema used for all identities
// managed by this service.
const identitySchemaID = "default"

// ClientAdapter adapts our kratos.Client to implement port.KratosClient
type ClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewClientAdapter creates a new adapter
func NewClientAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &ClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// CreateIdentity registers a new identity with password credentials via the
// admin API. Kratos gates the credential; we never see it again.
func (a *ClientAdapter) CreateIdentity(ctx context.Context, name, email, credential string) (*domain.Identity, error) {
	a.logger.Info("creating identity in Kratos", "email", email)

	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": email,
			"name":  name,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: &credential,
				},
			},
		},
	}

	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity creation failed",
			"email", email,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "create_identity")
	}

	a.logger.Info("identity created successfully",
		"identity_id", resp.Id,
		"email", email)

	return identityToDomain(resp), nil
}

// GetIdentityByEmail resolves an identity by its credentials identifier.
func (a *ClientAdapter) GetIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identities, httpResp, err := a.client.AdminAPI().IdentityAPI.
		ListIdentities(ctx).
		CredentialsIdentifier(email).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity lookup by email failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "get_identity_by_email")
	}

	if len(identities) == 0 {
		return nil, domain.ErrIdentityNotFound
	}

	return identityToDomain(&identities[0]), nil
}

// GetIdentityByID resolves an identity by its provider-assigned id.
func (a *ClientAdapter) GetIdentityByID(ctx context.Context, id string) (*domain.Identity, error) {
	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		GetIdentity(ctx, id).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity lookup by id failed",
			"identity_id", id,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "get_identity_by_id")
	}

	return identityToDomain(resp), nil
}

// VerifySessionToken validates a Kratos session token via the public API and
// resolves it to an identity. Every failure collapses to
// domain.ErrInvalidProviderToken so that callers can fall back to local
// verification without inspecting the cause.
func (a *ClientAdapter) VerifySessionToken(ctx context.Context, token string) (*domain.Identity, error) {
	session, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		a.logger.Debug("kratos session verification failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, domain.ErrInvalidProviderToken
	}

	if session.Active != nil && !*session.Active {
		return nil, domain.ErrInvalidProviderToken
	}

	if session.Identity == nil {
		return nil, domain.ErrInvalidProviderToken
	}

	a.logger.Info("provider session verified",
		"session_id", session.Id,
		"identity_id", session.Identity.Id)

	return identityToDomain(session.Identity), nil
}

// CreateRecoveryLink asks the admin API for a password recovery link for the
// given identity. The link is the opaque reference returned to the caller;
// no email is sent by this service.
func (a *ClientAdapter) CreateRecoveryLink(ctx context.Context, identityID string) (string, error) {
	body := kratosclient.CreateRecoveryLinkForIdentityBody{
		IdentityId: identityID,
	}

	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateRecoveryLinkForIdentity(ctx).
		CreateRecoveryLinkForIdentityBody(body).
		Execute()
	if err != nil {
		a.logger.Error("kratos recovery link creation failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return "", transformKratosError(err, httpResp, "create_recovery_link")
	}

	a.logger.Info("recovery link created", "identity_id", identityID)

	return resp.RecoveryLink, nil
}
