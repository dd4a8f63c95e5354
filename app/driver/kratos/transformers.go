package kratos

import (
	"auth-facade/app/domain"

	kratosclient "github.com/ory/kratos-client-go"
)

// identityToDomain transforms a Kratos identity into our domain identity.
// Email and display name live in the identity traits under the default schema.
func identityToDomain(kratosIdentity *kratosclient.Identity) *domain.Identity {
	identity := &domain.Identity{
		ID: kratosIdentity.Id,
	}

	if traits, ok := kratosIdentity.GetTraits().(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			identity.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			identity.Name = name
		}
	}

	if kratosIdentity.CreatedAt != nil {
		identity.CreatedAt = *kratosIdentity.CreatedAt
	}

	return identity
}
