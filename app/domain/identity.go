package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Identity is the credential-bearing record owned by the external identity
// provider. The provider assigns the ID and is the source of truth for the
// email; the credential itself is never read by this service.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewIdentity creates an identity with validation
func NewIdentity(id, email, name string) (*Identity, error) {
	if id == "" {
		return nil, fmt.Errorf("identity id is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	return &Identity{
		ID:    id,
		Email: strings.ToLower(strings.TrimSpace(email)),
		Name:  name,
	}, nil
}

// Profile is the enrichment document stored per user in the profile store,
// keyed 1:1 by Identity.ID. Timestamps are assigned by the store on write.
type Profile struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserView is the merged response entity combining Identity and Profile.
// It is assembled fresh on every request and never persisted.
type UserView struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	ProfileImage *string `json:"profile_image"`
}

// MergeUserView builds the unified user view from the two stores. The identity
// is authoritative for id and email. The profile, when present, overrides the
// display name and contributes the image reference; a missing profile yields a
// view backed by the identity alone with a nil image.
func MergeUserView(identity *Identity, profile *Profile) *UserView {
	view := &UserView{
		UserID: identity.ID,
		Email:  identity.Email,
		Name:   identity.Name,
	}

	if profile == nil {
		return view
	}

	if profile.Name != "" {
		view.Name = profile.Name
	}
	view.ProfileImage = profile.ProfileImage

	return view
}
