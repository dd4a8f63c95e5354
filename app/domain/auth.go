package domain

// AuthResult is the outcome of an operation that authenticates a user:
// the merged user view plus a freshly issued local token.
type AuthResult struct {
	User  *UserView `json:"user"`
	Token string    `json:"token"`
}

// ResetAck acknowledges an accepted password reset request. The recovery
// link itself is delivered out-of-band and never returned to the caller.
type ResetAck struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}
