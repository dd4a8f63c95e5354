package port

//go:generate mockgen -source=token_port.go -destination=../mocks/mock_token_port.go

// TokenCodec creates and verifies locally-signed tokens. Tokens are
// stateless: verification re-computes the signature, nothing is persisted.
type TokenCodec interface {
	// Issue produces a signed token asserting the given subject.
	Issue(subject string) (string, error)

	// Verify checks signature and expiry and returns the subject.
	// Returns domain.ErrTokenExpired for expired tokens and
	// domain.ErrTokenMalformed for anything structurally or
	// cryptographically invalid.
	Verify(token string) (string, error)
}
