package token

import (
	"errors"
	"fmt"
	"time"

	"auth-facade/app/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config holds local token codec configuration.
type Config struct {
	Secret string
	TTL    time.Duration
}

// JWTCodec issues and verifies locally-signed HS256 tokens.
// Implements port.TokenCodec.
type JWTCodec struct {
	cfg Config
}

// NewJWTCodec creates a new JWT codec. The signing secret is injected once at
// construction and never read from mutable state afterwards.
func NewJWTCodec(cfg Config) *JWTCodec {
	return &JWTCodec{cfg: cfg}
}

// Issue generates a signed token with {sub, iat, exp, jti} claims. The jti
// makes every issued token distinct even within the same second.
func (c *JWTCodec) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.Secret))
}

// Verify checks signature and expiry and returns the token subject. A token
// without an exp claim is rejected; there is no grace window.
func (c *JWTCodec) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(c.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}

	return claims.Subject, nil
}
