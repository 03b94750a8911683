// Package service provides the token authorities and password hashing used by
// authentication: a local HMAC-signed token format and a delegated verifier
// that defers to an external identity provider.
package service

import (
	"context"
	"time"

	"github.com/controleapp/inventory/internal/auth/domain"
)

// TokenAuthority issues and verifies access tokens.
//
// Verify is deliberately error-free: any failure (malformed token, bad
// signature, expired, unknown role, missing fields) yields nil, so callers
// cannot leak the reason a token was rejected.
type TokenAuthority interface {
	// Issue creates a signed token for the user, expiring ttl from now.
	Issue(user *domain.User, ttl time.Duration) (string, error)

	// Verify checks a raw token and returns its claims, or nil if the token is
	// invalid for any reason.
	Verify(ctx context.Context, token string) *domain.Claims
}

// PasswordService hashes and verifies login passwords.
type PasswordService interface {
	// Hash produces a self-describing hash of the plain password.
	Hash(plainPassword string) (string, error)

	// Compare reports whether the plain password matches the stored hash.
	// The comparison is constant-time with respect to the password.
	Compare(plainPassword string, hashedPassword string) bool
}
