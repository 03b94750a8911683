package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/controleapp/inventory/internal/auth/domain"
	apperrors "github.com/controleapp/inventory/internal/errors"
)

// hmacTokenService implements TokenAuthority with a compact two-segment format:
//
//	base64url(claimsJSON) "." base64url(HMAC-SHA256(base64url(claimsJSON)))
//
// Both segments use unpadded URL-safe base64. The signed message is the
// encoded claims segment, not the raw JSON, so any byte change to the token
// invalidates the signature.
type hmacTokenService struct {
	secret []byte
}

// NewHMACTokenService creates a local token authority signing with the given
// shared secret.
func NewHMACTokenService(secret string) TokenAuthority {
	return &hmacTokenService{
		secret: []byte(secret),
	}
}

// Issue creates a signed token for the user with expiry ttl from now. The
// expiry claim is a Unix epoch timestamp in milliseconds.
func (s *hmacTokenService) Issue(user *domain.User, ttl time.Duration) (string, error) {
	claims := domain.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Role:  user.Role,
		Name:  user.Name,
		Exp:   time.Now().UTC().Add(ttl).UnixMilli(),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal token claims")
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + s.sign(encoded), nil
}

// Verify checks the signature, shape and expiry of a raw token. Any failure
// yields nil claims.
func (s *hmacTokenService) Verify(_ context.Context, token string) *domain.Claims {
	encoded, signature, found := strings.Cut(token, ".")
	if !found || encoded == "" || signature == "" {
		return nil
	}

	if !hmac.Equal([]byte(s.sign(encoded)), []byte(signature)) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var claims domain.Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil
	}
	if claims.Sub == "" || claims.Email == "" || claims.Name == "" || claims.Exp == 0 {
		return nil
	}
	if _, err := domain.ParseRole(string(claims.Role)); err != nil {
		return nil
	}
	if time.Now().UTC().UnixMilli() > claims.Exp {
		return nil
	}

	return &claims
}

func (s *hmacTokenService) sign(message string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
