package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/controleapp/inventory/internal/auth/domain"
)

// delegatedTokenService implements TokenAuthority by deferring verification to
// an external identity provider's user endpoint. The provider owns issuance,
// so Issue always fails.
//
// A bearer token is valid iff GET {baseURL}/auth/v1/user answers 200 with a
// user record for it. The provider's role metadata is mapped onto the local
// role set; anything unknown degrades to the read-only role rather than
// being rejected.
type delegatedTokenService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewDelegatedTokenService creates a verify-only token authority backed by
// the identity provider at baseURL.
func NewDelegatedTokenService(baseURL string, apiKey string, logger *slog.Logger) TokenAuthority {
	return &delegatedTokenService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Issue always returns ErrIssueNotSupported; tokens come from the provider.
func (s *delegatedTokenService) Issue(_ *domain.User, _ time.Duration) (string, error) {
	return "", domain.ErrIssueNotSupported
}

// providerUser is the subset of the provider's user record we consume.
type providerUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	AppMetadata  map[string]any `json:"app_metadata"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// Verify resolves the token through the provider. Transport errors, non-200
// answers and unusable user records all yield nil claims.
func (s *delegatedTokenService) Verify(ctx context.Context, token string) *domain.Claims {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("identity provider request failed", "error", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var user providerUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		s.logger.Warn("identity provider returned malformed user record", "error", err)
		return nil
	}
	if user.ID == "" || user.Email == "" {
		return nil
	}

	return &domain.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Role:  roleFromMetadata(user.AppMetadata),
		Name:  nameFromMetadata(user.UserMetadata, user.Email),
		// Expiry is enforced by the provider on every lookup.
		Exp: time.Now().UTC().Add(time.Minute).UnixMilli(),
	}
}

// roleFromMetadata maps the provider's role metadata onto the local role set.
// Missing or unknown roles degrade to the read-only role.
func roleFromMetadata(appMetadata map[string]any) domain.Role {
	raw, _ := appMetadata["role"].(string)
	role, err := domain.ParseRole(raw)
	if err != nil {
		return domain.RoleReader
	}
	return role
}

// nameFromMetadata extracts a display name, falling back to the email.
func nameFromMetadata(userMetadata map[string]any, email string) string {
	if name, ok := userMetadata["name"].(string); ok && strings.TrimSpace(name) != "" {
		return name
	}
	return email
}
