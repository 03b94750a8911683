// Package domain defines the secret record model.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/controleapp/inventory/internal/errors"
)

// Kind classifies what a secret record protects.
type Kind string

const (
	KindSSH    Kind = "ssh"
	KindDomain Kind = "domain"
	KindAPIKey Kind = "api_key"
)

// ParseKind validates a raw kind string against the closed set of kinds.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindSSH, KindDomain, KindAPIKey:
		return Kind(raw), nil
	default:
		return "", errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("unknown secret kind: %q", raw))
	}
}

// SecretRecord is a stored secret. Ciphertext holds the envelope blob; the
// plaintext value exists only transiently inside create, reveal and rotate.
type SecretRecord struct {
	ID         uuid.UUID      `json:"id"`
	AppID      string         `json:"appId"`
	Kind       Kind           `json:"kind"`
	Label      string         `json:"label"`
	Ciphertext string         `json:"-"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// CreateSecretInput carries the fields needed to create a secret record.
type CreateSecretInput struct {
	AppID     string
	Kind      Kind
	Label     string
	Plaintext string
	Metadata  map[string]any
}
