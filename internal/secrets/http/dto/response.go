package dto

import (
	"time"

	secretsDomain "github.com/controleapp/inventory/internal/secrets/domain"
)

// SecretResponse is the public view of a secret record. It never carries the
// ciphertext or the plaintext value.
type SecretResponse struct {
	ID        string         `json:"id"`
	AppID     string         `json:"appId"`
	Kind      string         `json:"kind"`
	Label     string         `json:"label"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ListSecretsResponse is the payload returned by GET /v1/secrets.
type ListSecretsResponse struct {
	Secrets []SecretResponse `json:"secrets"`
}

// RevealSecretResponse is the payload returned by GET /v1/secrets/:id/reveal.
type RevealSecretResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// RotateSecretResponse is the payload returned by PUT /v1/secrets/:id.
type RotateSecretResponse struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapSecretToResponse converts a secret record to its public view.
func MapSecretToResponse(record *secretsDomain.SecretRecord) SecretResponse {
	return SecretResponse{
		ID:        record.ID.String(),
		AppID:     record.AppID,
		Kind:      string(record.Kind),
		Label:     record.Label,
		Metadata:  record.Metadata,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// MapSecretsToListResponse converts records to the list payload.
func MapSecretsToListResponse(records []*secretsDomain.SecretRecord) ListSecretsResponse {
	secrets := make([]SecretResponse, 0, len(records))
	for _, record := range records {
		secrets = append(secrets, MapSecretToResponse(record))
	}
	return ListSecretsResponse{Secrets: secrets}
}
