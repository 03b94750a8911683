// Package usecase implements the secret record business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/controleapp/inventory/internal/secrets/domain"
)

// SecretRepository defines secret record persistence operations.
type SecretRepository interface {
	Create(ctx context.Context, record *domain.SecretRecord) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SecretRecord, error)
	Update(ctx context.Context, record *domain.SecretRecord) error
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// ListByApp returns records for the application, newest created first.
	ListByApp(ctx context.Context, appID string) ([]*domain.SecretRecord, error)
}

// AppChecker reports whether an application exists in the inventory.
type AppChecker interface {
	Exists(ctx context.Context, appID string) (bool, error)
}

// SecretUseCase defines the secret record operations exposed over HTTP.
type SecretUseCase interface {
	// ListByApp returns the application's records, newest created first.
	// Ciphertext stays inside the records; views must not serialize it.
	ListByApp(ctx context.Context, appID string) ([]*domain.SecretRecord, error)

	// Create validates the input, encrypts the plaintext and stores a new
	// record. The owning application must exist.
	Create(ctx context.Context, input domain.CreateSecretInput) (*domain.SecretRecord, error)

	// Reveal decrypts and returns the stored plaintext value.
	Reveal(ctx context.Context, id uuid.UUID) (string, error)

	// Rotate replaces the stored value with a freshly encrypted one and
	// bumps UpdatedAt.
	Rotate(ctx context.Context, id uuid.UUID, plaintext string) (*domain.SecretRecord, error)

	// Delete permanently removes a record.
	Delete(ctx context.Context, id uuid.UUID) error
}
