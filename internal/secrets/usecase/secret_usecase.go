package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/controleapp/inventory/internal/crypto/domain"
	cryptoService "github.com/controleapp/inventory/internal/crypto/service"
	apperrors "github.com/controleapp/inventory/internal/errors"
	"github.com/controleapp/inventory/internal/secrets/domain"
)

// secretUseCase implements SecretUseCase with encrypt-before-store semantics:
// the envelope is sealed before any repository write, so a failed write never
// leaves plaintext anywhere and a failed encryption never touches storage.
type secretUseCase struct {
	repo     SecretRepository
	apps     AppChecker
	envelope cryptoService.Envelope
}

// NewSecretUseCase creates a new SecretUseCase.
func NewSecretUseCase(repo SecretRepository, apps AppChecker, envelope cryptoService.Envelope) SecretUseCase {
	return &secretUseCase{
		repo:     repo,
		apps:     apps,
		envelope: envelope,
	}
}

// ListByApp returns the application's records, newest created first.
func (uc *secretUseCase) ListByApp(ctx context.Context, appID string) ([]*domain.SecretRecord, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "appId is required")
	}
	return uc.repo.ListByApp(ctx, appID)
}

// Create validates the input, checks the owning application and stores a new
// encrypted record.
func (uc *secretUseCase) Create(ctx context.Context, input domain.CreateSecretInput) (*domain.SecretRecord, error) {
	if strings.TrimSpace(input.AppID) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "appId is required")
	}
	if _, err := domain.ParseKind(string(input.Kind)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Label) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "label must not be blank")
	}
	if strings.TrimSpace(input.Plaintext) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "plainValue must not be blank")
	}

	exists, err := uc.apps.Exists(ctx, input.AppID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check application")
	}
	if !exists {
		return nil, domain.ErrAppNotFound
	}

	plaintext := []byte(input.Plaintext)
	ciphertext, err := uc.envelope.Encrypt(plaintext)
	cryptoDomain.Zero(plaintext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt secret value")
	}

	now := time.Now().UTC()
	record := &domain.SecretRecord{
		ID:         uuid.Must(uuid.NewV7()),
		AppID:      input.AppID,
		Kind:       input.Kind,
		Label:      strings.TrimSpace(input.Label),
		Ciphertext: ciphertext,
		Metadata:   input.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Reveal decrypts and returns the stored plaintext value.
func (uc *secretUseCase) Reveal(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := uc.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	plaintext, err := uc.envelope.Decrypt(record.Ciphertext)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// Rotate replaces the stored value. The record keeps its identity, kind and
// label; only the ciphertext and UpdatedAt change. Concurrent rotations are
// last-writer-wins.
func (uc *secretUseCase) Rotate(ctx context.Context, id uuid.UUID, plaintext string) (*domain.SecretRecord, error) {
	if strings.TrimSpace(plaintext) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "plainValue must not be blank")
	}

	record, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	buf := []byte(plaintext)
	ciphertext, err := uc.envelope.Encrypt(buf)
	cryptoDomain.Zero(buf)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt secret value")
	}

	record.Ciphertext = ciphertext
	record.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete permanently removes a record. Deleting an unknown id yields
// ErrSecretNotFound.
func (uc *secretUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrSecretNotFound
	}
	return nil
}
