package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/controleapp/inventory/internal/metrics"
	"github.com/controleapp/inventory/internal/secrets/domain"
)

// secretUseCaseWithMetrics decorates SecretUseCase with metrics instrumentation.
type secretUseCaseWithMetrics struct {
	next    SecretUseCase
	metrics metrics.BusinessMetrics
}

// NewSecretUseCaseWithMetrics wraps a SecretUseCase with metrics recording.
func NewSecretUseCaseWithMetrics(useCase SecretUseCase, m metrics.BusinessMetrics) SecretUseCase {
	return &secretUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *secretUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", operation, status)
	s.metrics.RecordDuration(ctx, "secrets", operation, time.Since(start), status)
}

// ListByApp records metrics for secret listing operations.
func (s *secretUseCaseWithMetrics) ListByApp(ctx context.Context, appID string) ([]*domain.SecretRecord, error) {
	start := time.Now()
	records, err := s.next.ListByApp(ctx, appID)
	s.record(ctx, "secret_list", start, err)
	return records, err
}

// Create records metrics for secret creation operations.
func (s *secretUseCaseWithMetrics) Create(ctx context.Context, input domain.CreateSecretInput) (*domain.SecretRecord, error) {
	start := time.Now()
	record, err := s.next.Create(ctx, input)
	s.record(ctx, "secret_create", start, err)
	return record, err
}

// Reveal records metrics for secret reveal operations.
func (s *secretUseCaseWithMetrics) Reveal(ctx context.Context, id uuid.UUID) (string, error) {
	start := time.Now()
	value, err := s.next.Reveal(ctx, id)
	s.record(ctx, "secret_reveal", start, err)
	return value, err
}

// Rotate records metrics for secret rotation operations.
func (s *secretUseCaseWithMetrics) Rotate(ctx context.Context, id uuid.UUID, plaintext string) (*domain.SecretRecord, error) {
	start := time.Now()
	record, err := s.next.Rotate(ctx, id, plaintext)
	s.record(ctx, "secret_rotate", start, err)
	return record, err
}

// Delete records metrics for secret deletion operations.
func (s *secretUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.record(ctx, "secret_delete", start, err)
	return err
}
