// Package repository provides secret record persistence backends.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/controleapp/inventory/internal/secrets/domain"
)

// MemorySecretRepository implements in-process secret record storage.
type MemorySecretRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.SecretRecord
}

// NewMemorySecretRepository creates an empty repository.
func NewMemorySecretRepository() *MemorySecretRepository {
	return &MemorySecretRepository{
		records: make(map[uuid.UUID]*domain.SecretRecord),
	}
}

// cloneRecord copies a record so callers cannot mutate stored state.
func cloneRecord(record *domain.SecretRecord) *domain.SecretRecord {
	clone := *record
	clone.Metadata = cloneMetadata(record.Metadata)
	return &clone
}

// cloneMetadata deep-copies a metadata map, including nested maps and slices
// as produced by JSON decoding.
func cloneMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	clone := make(map[string]any, len(metadata))
	for k, v := range metadata {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMetadata(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = cloneValue(item)
		}
		return items
	default:
		return v
	}
}

// Create stores a new record.
func (m *MemorySecretRepository) Create(_ context.Context, record *domain.SecretRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.ID] = cloneRecord(record)
	return nil
}

// Get returns the record with the given id or ErrSecretNotFound.
func (m *MemorySecretRepository) Get(_ context.Context, id uuid.UUID) (*domain.SecretRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrSecretNotFound
	}
	return cloneRecord(record), nil
}

// Update replaces an existing record. Returns ErrSecretNotFound if the
// record does not exist.
func (m *MemorySecretRepository) Update(_ context.Context, record *domain.SecretRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return domain.ErrSecretNotFound
	}
	m.records[record.ID] = cloneRecord(record)
	return nil
}

// Delete removes a record and reports whether it existed.
func (m *MemorySecretRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	return true, nil
}

// ListByApp returns the application's records ordered by CreatedAt
// descending, ties broken by id descending for a stable order.
func (m *MemorySecretRepository) ListByApp(_ context.Context, appID string) ([]*domain.SecretRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*domain.SecretRecord, 0)
	for _, record := range m.records {
		if record.AppID == appID {
			records = append(records, cloneRecord(record))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID.String() > records[j].ID.String()
	})

	return records, nil
}
