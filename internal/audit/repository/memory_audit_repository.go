// Package repository provides audit event persistence backends.
package repository

import (
	"context"
	"sync"

	"github.com/controleapp/inventory/internal/audit/domain"
)

// MemoryAuditRepository implements in-process audit event storage with a
// bounded history. Once the history size is reached the oldest events are
// discarded.
type MemoryAuditRepository struct {
	mu          sync.RWMutex
	events      []*domain.Event
	historySize int
}

// NewMemoryAuditRepository creates a memory store retaining at most
// historySize events.
func NewMemoryAuditRepository(historySize int) *MemoryAuditRepository {
	if historySize <= 0 {
		historySize = 1000
	}
	return &MemoryAuditRepository{
		events:      make([]*domain.Event, 0, historySize),
		historySize: historySize,
	}
}

// Append stores a copy of the event, evicting the oldest entry when full.
func (m *MemoryAuditRepository) Append(_ context.Context, event *domain.Event) error {
	clone := *event

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.events) >= m.historySize {
		m.events = m.events[1:]
	}
	m.events = append(m.events, &clone)

	return nil
}

// List returns events newest first. Returns an empty slice when the window
// falls outside the retained history.
func (m *MemoryAuditRepository) List(_ context.Context, offset int, limit int) ([]*domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]*domain.Event, 0, limit)
	// events is ordered oldest first; walk it backwards.
	for i := len(m.events) - 1 - offset; i >= 0 && len(results) < limit; i-- {
		clone := *m.events[i]
		results = append(results, &clone)
	}

	return results, nil
}
