// Package repository provides credential storage for login.
package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/controleapp/inventory/internal/auth/domain"
	apperrors "github.com/controleapp/inventory/internal/errors"
)

// MemoryUserRepository implements in-process credential storage keyed by
// lowercased email.
type MemoryUserRepository struct {
	mu          sync.RWMutex
	credentials map[string]domain.Credential
}

// NewMemoryUserRepository creates a repository seeded with the given
// credentials.
func NewMemoryUserRepository(credentials []domain.Credential) *MemoryUserRepository {
	byEmail := make(map[string]domain.Credential, len(credentials))
	for _, credential := range credentials {
		byEmail[strings.ToLower(credential.User.Email)] = credential
	}

	return &MemoryUserRepository{
		credentials: byEmail,
	}
}

// GetByEmail looks up a credential by email, case-insensitively.
// Returns ErrNotFound for unknown emails.
func (m *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	credential, ok := m.credentials[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}

	return &credential, nil
}
