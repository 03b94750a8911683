package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controleapp/inventory/internal/audit/domain"
)

func appendEvents(t *testing.T, repo *MemoryAuditRepository, n int) {
	t.Helper()
	base := time.Now().UTC()
	for i := 0; i < n; i++ {
		err := repo.Append(context.Background(), &domain.Event{
			ID:        uuid.Must(uuid.NewV7()),
			ActorID:   fmt.Sprintf("usr_%d", i),
			Action:    domain.ActionCreate,
			Resource:  "/v1/secrets",
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		})
		require.NoError(t, err)
	}
}

func TestMemoryAuditRepository_NewestFirst(t *testing.T) {
	repo := NewMemoryAuditRepository(100)
	appendEvents(t, repo, 5)

	events, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 5)

	assert.Equal(t, "usr_4", events[0].ActorID)
	assert.Equal(t, "usr_0", events[4].ActorID)
}

func TestMemoryAuditRepository_Pagination(t *testing.T) {
	repo := NewMemoryAuditRepository(100)
	appendEvents(t, repo, 5)

	events, err := repo.List(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "usr_2", events[0].ActorID)
	assert.Equal(t, "usr_1", events[1].ActorID)

	events, err = repo.List(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMemoryAuditRepository_EvictsOldest(t *testing.T) {
	repo := NewMemoryAuditRepository(3)
	appendEvents(t, repo, 5)

	events, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "usr_4", events[0].ActorID)
	assert.Equal(t, "usr_2", events[2].ActorID)
}

func TestMemoryAuditRepository_CopiesEvents(t *testing.T) {
	repo := NewMemoryAuditRepository(10)

	event := &domain.Event{
		ID:      uuid.Must(uuid.NewV7()),
		ActorID: "usr_admin",
		Action:  domain.ActionDelete,
	}
	require.NoError(t, repo.Append(context.Background(), event))

	event.ActorID = "mutated"

	events, err := repo.List(context.Background(), 0, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "usr_admin", events[0].ActorID)
}
