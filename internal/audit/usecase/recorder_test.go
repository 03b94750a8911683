package usecase

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/controleapp/inventory/internal/audit/domain"
)

// blockingStore is an EventStore whose Append blocks until released.
type blockingStore struct {
	mu      sync.Mutex
	events  []*domain.Event
	release chan struct{}
}

func newBlockingStore() *blockingStore {
	return &blockingStore{release: make(chan struct{})}
}

func (s *blockingStore) Append(ctx context.Context, event *domain.Event) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *event
	s.events = append(s.events, &clone)
	return nil
}

func (s *blockingStore) List(_ context.Context, offset int, limit int) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*domain.Event, 0, limit)
	for i := len(s.events) - 1 - offset; i >= 0 && len(results) < limit; i-- {
		results = append(results, s.events[i])
	}
	return results, nil
}

func (s *blockingStore) stored() []*domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Event(nil), s.events...)
}

func TestAsyncRecorder_PersistsEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newBlockingStore()
	close(store.release)

	recorder := NewAsyncRecorder(store, 16, slog.Default())

	recorder.Record(domain.Event{
		ActorID:    "usr_admin",
		ActorEmail: "admin@controle.local",
		Action:     domain.ActionLoginSuccess,
		Resource:   "/v1/auth/login",
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))

	events := store.stored()
	require.Len(t, events, 1)
	assert.Equal(t, domain.ActionLoginSuccess, events[0].Action)
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].CreatedAt.IsZero())
}

func TestAsyncRecorder_DropsWhenQueueFull(t *testing.T) {
	store := newBlockingStore()
	recorder := NewAsyncRecorder(store, 2, slog.Default())

	// The worker parks on the first blocked append; two more fill the queue,
	// everything past that is dropped without blocking.
	for i := 0; i < 10; i++ {
		recorder.Record(domain.Event{Action: domain.ActionCreate})
	}

	close(store.release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))

	assert.LessOrEqual(t, len(store.stored()), 4)
	assert.GreaterOrEqual(t, len(store.stored()), 1)
}

func TestAsyncRecorder_CloseDrains(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newBlockingStore()
	close(store.release)

	recorder := NewAsyncRecorder(store, 64, slog.Default())
	for i := 0; i < 20; i++ {
		recorder.Record(domain.Event{Action: domain.ActionUpdate})
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))
	assert.Len(t, store.stored(), 20)

	// Close is idempotent.
	require.NoError(t, recorder.Close(ctx))
}

func TestAsyncRecorder_CloseTimeout(t *testing.T) {
	store := newBlockingStore()
	recorder := NewAsyncRecorder(store, 16, slog.Default())

	recorder.Record(domain.Event{Action: domain.ActionDelete})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, recorder.Close(ctx), context.DeadlineExceeded)

	// Unblock the store so the worker can exit.
	close(store.release)
	drainCtx, drainCancel := context.WithTimeout(context.Background(), time.Second)
	defer drainCancel()
	require.NoError(t, recorder.Close(drainCtx))
}

func TestAsyncRecorder_RecordAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newBlockingStore()
	close(store.release)

	recorder := NewAsyncRecorder(store, 16, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))

	// Must drop silently, never panic on the closed queue.
	assert.NotPanics(t, func() {
		recorder.Record(domain.Event{Action: domain.ActionCreate})
	})
	assert.Empty(t, store.stored())
}

func TestAsyncRecorder_ConcurrentRecordAndClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newBlockingStore()
	close(store.release)

	recorder := NewAsyncRecorder(store, 4, slog.Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				recorder.Record(domain.Event{Action: domain.ActionViewSecret})
			}
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))
	wg.Wait()
}

func TestAsyncRecorder_List(t *testing.T) {
	store := newBlockingStore()
	close(store.release)

	recorder := NewAsyncRecorder(store, 16, slog.Default())
	recorder.Record(domain.Event{Action: domain.ActionCreate})
	recorder.Record(domain.Event{Action: domain.ActionDelete})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))

	events, err := recorder.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionDelete, events[0].Action)
	assert.Equal(t, domain.ActionCreate, events[1].Action)
}
