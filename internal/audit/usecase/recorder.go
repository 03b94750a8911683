// Package usecase implements audit trail recording and retrieval.
package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/controleapp/inventory/internal/audit/domain"
)

// appendTimeout bounds each store write made by the background worker.
const appendTimeout = 5 * time.Second

// Recorder accepts audit events from request handling and serves reads.
//
// Record never blocks request handling and never fails it: persistence
// problems are logged and dropped, not propagated to the caller.
type Recorder interface {
	// Record enqueues an event for persistence. The event's ID and CreatedAt
	// are assigned here if unset. Safe for concurrent use.
	Record(event domain.Event)

	// List returns recorded events newest first.
	List(ctx context.Context, offset int, limit int) ([]*domain.Event, error)

	// Close drains pending events and stops the background worker.
	Close(ctx context.Context) error
}

// EventStore persists audit events.
type EventStore interface {
	Append(ctx context.Context, event *domain.Event) error
	List(ctx context.Context, offset int, limit int) ([]*domain.Event, error)
}

// asyncRecorder implements Recorder with a buffered queue and a single
// background worker draining it into the store.
type asyncRecorder struct {
	store  EventStore
	logger *slog.Logger

	queue     chan domain.Event
	done      chan struct{}
	closeOnce sync.Once

	// mu orders queue sends against close(queue) so Record stays safe no
	// matter how callers interleave it with Close.
	mu     sync.RWMutex
	closed bool
}

// NewAsyncRecorder creates a Recorder with the given queue capacity and
// starts its background worker.
func NewAsyncRecorder(store EventStore, bufferSize int, logger *slog.Logger) Recorder {
	if bufferSize <= 0 {
		bufferSize = 256
	}

	r := &asyncRecorder{
		store:  store,
		logger: logger,
		queue:  make(chan domain.Event, bufferSize),
		done:   make(chan struct{}),
	}
	go r.worker()

	return r
}

// Record enqueues the event without blocking. When the queue is full the
// event is dropped and the drop is logged; the audit trail is best-effort
// under sustained overload, never a source of request latency.
func (r *asyncRecorder) Record(event domain.Event) {
	if event.ID == uuid.Nil {
		event.ID = uuid.Must(uuid.NewV7())
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.logger.Warn("audit recorder closed, dropping event",
			slog.String("action", string(event.Action)),
			slog.String("actor_id", event.ActorID))
		return
	}

	select {
	case r.queue <- event:
	default:
		r.logger.Warn("audit queue full, dropping event",
			slog.String("action", string(event.Action)),
			slog.String("actor_id", event.ActorID))
	}
}

// List returns recorded events newest first.
func (r *asyncRecorder) List(ctx context.Context, offset int, limit int) ([]*domain.Event, error) {
	return r.store.List(ctx, offset, limit)
}

// Close stops accepting events, waits for the worker to drain the queue or
// for ctx to expire, and returns. Safe to call more than once.
func (r *asyncRecorder) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		close(r.queue)
	})

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// worker drains the queue into the store. Store failures are logged and the
// worker moves on; one bad write must not stall the trail.
func (r *asyncRecorder) worker() {
	defer close(r.done)

	for event := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		if err := r.store.Append(ctx, &event); err != nil {
			r.logger.Error("failed to persist audit event",
				slog.String("action", string(event.Action)),
				slog.String("actor_id", event.ActorID),
				slog.String("error", err.Error()))
		}
		cancel()
	}
}
