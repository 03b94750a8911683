package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/controleapp/inventory/internal/audit/domain"
	apperrors "github.com/controleapp/inventory/internal/errors"
)

// PostgreSQLAuditRepository implements audit event persistence for PostgreSQL.
// Context is stored as JSONB; a nil context map is stored as NULL.
type PostgreSQLAuditRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuditRepository creates a new PostgreSQL audit event repository.
func NewPostgreSQLAuditRepository(db *sql.DB) *PostgreSQLAuditRepository {
	return &PostgreSQLAuditRepository{db: db}
}

// Append inserts a new audit event.
func (p *PostgreSQLAuditRepository) Append(ctx context.Context, event *domain.Event) error {
	var contextJSON []byte
	var err error

	if event.Context != nil {
		contextJSON, err = json.Marshal(event.Context)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal audit event context")
		}
	}

	query := `INSERT INTO audit_events (id, actor_id, actor_email, action, resource, resource_id, context, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = p.db.ExecContext(
		ctx,
		query,
		event.ID,
		event.ActorID,
		event.ActorEmail,
		string(event.Action),
		event.Resource,
		event.ResourceID,
		contextJSON,
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit event")
	}

	return nil
}

// List retrieves audit events ordered by created_at descending with
// pagination. Returns an empty slice if no events match the window.
func (p *PostgreSQLAuditRepository) List(ctx context.Context, offset int, limit int) ([]*domain.Event, error) {
	query := `SELECT id, actor_id, actor_email, action, resource, resource_id, context, created_at
			  FROM audit_events
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := p.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit events")
	}
	defer func() {
		_ = rows.Close()
	}()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		var event domain.Event
		var action string
		var contextJSON []byte

		err := rows.Scan(
			&event.ID,
			&event.ActorID,
			&event.ActorEmail,
			&action,
			&event.Resource,
			&event.ResourceID,
			&contextJSON,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit event")
		}

		event.Action = domain.Action(action)

		if contextJSON != nil {
			if err := json.Unmarshal(contextJSON, &event.Context); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal audit event context")
			}
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit events")
	}

	return events, nil
}
