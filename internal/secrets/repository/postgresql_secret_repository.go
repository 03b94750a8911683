package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	apperrors "github.com/controleapp/inventory/internal/errors"
	"github.com/controleapp/inventory/internal/secrets/domain"
)

// PostgreSQLSecretRepository implements secret record persistence for
// PostgreSQL. Metadata is stored as JSONB; nil metadata is stored as NULL.
type PostgreSQLSecretRepository struct {
	db *sql.DB
}

// NewPostgreSQLSecretRepository creates a new PostgreSQL secret repository.
func NewPostgreSQLSecretRepository(db *sql.DB) *PostgreSQLSecretRepository {
	return &PostgreSQLSecretRepository{db: db}
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	payload, err := json.Marshal(metadata)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal secret metadata")
	}
	return payload, nil
}

// Create inserts a new secret record.
func (p *PostgreSQLSecretRepository) Create(ctx context.Context, record *domain.SecretRecord) error {
	metadataJSON, err := marshalMetadata(record.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO secret_records (id, app_id, kind, label, ciphertext, metadata, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = p.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.AppID,
		string(record.Kind),
		record.Label,
		record.Ciphertext,
		metadataJSON,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create secret record")
	}

	return nil
}

// Get returns the record with the given id or ErrSecretNotFound.
func (p *PostgreSQLSecretRepository) Get(ctx context.Context, id uuid.UUID) (*domain.SecretRecord, error) {
	query := `SELECT id, app_id, kind, label, ciphertext, metadata, created_at, updated_at
			  FROM secret_records
			  WHERE id = $1`

	record, err := p.scanRecord(p.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSecretNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get secret record")
	}

	return record, nil
}

// Update replaces the mutable fields of an existing record.
func (p *PostgreSQLSecretRepository) Update(ctx context.Context, record *domain.SecretRecord) error {
	metadataJSON, err := marshalMetadata(record.Metadata)
	if err != nil {
		return err
	}

	query := `UPDATE secret_records
			  SET kind = $2, label = $3, ciphertext = $4, metadata = $5, updated_at = $6
			  WHERE id = $1`

	result, err := p.db.ExecContext(
		ctx,
		query,
		record.ID,
		string(record.Kind),
		record.Label,
		record.Ciphertext,
		metadataJSON,
		record.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update secret record")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if affected == 0 {
		return domain.ErrSecretNotFound
	}

	return nil
}

// Delete removes a record and reports whether it existed.
func (p *PostgreSQLSecretRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := p.db.ExecContext(ctx, `DELETE FROM secret_records WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete secret record")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check delete result")
	}

	return affected > 0, nil
}

// ListByApp returns the application's records ordered by created_at
// descending, ties broken by id descending.
func (p *PostgreSQLSecretRepository) ListByApp(ctx context.Context, appID string) ([]*domain.SecretRecord, error) {
	query := `SELECT id, app_id, kind, label, ciphertext, metadata, created_at, updated_at
			  FROM secret_records
			  WHERE app_id = $1
			  ORDER BY created_at DESC, id DESC`

	rows, err := p.db.QueryContext(ctx, query, appID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list secret records")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*domain.SecretRecord, 0)
	for rows.Next() {
		record, err := p.scanRecord(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan secret record")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate secret records")
	}

	return records, nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func (p *PostgreSQLSecretRepository) scanRecord(scanner rowScanner) (*domain.SecretRecord, error) {
	var record domain.SecretRecord
	var kind string
	var metadataJSON []byte

	err := scanner.Scan(
		&record.ID,
		&record.AppID,
		&kind,
		&record.Label,
		&record.Ciphertext,
		&metadataJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Kind = domain.Kind(kind)

	if metadataJSON != nil {
		if err := json.Unmarshal(metadataJSON, &record.Metadata); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal secret metadata")
		}
	}

	return &record, nil
}
