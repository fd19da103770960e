package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
)

type ExportRepo struct {
	pool *pgxpool.Pool
}

func NewExportRepo(pool *pgxpool.Pool) *ExportRepo {
	return &ExportRepo{pool: pool}
}

func (r *ExportRepo) Create(ctx context.Context, export *entity.Export) error {
	query := `
		INSERT INTO exports (id, session_id, filename, key, url, width, height, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		export.ID, export.SessionID, export.Filename, export.Key, export.URL,
		export.Width, export.Height, export.Size, export.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting export: %w", err)
	}
	return nil
}

func (r *ExportRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Export, error) {
	query := `
		SELECT id, session_id, filename, key, url, width, height, size, created_at
		FROM exports
		WHERE id = $1
	`
	var e entity.Export
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.SessionID, &e.Filename, &e.Key, &e.URL,
		&e.Width, &e.Height, &e.Size, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExportNotFound
		}
		return nil, fmt.Errorf("querying export: %w", err)
	}
	return &e, nil
}

func (r *ExportRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Export, error) {
	query := `
		SELECT id, session_id, filename, key, url, width, height, size, created_at
		FROM exports
		WHERE session_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying exports: %w", err)
	}
	defer rows.Close()

	exports := []entity.Export{}
	for rows.Next() {
		var e entity.Export
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Filename, &e.Key, &e.URL,
			&e.Width, &e.Height, &e.Size, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning export: %w", err)
		}
		exports = append(exports, e)
	}

	return exports, rows.Err()
}
