package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
)

type LayoutRepo struct {
	pool *pgxpool.Pool
}

func NewLayoutRepo(pool *pgxpool.Pool) *LayoutRepo {
	return &LayoutRepo{pool: pool}
}

const layoutColumns = `id, type, title, description, photo_count, aspect_ratio, preview_image`

func scanLayout(row pgx.Row, l *entity.Layout) error {
	return row.Scan(
		&l.ID, &l.Type, &l.Title, &l.Description,
		&l.PhotoCount, &l.AspectRatio, &l.PreviewImage,
	)
}

func (r *LayoutRepo) List(ctx context.Context) ([]entity.Layout, error) {
	query := `SELECT ` + layoutColumns + ` FROM layouts ORDER BY position ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying layouts: %w", err)
	}
	defer rows.Close()

	var layouts []entity.Layout
	for rows.Next() {
		var l entity.Layout
		if err := scanLayout(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning layout: %w", err)
		}
		layouts = append(layouts, l)
	}

	return layouts, rows.Err()
}

func (r *LayoutRepo) GetByID(ctx context.Context, id string) (*entity.Layout, error) {
	query := `SELECT ` + layoutColumns + ` FROM layouts WHERE id = $1`

	var l entity.Layout
	if err := scanLayout(r.pool.QueryRow(ctx, query, id), &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLayoutNotFound
		}
		return nil, fmt.Errorf("querying layout: %w", err)
	}
	return &l, nil
}
