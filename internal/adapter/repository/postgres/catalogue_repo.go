package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
)

type StickerRepo struct {
	pool *pgxpool.Pool
}

func NewStickerRepo(pool *pgxpool.Pool) *StickerRepo {
	return &StickerRepo{pool: pool}
}

func (r *StickerRepo) List(ctx context.Context) ([]entity.StickerAsset, error) {
	query := `
		SELECT id, name, src, category
		FROM stickers
		ORDER BY position ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stickers: %w", err)
	}
	defer rows.Close()

	var stickers []entity.StickerAsset
	for rows.Next() {
		var s entity.StickerAsset
		if err := rows.Scan(&s.ID, &s.Name, &s.Src, &s.Category); err != nil {
			return nil, fmt.Errorf("scanning sticker: %w", err)
		}
		stickers = append(stickers, s)
	}

	return stickers, rows.Err()
}

type BackgroundRepo struct {
	pool *pgxpool.Pool
}

func NewBackgroundRepo(pool *pgxpool.Pool) *BackgroundRepo {
	return &BackgroundRepo{pool: pool}
}

func (r *BackgroundRepo) List(ctx context.Context) ([]entity.BackgroundTexture, error) {
	query := `
		SELECT id, name, src
		FROM background_textures
		ORDER BY position ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying background textures: %w", err)
	}
	defer rows.Close()

	var textures []entity.BackgroundTexture
	for rows.Next() {
		var b entity.BackgroundTexture
		if err := rows.Scan(&b.ID, &b.Name, &b.Src); err != nil {
			return nil, fmt.Errorf("scanning background texture: %w", err)
		}
		textures = append(textures, b)
	}

	return textures, rows.Err()
}
