package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Update(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Catalogue data lives in the configuration store and is read-only here.

type LayoutRepository interface {
	List(ctx context.Context) ([]entity.Layout, error)
	GetByID(ctx context.Context, id string) (*entity.Layout, error)
}

type StickerRepository interface {
	List(ctx context.Context) ([]entity.StickerAsset, error)
}

type BackgroundRepository interface {
	List(ctx context.Context) ([]entity.BackgroundTexture, error)
}

type ExportRepository interface {
	Create(ctx context.Context, export *entity.Export) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Export, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Export, error)
}
