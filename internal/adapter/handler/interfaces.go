package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/render"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/capture"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/export"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/session"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type CatalogueService interface {
	Layouts(ctx context.Context) ([]entity.Layout, error)
	Stickers(ctx context.Context) ([]entity.StickerAsset, error)
	Backgrounds(ctx context.Context) ([]entity.BackgroundTexture, error)
	Filters() []valueobject.FilterPreset
	BackgroundColors() []string
}

type SessionService interface {
	Create(ctx context.Context, layoutID string) (*session.CreateResult, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Geometry(ctx context.Context, id uuid.UUID) (render.Geometry, error)
	UpdateStyle(ctx context.Context, id uuid.UUID, input session.StyleInput) (*entity.Session, error)
	UploadBackground(ctx context.Context, input session.UploadBackgroundInput) (*entity.Session, error)
	Reset(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	ObjectURL(ref string) string
}

type PhotoService interface {
	UploadPhoto(ctx context.Context, input session.UploadPhotoInput) (*entity.Photo, error)
	AddCapturedPhoto(ctx context.Context, sessionID uuid.UUID, c *capture.Capture) (*entity.Photo, error)
	UpdatePhoto(ctx context.Context, sessionID, photoID uuid.UUID, input session.UpdatePhotoInput) (*entity.Photo, error)
	DeletePhoto(ctx context.Context, sessionID, photoID uuid.UUID) error
	ObjectURL(ref string) string
}

type StickerService interface {
	AddSticker(ctx context.Context, sessionID uuid.UUID, src string) (*entity.Sticker, error)
	UpdateSticker(ctx context.Context, sessionID, stickerID uuid.UUID, input session.UpdateStickerInput) (*entity.Sticker, error)
	DeleteSticker(ctx context.Context, sessionID, stickerID uuid.UUID) error
	ObjectURL(ref string) string
}

type ExportService interface {
	Export(ctx context.Context, sessionID uuid.UUID) (*export.Result, error)
	Download(ctx context.Context, sessionID uuid.UUID) (*export.File, error)
	Preview(ctx context.Context, sessionID uuid.UUID) (*export.File, error)
	List(ctx context.Context, sessionID uuid.UUID) ([]entity.Export, error)
	Get(ctx context.Context, sessionID, exportID uuid.UUID) (*export.Result, error)
}
