package catalogue

import (
	"context"
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

// Service reads the booth catalogue from the configuration store. Any of
// the repositories may be nil, in which case the built-in table is used.
type Service struct {
	layoutRepo     repository.LayoutRepository
	stickerRepo    repository.StickerRepository
	backgroundRepo repository.BackgroundRepository
	logger         *zap.Logger
}

func NewService(
	layoutRepo repository.LayoutRepository,
	stickerRepo repository.StickerRepository,
	backgroundRepo repository.BackgroundRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		layoutRepo:     layoutRepo,
		stickerRepo:    stickerRepo,
		backgroundRepo: backgroundRepo,
		logger:         logger,
	}
}

func (s *Service) Layouts(ctx context.Context) ([]entity.Layout, error) {
	if s.layoutRepo == nil {
		return slices.Clone(builtinLayouts), nil
	}

	layouts, err := s.layoutRepo.List(ctx)
	if err != nil {
		s.logger.Warn("layout store unavailable, using built-in layouts", zap.Error(err))
		return slices.Clone(builtinLayouts), nil
	}
	if len(layouts) == 0 {
		return slices.Clone(builtinLayouts), nil
	}

	return layouts, nil
}

// Layout resolves a layout id. The built-in table is consulted when the
// store does not know the id.
func (s *Service) Layout(ctx context.Context, id string) (*entity.Layout, error) {
	if s.layoutRepo != nil {
		layout, err := s.layoutRepo.GetByID(ctx, id)
		if err == nil {
			return layout, nil
		}
		if !errors.Is(err, domain.ErrLayoutNotFound) {
			s.logger.Warn("layout store unavailable, using built-in layouts",
				zap.String("layout_id", id),
				zap.Error(err),
			)
		}
	}

	i := slices.IndexFunc(builtinLayouts, func(l entity.Layout) bool { return l.ID == id })
	if i < 0 {
		return nil, domain.ErrLayoutNotFound
	}
	layout := builtinLayouts[i]
	return &layout, nil
}

func (s *Service) Stickers(ctx context.Context) ([]entity.StickerAsset, error) {
	if s.stickerRepo == nil {
		return slices.Clone(builtinStickers), nil
	}

	stickers, err := s.stickerRepo.List(ctx)
	if err != nil {
		s.logger.Warn("sticker store unavailable, using built-in stickers", zap.Error(err))
		return slices.Clone(builtinStickers), nil
	}
	if len(stickers) == 0 {
		return slices.Clone(builtinStickers), nil
	}

	return stickers, nil
}

func (s *Service) Backgrounds(ctx context.Context) ([]entity.BackgroundTexture, error) {
	if s.backgroundRepo == nil {
		return slices.Clone(builtinBackgrounds), nil
	}

	textures, err := s.backgroundRepo.List(ctx)
	if err != nil {
		s.logger.Warn("background store unavailable, using built-in textures", zap.Error(err))
		return slices.Clone(builtinBackgrounds), nil
	}
	if len(textures) == 0 {
		return slices.Clone(builtinBackgrounds), nil
	}

	return textures, nil
}

// HasAsset reports whether ref is the source of a catalogue sticker or
// background texture.
func (s *Service) HasAsset(ctx context.Context, ref string) bool {
	stickers, _ := s.Stickers(ctx)
	if slices.ContainsFunc(stickers, func(a entity.StickerAsset) bool { return a.Src == ref }) {
		return true
	}

	textures, _ := s.Backgrounds(ctx)
	return slices.ContainsFunc(textures, func(b entity.BackgroundTexture) bool { return b.Src == ref })
}

// Filters returns the fixed filter presets; they are not stored.
func (s *Service) Filters() []valueobject.FilterPreset {
	return slices.Clone(valueobject.FilterPresets)
}

// BackgroundColors returns the solid color palette.
func (s *Service) BackgroundColors() []string {
	return slices.Clone(valueobject.BackgroundColors)
}
