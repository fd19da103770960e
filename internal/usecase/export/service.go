package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/render"
)

const contentTypePNG = "image/png"

type Service struct {
	sessionRepo  repository.SessionRepository
	exportRepo   repository.ExportRepository
	storage      storage.ImageStorage
	compositor   *render.Compositor
	slug         string
	signedURLTTL time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	sessionRepo repository.SessionRepository,
	exportRepo repository.ExportRepository,
	imageStorage storage.ImageStorage,
	compositor *render.Compositor,
	slug string,
	signedURLTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		exportRepo:   exportRepo,
		storage:      imageStorage,
		compositor:   compositor,
		slug:         slug,
		signedURLTTL: signedURLTTL,
		now:          time.Now,
		logger:       logger,
	}
}

// File is an encoded strip ready to be sent to the client.
type File struct {
	Filename string
	Data     []byte
	Width    int
	Height   int
}

type Result struct {
	Export    *entity.Export
	SignedURL string
}

// Export renders the session at full resolution, stores the PNG and
// records it.
func (s *Service) Export(ctx context.Context, sessionID uuid.UUID) (*Result, error) {
	file, err := s.render(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s", sessionID, file.Filename)
	size := int64(len(file.Data))
	if err := s.storage.Upload(ctx, key, bytes.NewReader(file.Data), contentTypePNG, size); err != nil {
		return nil, fmt.Errorf("uploading export: %w", err)
	}

	exp := entity.NewExport(sessionID, file.Filename, key, s.storage.GetURL(key), file.Width, file.Height, size)
	if err := s.exportRepo.Create(ctx, exp); err != nil {
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("creating export record: %w", err)
	}

	signedURL, err := s.storage.GetSignedURL(key, s.signedURLTTL)
	if err != nil {
		s.logger.Warn("signing export url", zap.String("key", key), zap.Error(err))
	}

	s.logger.Info("strip exported",
		zap.String("session_id", sessionID.String()),
		zap.String("key", key),
		zap.Int64("size", size),
	)

	return &Result{Export: exp, SignedURL: signedURL}, nil
}

// Download renders the strip without storing it.
func (s *Service) Download(ctx context.Context, sessionID uuid.UUID) (*File, error) {
	return s.render(ctx, sessionID)
}

// Preview renders the strip at preview width, with placeholders for slots
// still waiting for a photo.
func (s *Service) Preview(ctx context.Context, sessionID uuid.UUID) (*File, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	img, err := s.compositor.RenderPreview(ctx, render.SceneFromSession(sess))
	if err != nil {
		return nil, s.renderError(sessionID, err)
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding preview: %w", err)
	}

	b := img.Bounds()
	return &File{
		Filename: "preview.png",
		Data:     buf.Bytes(),
		Width:    b.Dx(),
		Height:   b.Dy(),
	}, nil
}

func (s *Service) List(ctx context.Context, sessionID uuid.UUID) ([]entity.Export, error) {
	exports, err := s.exportRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	return exports, nil
}

// Get returns one recorded export of the session with a fresh signed URL.
func (s *Service) Get(ctx context.Context, sessionID, exportID uuid.UUID) (*Result, error) {
	exp, err := s.exportRepo.GetByID(ctx, exportID)
	if err != nil {
		return nil, err
	}
	if exp.SessionID != sessionID {
		return nil, domain.ErrExportNotFound
	}

	signedURL, err := s.storage.GetSignedURL(exp.Key, s.signedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("signing export url: %w", err)
	}

	return &Result{Export: exp, SignedURL: signedURL}, nil
}

func (s *Service) render(ctx context.Context, sessionID uuid.UUID) (*File, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	img, err := s.compositor.Render(ctx, render.SceneFromSession(sess))
	if err != nil {
		return nil, s.renderError(sessionID, err)
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding strip: %w", err)
	}

	b := img.Bounds()
	return &File{
		Filename: render.ExportFilename(s.slug, s.now()),
		Data:     buf.Bytes(),
		Width:    b.Dx(),
		Height:   b.Dy(),
	}, nil
}

// renderError logs compositor failures. Faults inside the compositor are
// reported to the caller without their cause.
func (s *Service) renderError(sessionID uuid.UUID, err error) error {
	fields := []zap.Field{zap.String("session_id", sessionID.String()), zap.Error(err)}

	switch {
	case errors.Is(err, domain.ErrNotEnoughPhotos):
		return err
	case errors.Is(err, domain.ErrAssetLoad):
		s.logger.Warn("strip asset failed to load", fields...)
		return err
	case errors.Is(err, domain.ErrRenderFailed):
		s.logger.Error("strip render failed", fields...)
		return domain.ErrRenderFailed
	default:
		s.logger.Error("strip render failed", fields...)
		return fmt.Errorf("rendering strip: %w", err)
	}
}
