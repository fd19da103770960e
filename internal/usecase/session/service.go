package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/render"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/capture"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/catalogue"
)

const (
	objectScheme    = "s3://"
	maxCaptionLen   = 40
	minPreviewWidth = 100.0
	maxPreviewWidth = 2000.0
)

type Service struct {
	sessionRepo    repository.SessionRepository
	catalogue      *catalogue.Service
	storage        storage.ImageStorage
	imageProcessor storage.ImageProcessor
	jwtSvc         *auth.JWTService
	previewWidth   float64
	locks          *keyedMutex
	logger         *zap.Logger
}

func NewService(
	sessionRepo repository.SessionRepository,
	catalogueSvc *catalogue.Service,
	imageStorage storage.ImageStorage,
	imageProcessor storage.ImageProcessor,
	jwtSvc *auth.JWTService,
	previewWidth int,
	logger *zap.Logger,
) *Service {
	pw := float64(previewWidth)
	if pw <= 0 {
		pw = entity.DefaultPreviewWidth
	}

	return &Service{
		sessionRepo:    sessionRepo,
		catalogue:      catalogueSvc,
		storage:        imageStorage,
		imageProcessor: imageProcessor,
		jwtSvc:         jwtSvc,
		previewWidth:   pw,
		locks:          newKeyedMutex(),
		logger:         logger,
	}
}

type CreateResult struct {
	Session   *entity.Session
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Create(ctx context.Context, layoutID string) (*CreateResult, error) {
	layout, err := s.catalogue.Layout(ctx, layoutID)
	if err != nil {
		return nil, err
	}

	sess := entity.NewSession(*layout)
	sess.PreviewWidth = s.previewWidth

	token, expiresAt, err := s.jwtSvc.GenerateSessionToken(sess.ID)
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &CreateResult{
		Session:   sess,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// Geometry returns the session's layout in preview pixels.
func (s *Service) Geometry(ctx context.Context, id uuid.UUID) (render.Geometry, error) {
	sess, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return render.Geometry{}, err
	}
	return render.ComputeGeometry(sess.Layout, sess.PreviewWidth)
}

// mutate loads a session, applies fn and stores the result, holding the
// session lock throughout. Nothing is stored when fn fails.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(*entity.Session) error) (*entity.Session, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(sess); err != nil {
		return nil, err
	}

	sess.Touch()
	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("updating session: %w", err)
	}

	return sess, nil
}

type UploadPhotoInput struct {
	SessionID   uuid.UUID
	File        io.Reader
	ContentType string
	Filter      string
	Mirrored    bool
}

// UploadPhoto stores a photo chosen from disk. The image is cover-cropped
// to the slot aspect so that it fills its slot like a captured frame.
func (s *Service) UploadPhoto(ctx context.Context, input UploadPhotoInput) (*entity.Photo, error) {
	filter, err := resolveFilter(input.Filter)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessionRepo.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.IsFull() {
		return nil, domain.ErrSessionFull
	}

	g, err := render.ComputeGeometry(sess.Layout, sess.PreviewWidth)
	if err != nil {
		return nil, err
	}

	processed, err := s.imageProcessor.Process(input.File, input.ContentType, g.SlotAspect())
	if err != nil {
		return nil, fmt.Errorf("processing image: %w", err)
	}

	photoID := uuid.New()
	key := photoKey(input.SessionID, photoID, processed.ContentType)
	if err := s.storage.Upload(ctx, key, processed.Reader, processed.ContentType, processed.Size); err != nil {
		return nil, fmt.Errorf("uploading to storage: %w", err)
	}

	photo := entity.NewPhoto(objectScheme+key, key, filter, processed.Width, processed.Height)
	photo.ID = photoID
	photo.IsMirrored = input.Mirrored

	if err := s.attachPhoto(ctx, input.SessionID, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

// AddCapturedPhoto stores a frame frozen by the capture pipeline. The
// frame is already cropped and encoded.
func (s *Service) AddCapturedPhoto(ctx context.Context, sessionID uuid.UUID, c *capture.Capture) (*entity.Photo, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.IsFull() {
		return nil, domain.ErrSessionFull
	}

	photoID := uuid.New()
	key := photoKey(sessionID, photoID, "image/jpeg")
	if err := s.storage.Upload(ctx, key, bytes.NewReader(c.Data), "image/jpeg", int64(len(c.Data))); err != nil {
		return nil, fmt.Errorf("uploading to storage: %w", err)
	}

	photo := entity.NewPhoto(objectScheme+key, key, c.Filter, c.Width, c.Height)
	photo.ID = photoID
	photo.IsMirrored = c.Mirrored

	if err := s.attachPhoto(ctx, sessionID, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

// attachPhoto appends an uploaded photo to its session, removing the
// object again when the session refuses it.
func (s *Service) attachPhoto(ctx context.Context, sessionID uuid.UUID, photo *entity.Photo) error {
	_, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		return sess.AddPhoto(*photo)
	})
	if err != nil {
		s.deleteObject(ctx, photo.Key)
		return err
	}
	return nil
}

func (s *Service) DeletePhoto(ctx context.Context, sessionID, photoID uuid.UUID) error {
	var removed entity.Photo
	_, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		var err error
		removed, err = sess.RemovePhoto(photoID)
		return err
	})
	if err != nil {
		return err
	}

	s.deleteObject(ctx, removed.Key)
	return nil
}

type UpdatePhotoInput struct {
	Mirrored     *bool
	ToggleMirror bool
	Filter       *string
}

func (s *Service) UpdatePhoto(ctx context.Context, sessionID, photoID uuid.UUID, input UpdatePhotoInput) (*entity.Photo, error) {
	var filter valueobject.Filter
	if input.Filter != nil {
		f, err := resolveFilter(*input.Filter)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	var updated entity.Photo
	_, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		p, err := sess.Photo(photoID)
		if err != nil {
			return err
		}

		switch {
		case input.Mirrored != nil:
			p.IsMirrored = *input.Mirrored
		case input.ToggleMirror:
			p.IsMirrored = !p.IsMirrored
		}
		if input.Filter != nil {
			p.Filter = filter
		}

		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *Service) AddSticker(ctx context.Context, sessionID uuid.UUID, src string) (*entity.Sticker, error) {
	src = strings.TrimSpace(src)
	if !valueobject.IsImageRef(src) {
		return nil, fmt.Errorf("%w: sticker source %q", domain.ErrInvalidImage, src)
	}
	if err := s.checkRef(ctx, sessionID, src); err != nil {
		return nil, err
	}

	st := entity.NewSticker(src)
	if _, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		sess.AddSticker(*st)
		return nil
	}); err != nil {
		return nil, err
	}

	return st, nil
}

type ScaleDirection string

const (
	ScaleUp   ScaleDirection = "up"
	ScaleDown ScaleDirection = "down"
)

// UpdateStickerInput describes one sticker gesture. Fields left nil are
// untouched; Rotate adds one rotation step.
type UpdateStickerInput struct {
	X        *float64
	Y        *float64
	Scale    ScaleDirection
	Rotate   bool
	Rotation *float64
}

func (s *Service) UpdateSticker(ctx context.Context, sessionID, stickerID uuid.UUID, input UpdateStickerInput) (*entity.Sticker, error) {
	var updated entity.Sticker
	_, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		st, err := sess.Sticker(stickerID)
		if err != nil {
			return err
		}

		if input.X != nil || input.Y != nil {
			x, y := st.X, st.Y
			if input.X != nil {
				x = *input.X
			}
			if input.Y != nil {
				y = *input.Y
			}
			st.Move(x, y)
		}

		switch input.Scale {
		case ScaleUp:
			st.ScaleUp()
		case ScaleDown:
			st.ScaleDown()
		}

		if input.Rotation != nil {
			st.SetRotation(*input.Rotation)
		}
		if input.Rotate {
			st.Rotate()
		}

		updated = *st
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *Service) DeleteSticker(ctx context.Context, sessionID, stickerID uuid.UUID) error {
	_, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		return sess.RemoveSticker(stickerID)
	})
	return err
}

type StyleInput struct {
	Background   *string
	Shape        *string
	TextColor    *string
	Caption      *string
	PreviewWidth *float64
}

// UpdateStyle validates every field before touching the session, so a
// rejected request changes nothing.
func (s *Service) UpdateStyle(ctx context.Context, sessionID uuid.UUID, input StyleInput) (*entity.Session, error) {
	var (
		background string
		shape      valueobject.PhotoShape
		textColor  string
	)

	if input.Background != nil {
		bg, err := valueobject.ParseBackground(*input.Background)
		if err != nil {
			return nil, err
		}
		if bg.IsImage() {
			if err := s.checkRef(ctx, sessionID, bg.Ref); err != nil {
				return nil, err
			}
		}
		background = bg.String()
	}
	if input.Shape != nil {
		sh, err := valueobject.ParsePhotoShape(*input.Shape)
		if err != nil {
			return nil, err
		}
		shape = sh
	}
	if input.TextColor != nil {
		c, err := valueobject.ParseColor(*input.TextColor)
		if err != nil {
			return nil, err
		}
		textColor = valueobject.HexColor(c)
	}
	if input.Caption != nil && len([]rune(*input.Caption)) > maxCaptionLen {
		return nil, fmt.Errorf("%w: caption longer than %d characters", domain.ErrInvalidCaption, maxCaptionLen)
	}
	if input.PreviewWidth != nil && (*input.PreviewWidth < minPreviewWidth || *input.PreviewWidth > maxPreviewWidth) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPreviewWidth, *input.PreviewWidth)
	}

	var oldBackground string
	sess, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		oldBackground = sess.Background
		if input.Background != nil {
			sess.Background = background
		}
		if input.Shape != nil {
			sess.Shape = shape
		}
		if input.TextColor != nil {
			sess.TextColor = textColor
		}
		if input.Caption != nil {
			sess.Caption = strings.TrimSpace(*input.Caption)
		}
		if input.PreviewWidth != nil {
			sess.PreviewWidth = *input.PreviewWidth
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.Background != nil && oldBackground != sess.Background {
		s.deleteOwnedBackground(ctx, sessionID, oldBackground)
	}

	return sess, nil
}

type UploadBackgroundInput struct {
	SessionID   uuid.UUID
	File        io.Reader
	ContentType string
}

// UploadBackground stores a custom background image, cropped to the strip
// aspect, and selects it.
func (s *Service) UploadBackground(ctx context.Context, input UploadBackgroundInput) (*entity.Session, error) {
	sess, err := s.sessionRepo.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	processed, err := s.imageProcessor.Process(input.File, input.ContentType, sess.Layout.AspectRatio)
	if err != nil {
		return nil, fmt.Errorf("processing image: %w", err)
	}

	key := fmt.Sprintf("%sbackgrounds/%s%s", objectPrefix(input.SessionID), uuid.New(), storage.Extension(processed.ContentType))
	if err := s.storage.Upload(ctx, key, processed.Reader, processed.ContentType, processed.Size); err != nil {
		return nil, fmt.Errorf("uploading to storage: %w", err)
	}

	ref := objectScheme + key
	var oldBackground string
	sess, err = s.mutate(ctx, input.SessionID, func(sess *entity.Session) error {
		oldBackground = sess.Background
		sess.Background = ref
		return nil
	})
	if err != nil {
		s.deleteObject(ctx, key)
		return nil, err
	}

	s.deleteOwnedBackground(ctx, input.SessionID, oldBackground)
	return sess, nil
}

// Reset clears photos and stickers and deletes the photo objects. Layout
// and style are kept.
func (s *Service) Reset(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	var removed []entity.Photo
	sess, err := s.mutate(ctx, sessionID, func(sess *entity.Session) error {
		removed = sess.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, p := range removed {
		s.deleteObject(ctx, p.Key)
	}

	return sess, nil
}

// ObjectURL turns a stored image reference into a URL a browser can load.
// Other references are returned unchanged.
func (s *Service) ObjectURL(ref string) string {
	if key, ok := strings.CutPrefix(ref, objectScheme); ok {
		return s.storage.GetURL(key)
	}
	return ref
}

// deleteOwnedBackground removes a background object previously uploaded
// for this session. Shared textures and colors are left alone.
func (s *Service) deleteOwnedBackground(ctx context.Context, sessionID uuid.UUID, ref string) {
	prefix := objectScheme + objectPrefix(sessionID) + "backgrounds/"
	if strings.HasPrefix(ref, prefix) {
		s.deleteObject(ctx, strings.TrimPrefix(ref, objectScheme))
	}
}

// deleteObject is best effort; an orphaned object is only wasted space.
func (s *Service) deleteObject(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("deleting object", zap.String("key", key), zap.Error(err))
	}
}

// resolveFilter accepts a preset name or a CSS filter string.
func resolveFilter(s string) (valueobject.Filter, error) {
	if preset, ok := valueobject.FilterPresetByName(s); ok {
		return preset.Filter, nil
	}
	return valueobject.ParseFilter(s)
}

func photoKey(sessionID, photoID uuid.UUID, contentType string) string {
	return fmt.Sprintf("%sphotos/%s%s", objectPrefix(sessionID), photoID, storage.Extension(contentType))
}
