package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

const keyPrefix = "session:"

// SessionRepo keeps sessions as JSON documents that expire after ttl of
// inactivity.
type SessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepo(client *redis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{client: client, ttl: ttl}
}

type layoutRecord struct {
	ID           string            `json:"id"`
	Type         entity.LayoutType `json:"type"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	PhotoCount   int               `json:"photo_count"`
	AspectRatio  float64           `json:"aspect_ratio"`
	PreviewImage string            `json:"preview_image"`
}

type photoRecord struct {
	ID         uuid.UUID          `json:"id"`
	Src        string             `json:"src"`
	Key        string             `json:"key"`
	Filter     valueobject.Filter `json:"filter"`
	IsMirrored bool               `json:"is_mirrored"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	CreatedAt  time.Time          `json:"created_at"`
}

type stickerRecord struct {
	ID       uuid.UUID `json:"id"`
	Src      string    `json:"src"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Scale    float64   `json:"scale"`
	Rotation float64   `json:"rotation"`
}

type sessionRecord struct {
	ID           uuid.UUID              `json:"id"`
	Layout       layoutRecord           `json:"layout"`
	Photos       []photoRecord          `json:"photos"`
	Stickers     []stickerRecord        `json:"stickers"`
	Background   string                 `json:"background"`
	Shape        valueobject.PhotoShape `json:"shape"`
	TextColor    string                 `json:"text_color"`
	Caption      string                 `json:"caption"`
	PreviewWidth float64                `json:"preview_width"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func toRecord(s *entity.Session) sessionRecord {
	rec := sessionRecord{
		ID:           s.ID,
		Layout:       layoutRecord(s.Layout),
		Photos:       make([]photoRecord, len(s.Photos)),
		Stickers:     make([]stickerRecord, len(s.Stickers)),
		Background:   s.Background,
		Shape:        s.Shape,
		TextColor:    s.TextColor,
		Caption:      s.Caption,
		PreviewWidth: s.PreviewWidth,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	for i, p := range s.Photos {
		rec.Photos[i] = photoRecord(p)
	}
	for i, st := range s.Stickers {
		rec.Stickers[i] = stickerRecord(st)
	}
	return rec
}

func (rec sessionRecord) toEntity() *entity.Session {
	s := &entity.Session{
		ID:           rec.ID,
		Layout:       entity.Layout(rec.Layout),
		Background:   rec.Background,
		Shape:        rec.Shape,
		TextColor:    rec.TextColor,
		Caption:      rec.Caption,
		PreviewWidth: rec.PreviewWidth,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	for _, p := range rec.Photos {
		s.Photos = append(s.Photos, entity.Photo(p))
	}
	for _, st := range rec.Stickers {
		s.Stickers = append(s.Stickers, entity.Sticker(st))
	}
	return s
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *SessionRepo) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(toRecord(session))
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := r.client.Set(ctx, key(session.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return rec.toEntity(), nil
}

// Update overwrites an existing session and refreshes its expiry.
func (r *SessionRepo) Update(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(toRecord(session))
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	ok, err := r.client.SetXX(ctx, key(session.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
