package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

const (
	DefaultCaption      = "G.STUDIO"
	DefaultTextColor    = "#ffffff"
	DefaultPreviewWidth = 400.0
)

// Session owns every piece of mutable booth state. The layout is fixed for
// the life of the session.
type Session struct {
	ID           uuid.UUID
	Layout       Layout
	Photos       []Photo
	Stickers     []Sticker
	Background   string
	Shape        valueobject.PhotoShape
	TextColor    string
	Caption      string
	PreviewWidth float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewSession(layout Layout) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           uuid.New(),
		Layout:       layout,
		Background:   valueobject.DefaultBackground,
		Shape:        valueobject.ShapeRectangle,
		TextColor:    DefaultTextColor,
		Caption:      DefaultCaption,
		PreviewWidth: DefaultPreviewWidth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *Session) IsFull() bool {
	return len(s.Photos) >= s.Layout.PhotoCount
}

func (s *Session) AddPhoto(p Photo) error {
	if s.IsFull() {
		return domain.ErrSessionFull
	}
	s.Photos = append(s.Photos, p)
	s.touch()
	return nil
}

func (s *Session) Photo(id uuid.UUID) (*Photo, error) {
	i := slices.IndexFunc(s.Photos, func(p Photo) bool { return p.ID == id })
	if i < 0 {
		return nil, domain.ErrPhotoNotFound
	}
	return &s.Photos[i], nil
}

// RemovePhoto deletes a photo and compacts the sequence; remaining ids are
// kept as they were.
func (s *Session) RemovePhoto(id uuid.UUID) (Photo, error) {
	i := slices.IndexFunc(s.Photos, func(p Photo) bool { return p.ID == id })
	if i < 0 {
		return Photo{}, domain.ErrPhotoNotFound
	}
	removed := s.Photos[i]
	s.Photos = slices.Delete(s.Photos, i, i+1)
	s.touch()
	return removed, nil
}

func (s *Session) AddSticker(st Sticker) {
	s.Stickers = append(s.Stickers, st)
	s.touch()
}

func (s *Session) Sticker(id uuid.UUID) (*Sticker, error) {
	i := slices.IndexFunc(s.Stickers, func(st Sticker) bool { return st.ID == id })
	if i < 0 {
		return nil, domain.ErrStickerNotFound
	}
	return &s.Stickers[i], nil
}

func (s *Session) RemoveSticker(id uuid.UUID) error {
	i := slices.IndexFunc(s.Stickers, func(st Sticker) bool { return st.ID == id })
	if i < 0 {
		return domain.ErrStickerNotFound
	}
	s.Stickers = slices.Delete(s.Stickers, i, i+1)
	s.touch()
	return nil
}

// Reset clears photos and stickers but keeps the layout and style.
func (s *Session) Reset() []Photo {
	removed := s.Photos
	s.Photos = nil
	s.Stickers = nil
	s.touch()
	return removed
}

func (s *Session) Touch() {
	s.touch()
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy, so a renderer can work on a snapshot while the
// session keeps changing.
func (s *Session) Clone() *Session {
	c := *s
	c.Photos = slices.Clone(s.Photos)
	c.Stickers = slices.Clone(s.Stickers)
	for i := range c.Photos {
		c.Photos[i].Filter = slices.Clone(s.Photos[i].Filter)
	}
	return &c
}
