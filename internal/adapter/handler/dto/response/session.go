package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

// URLResolver maps a stored image reference to a URL the browser can load.
type URLResolver func(ref string) string

type SessionResponse struct {
	ID            uuid.UUID         `json:"id"`
	Layout        LayoutResponse    `json:"layout"`
	Photos        []PhotoResponse   `json:"photos"`
	Stickers      []StickerResponse `json:"stickers"`
	Background    string            `json:"background"`
	BackgroundURL string            `json:"background_url,omitempty"`
	Shape         string            `json:"shape"`
	TextColor     string            `json:"text_color"`
	Caption       string            `json:"caption"`
	PreviewWidth  float64           `json:"preview_width"`
	IsComplete    bool              `json:"is_complete"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type CreateSessionResponse struct {
	Session   SessionResponse `json:"session"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

type PhotoResponse struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Filter     string    `json:"filter"`
	IsMirrored bool      `json:"is_mirrored"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CreatedAt  time.Time `json:"created_at"`
}

type StickerResponse struct {
	ID       uuid.UUID `json:"id"`
	Src      string    `json:"src"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Scale    float64   `json:"scale"`
	Rotation float64   `json:"rotation"`
	Width    float64   `json:"width"`
}

func SessionFromEntity(s *entity.Session, resolve URLResolver) SessionResponse {
	resp := SessionResponse{
		ID:           s.ID,
		Layout:       LayoutFromEntity(&s.Layout),
		Photos:       make([]PhotoResponse, len(s.Photos)),
		Stickers:     make([]StickerResponse, len(s.Stickers)),
		Background:   s.Background,
		Shape:        string(s.Shape),
		TextColor:    s.TextColor,
		Caption:      s.Caption,
		PreviewWidth: s.PreviewWidth,
		IsComplete:   s.IsFull(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	for i := range s.Photos {
		resp.Photos[i] = PhotoFromEntity(&s.Photos[i], resolve)
	}
	for i := range s.Stickers {
		resp.Stickers[i] = StickerFromEntity(&s.Stickers[i], resolve)
	}
	if valueobject.IsImageRef(s.Background) {
		resp.BackgroundURL = resolve(s.Background)
	}

	return resp
}

func PhotoFromEntity(p *entity.Photo, resolve URLResolver) PhotoResponse {
	return PhotoResponse{
		ID:         p.ID,
		URL:        resolve(p.Src),
		Filter:     p.Filter.String(),
		IsMirrored: p.IsMirrored,
		Width:      p.Width,
		Height:     p.Height,
		CreatedAt:  p.CreatedAt,
	}
}

func StickerFromEntity(s *entity.Sticker, resolve URLResolver) StickerResponse {
	return StickerResponse{
		ID:       s.ID,
		Src:      resolve(s.Src),
		X:        s.X,
		Y:        s.Y,
		Scale:    s.Scale,
		Rotation: s.Rotation,
		Width:    entity.StickerBaseWidth * s.Scale,
	}
}
