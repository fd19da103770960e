package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

type Photo struct {
	ID         uuid.UUID
	Src        string
	Key        string
	Filter     valueobject.Filter
	IsMirrored bool
	Width      int
	Height     int
	CreatedAt  time.Time
}

// NewPhoto records an already cropped bitmap. Captured photos come from a
// front-facing camera and start mirrored.
func NewPhoto(src, key string, filter valueobject.Filter, width, height int) *Photo {
	return &Photo{
		ID:         uuid.New(),
		Src:        src,
		Key:        key,
		Filter:     filter,
		IsMirrored: true,
		Width:      width,
		Height:     height,
		CreatedAt:  time.Now().UTC(),
	}
}
