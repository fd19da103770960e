package entity

import (
	"time"

	"github.com/google/uuid"
)

type Export struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Filename  string
	Key       string
	URL       string
	Width     int
	Height    int
	Size      int64
	CreatedAt time.Time
}

func NewExport(sessionID uuid.UUID, filename, key, url string, width, height int, size int64) *Export {
	return &Export{
		ID:        uuid.New(),
		SessionID: sessionID,
		Filename:  filename,
		Key:       key,
		URL:       url,
		Width:     width,
		Height:    height,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
}
