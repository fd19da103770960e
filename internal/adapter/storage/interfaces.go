package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type ImageStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	GetURL(key string) string
	GetSignedURL(key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// ProcessedImage is an upload after validation and normalization.
type ProcessedImage struct {
	Reader      io.Reader
	Size        int64
	Width       int
	Height      int
	ContentType string
}

// Extension returns the object key extension for a processed content type.
func Extension(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}

type ImageProcessor interface {
	// Process decodes an upload, fixes its orientation, bounds its size and
	// re-encodes it. A positive aspect cover-crops the result to that
	// width/height ratio.
	Process(reader io.Reader, contentType string, aspect float64) (*ProcessedImage, error)
}
