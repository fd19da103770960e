package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	adapterstorage "github.com/marcos-nsantos/photostrip-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/geometry"
)

const (
	MaxImageWidth  = 2048
	MaxImageHeight = 2048
	JPEGQuality    = 85
)

// AllowedContentTypes are the upload types accepted for photos and
// backgrounds.
var AllowedContentTypes = mapset.NewSet("image/jpeg", "image/png", "image/webp")

type ImageProcessorImpl struct {
	maxWidth  int
	maxHeight int
	quality   int
}

func NewImageProcessor() *ImageProcessorImpl {
	return &ImageProcessorImpl{
		maxWidth:  MaxImageWidth,
		maxHeight: MaxImageHeight,
		quality:   JPEGQuality,
	}
}

func (p *ImageProcessorImpl) Process(reader io.Reader, contentType string, aspect float64) (*adapterstorage.ProcessedImage, error) {
	if !AllowedContentTypes.Contains(contentType) {
		return nil, fmt.Errorf("%w: content type %q", domain.ErrInvalidImage, contentType)
	}

	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidImage, err)
	}

	if aspect > 0 {
		b := img.Bounds()
		crop := geometry.CoverCrop(float64(b.Dx()), float64(b.Dy()), aspect, 1)
		img = imaging.Crop(img, crop.Image().Add(b.Min))
	}

	b := img.Bounds()
	if b.Dx() > p.maxWidth || b.Dy() > p.maxHeight {
		img = imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	outType := "image/jpeg"
	if hasAlpha(img) {
		outType = "image/png"
		err = imaging.Encode(&buf, img, imaging.PNG)
	} else {
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality))
	}
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	b = img.Bounds()
	return &adapterstorage.ProcessedImage{
		Reader:      bytes.NewReader(buf.Bytes()),
		Size:        int64(buf.Len()),
		Width:       b.Dx(),
		Height:      b.Dy(),
		ContentType: outType,
	}, nil
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}
