package camera

import (
	"context"
	"image"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/camera_mocks.go -package=mocks

const (
	IdealWidth  = 1280
	IdealHeight = 960
	FacingUser  = "user"
)

// Constraints mirror the media constraints a browser accepts. Zero values
// leave the choice to the device.
type Constraints struct {
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
	AspectRatio float64 `json:"aspect_ratio,omitempty"`
	FacingMode  string  `json:"facing_mode,omitempty"`
}

func IdealConstraints(aspect float64) Constraints {
	return Constraints{
		Width:       IdealWidth,
		Height:      IdealHeight,
		AspectRatio: aspect,
		FacingMode:  FacingUser,
	}
}

// MinimalConstraints is the fallback request: any video device at all.
func MinimalConstraints() Constraints {
	return Constraints{}
}

type Device interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// Stream is a live video feed. Stop releases every underlying track and
// is safe to call more than once.
type Stream interface {
	Frame(ctx context.Context) (image.Image, error)
	Stop() error
}
