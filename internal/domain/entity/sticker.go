package entity

import (
	"math"

	"github.com/google/uuid"
)

const (
	StickerBaseWidth   = 100.0
	StickerScaleStep   = 1.1
	StickerRotateStep  = 15.0
	StickerMinScale    = 0.2
	StickerMaxScale    = 5.0
	stickerDefaultPosX = 50.0
	stickerDefaultPosY = 50.0
)

// Sticker is a decoration placed over the strip. X and Y are the top-left
// corner in preview pixels; Rotation is clockwise degrees in [0, 360).
type Sticker struct {
	ID       uuid.UUID
	Src      string
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
}

func NewSticker(src string) *Sticker {
	return &Sticker{
		ID:    uuid.New(),
		Src:   src,
		X:     stickerDefaultPosX,
		Y:     stickerDefaultPosY,
		Scale: 1,
	}
}

func (s *Sticker) Move(x, y float64) {
	s.X = x
	s.Y = y
}

func (s *Sticker) ScaleUp() {
	s.setScale(s.Scale * StickerScaleStep)
}

// ScaleDown divides by the step so that it undoes ScaleUp exactly.
func (s *Sticker) ScaleDown() {
	s.setScale(s.Scale / StickerScaleStep)
}

func (s *Sticker) setScale(v float64) {
	s.Scale = math.Min(StickerMaxScale, math.Max(StickerMinScale, v))
}

func (s *Sticker) Rotate() {
	s.SetRotation(s.Rotation + StickerRotateStep)
}

func (s *Sticker) SetRotation(deg float64) {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	s.Rotation = deg
}
