// Package geometry holds the plain rectangle, cover-fit and shape path math
// shared by capture cropping and strip compositing.
package geometry

import (
	"image"
	"math"
)

type Size struct {
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func (s Size) Aspect() float64 {
	if s.H == 0 {
		return 0
	}
	return s.W / s.H
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) IsValid() bool {
	return r.W > 0 && r.H > 0
}

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale multiplies position and size by k, mapping a rectangle from one
// pixel space into another with the same origin.
func (r Rect) Scale(k float64) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}

// Image rounds the edges to the nearest pixel so adjacent rectangles stay
// adjacent after rounding.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	)
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
