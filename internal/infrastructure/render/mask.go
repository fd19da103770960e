package render

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/geometry"
)

const roundedCornerRatio = 0.1

// ShapePath returns the clip outline of a slot. The heart is stretched to
// the slot on each axis independently.
func ShapePath(shape valueobject.PhotoShape, r geometry.Rect) *geometry.Path {
	switch shape {
	case valueobject.ShapeRounded:
		return geometry.RoundedRectPath(r, roundedCornerRatio*math.Min(r.W, r.H))
	case valueobject.ShapeCircle:
		return geometry.EllipsePath(r)
	case valueobject.ShapeHeart:
		return geometry.HeartPath(r)
	default:
		return geometry.RectPath(r)
	}
}

// ShapeMask rasterizes the clip of a w x h slot into an alpha mask. It
// returns nil for rectangles, which need no mask.
func ShapeMask(shape valueobject.PhotoShape, w, h int) *image.Alpha {
	if shape == valueobject.ShapeRectangle || shape == "" || w <= 0 || h <= 0 {
		return nil
	}

	path := ShapePath(shape, geometry.NewRect(0, 0, float64(w), float64(h)))

	z := vector.NewRasterizer(w, h)
	for _, seg := range path.Segments {
		a, b, c := seg.Pts[0], seg.Pts[1], seg.Pts[2]
		switch seg.Op {
		case geometry.OpMoveTo:
			z.MoveTo(float32(a.X), float32(a.Y))
		case geometry.OpLineTo:
			z.LineTo(float32(a.X), float32(a.Y))
		case geometry.OpCubeTo:
			z.CubeTo(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(c.X), float32(c.Y))
		case geometry.OpClose:
			z.ClosePath()
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
