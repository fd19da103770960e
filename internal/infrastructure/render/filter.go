package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

type colorMatrix [3][3]float64

// ApplyFilter runs the adjustment chain over img in order. Blur radii are
// in preview pixels and are multiplied by k.
func ApplyFilter(img image.Image, f valueobject.Filter, k float64) *image.NRGBA {
	out := imaging.Clone(img)
	for _, adj := range f {
		out = applyAdjustment(out, adj, k)
	}
	return out
}

func applyAdjustment(img *image.NRGBA, adj valueobject.Adjustment, k float64) *image.NRGBA {
	a := adj.Amount

	switch adj.Kind {
	case valueobject.AdjustBrightness:
		return mapChannels(img, func(c float64) float64 { return c * a })
	case valueobject.AdjustContrast:
		return mapChannels(img, func(c float64) float64 { return (c-0.5)*a + 0.5 })
	case valueobject.AdjustInvert:
		a = math.Min(a, 1)
		return mapChannels(img, func(c float64) float64 { return c*(1-a) + (1-c)*a })
	case valueobject.AdjustSaturate:
		return applyMatrix(img, saturateMatrix(a))
	case valueobject.AdjustHueRotate:
		return applyMatrix(img, hueRotateMatrix(a))
	case valueobject.AdjustSepia:
		return applyMatrix(img, sepiaMatrix(math.Min(a, 1)))
	case valueobject.AdjustGrayscale:
		return applyMatrix(img, grayscaleMatrix(math.Min(a, 1)))
	case valueobject.AdjustOpacity:
		a = math.Min(a, 1)
		return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
			c.A = clamp8(float64(c.A) / 255 * a)
			return c
		})
	case valueobject.AdjustBlur:
		if a <= 0 {
			return img
		}
		return imaging.Blur(img, math.Min(a, valueobject.MaxBlurRadius)*k)
	default:
		return img
	}
}

func mapChannels(img *image.NRGBA, fn func(float64) float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(fn(float64(c.R) / 255)),
			G: clamp8(fn(float64(c.G) / 255)),
			B: clamp8(fn(float64(c.B) / 255)),
			A: c.A,
		}
	})
}

func applyMatrix(img *image.NRGBA, m colorMatrix) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		r := float64(c.R) / 255
		g := float64(c.G) / 255
		b := float64(c.B) / 255
		return color.NRGBA{
			R: clamp8(m[0][0]*r + m[0][1]*g + m[0][2]*b),
			G: clamp8(m[1][0]*r + m[1][1]*g + m[1][2]*b),
			B: clamp8(m[2][0]*r + m[2][1]*g + m[2][2]*b),
			A: c.A,
		}
	})
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// The matrices below are the ones defined by the CSS Filter Effects
// shorthand functions.

func saturateMatrix(s float64) colorMatrix {
	return colorMatrix{
		{0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s},
		{0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s},
		{0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s},
	}
}

func hueRotateMatrix(deg float64) colorMatrix {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return colorMatrix{
		{0.213 + cos*0.787 - sin*0.213, 0.715 - cos*0.715 - sin*0.715, 0.072 - cos*0.072 + sin*0.928},
		{0.213 - cos*0.213 + sin*0.143, 0.715 + cos*0.285 + sin*0.140, 0.072 - cos*0.072 - sin*0.283},
		{0.213 - cos*0.213 - sin*0.787, 0.715 - cos*0.715 + sin*0.715, 0.072 + cos*0.928 + sin*0.072},
	}
}

func sepiaMatrix(a float64) colorMatrix {
	t := 1 - a
	return colorMatrix{
		{0.393 + 0.607*t, 0.769 - 0.769*t, 0.189 - 0.189*t},
		{0.349 - 0.349*t, 0.686 + 0.314*t, 0.168 - 0.168*t},
		{0.272 - 0.272*t, 0.534 - 0.534*t, 0.131 + 0.869*t},
	}
}

func grayscaleMatrix(a float64) colorMatrix {
	t := 1 - a
	return colorMatrix{
		{0.2126 + 0.7874*t, 0.7152 - 0.7152*t, 0.0722 - 0.0722*t},
		{0.2126 - 0.2126*t, 0.7152 + 0.2848*t, 0.0722 - 0.0722*t},
		{0.2126 - 0.2126*t, 0.7152 - 0.7152*t, 0.0722 + 0.9278*t},
	}
}
