package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/geometry"
)

// Caption drop shadow in preview pixels.
const (
	shadowOffset = 2.0
	shadowBlur   = 4.0
	shadowAlpha  = 0.3
)

// drawCaption centers text in box, baseline included, and lays a soft
// shadow under it. k scales the shadow from preview pixels.
func drawCaption(dst draw.Image, f *opentype.Font, text string, box geometry.Rect, size float64, textColor color.Color, k float64) error {
	if text == "" || size <= 0 {
		return nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	descent := float64(metrics.Descent) / 64
	advance := float64(font.MeasureString(face, text)) / 64

	cx, cy := box.Center()
	x := cx - advance/2
	baseline := cy + (ascent-descent)/2

	offset := shadowOffset * k
	blur := shadowBlur * k
	margin := int(math.Ceil(3 * blur))

	// The shadow is rendered on a local layer around the text so the blur
	// touches only the caption area.
	area := image.Rect(
		int(math.Floor(x+offset))-margin,
		int(math.Floor(baseline+offset-ascent))-margin,
		int(math.Ceil(x+offset+advance))+margin,
		int(math.Ceil(baseline+offset+descent))+margin,
	)
	layer := image.NewNRGBA(area)
	shadow := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(color.NRGBA{A: uint8(shadowAlpha*255 + 0.5)}),
		Face: face,
		Dot:  fixed.P(int(math.Round(x+offset)), int(math.Round(baseline+offset))),
	}
	shadow.DrawString(text)

	blurred := imaging.Blur(layer, blur/2)
	draw.Draw(dst, area, blurred, image.Point{}, draw.Over)

	fg := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(baseline))),
	}
	fg.DrawString(text)

	return nil
}
