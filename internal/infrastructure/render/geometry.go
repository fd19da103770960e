// Package render composites a session into a photo strip raster. The same
// layout model drives the live preview and the high resolution export.
package render

import (
	"fmt"
	"math"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/geometry"
)

// Proportions of the strip frame, relative to the strip width.
const (
	paddingRatio  = 0.05
	gapRatio      = 0.03
	footerRatio   = 0.18
	fontSizeRatio = 0.08
)

// Geometry is the complete layout of a strip at one width: canvas size,
// slot rectangles in slot order, and the caption box.
type Geometry struct {
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Slots    []geometry.Rect `json:"slots"`
	Caption  geometry.Rect   `json:"caption"`
	FontSize float64         `json:"font_size"`
}

// ComputeGeometry lays out a strip of the given width. The height follows
// the layout aspect ratio; slots fill a grid inside the padded frame, above
// the caption footer.
func ComputeGeometry(layout entity.Layout, width float64) (Geometry, error) {
	cols, rows := layout.Grid()
	if cols == 0 || layout.AspectRatio <= 0 || width <= 0 {
		return Geometry{}, fmt.Errorf("%w: %q", domain.ErrLayoutNotFound, layout.ID)
	}

	height := width / layout.AspectRatio
	padding := width * paddingRatio
	gap := width * gapRatio
	footer := width * footerRatio

	contentW := width - 2*padding
	contentH := height - padding - footer
	cellW := (contentW - float64(cols-1)*gap) / float64(cols)
	cellH := (contentH - float64(rows-1)*gap) / float64(rows)

	slots := make([]geometry.Rect, 0, cols*rows)
	for i := range cols * rows {
		col := i % cols
		row := i / cols
		slots = append(slots, geometry.Rect{
			X: padding + float64(col)*(cellW+gap),
			Y: padding + float64(row)*(cellH+gap),
			W: cellW,
			H: cellH,
		})
	}

	return Geometry{
		Width:    width,
		Height:   height,
		Slots:    slots,
		Caption:  geometry.Rect{X: 0, Y: height - footer, W: width, H: footer},
		FontSize: width * fontSizeRatio,
	}, nil
}

// Scale maps a geometry from one pixel space into another.
func (g Geometry) Scale(k float64) Geometry {
	slots := make([]geometry.Rect, len(g.Slots))
	for i, s := range g.Slots {
		slots[i] = s.Scale(k)
	}
	return Geometry{
		Width:    g.Width * k,
		Height:   g.Height * k,
		Slots:    slots,
		Caption:  g.Caption.Scale(k),
		FontSize: g.FontSize * k,
	}
}

// CanvasSize is the integer pixel size of the raster for this geometry.
func (g Geometry) CanvasSize() (int, int) {
	return int(math.Round(g.Width)), int(math.Round(g.Height))
}

// SlotAspect is the width/height ratio every captured photo is cropped to.
func (g Geometry) SlotAspect() float64 {
	if len(g.Slots) == 0 {
		return 0
	}
	return g.Slots[0].Size().Aspect()
}

// StickerPlacement is where a sticker lands on a canvas: its center, its
// drawn width and its clockwise rotation.
type StickerPlacement struct {
	CenterX  float64
	CenterY  float64
	Width    float64
	Rotation float64
}

// PlaceSticker maps a sticker from preview pixels into canvas space. aspect
// is the width/height of the decoded sticker image.
func PlaceSticker(s entity.Sticker, k, aspect float64) StickerPlacement {
	w := entity.StickerBaseWidth * s.Scale
	h := w
	if aspect > 0 {
		h = w / aspect
	}
	return StickerPlacement{
		CenterX:  (s.X + w/2) * k,
		CenterY:  (s.Y + h/2) * k,
		Width:    w * k,
		Rotation: s.Rotation,
	}
}
