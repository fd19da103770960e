package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/geometry"
)

const DefaultBaseWidth = 1200

var placeholderColor = color.NRGBA{R: 255, G: 255, B: 255, A: 102}

// Scene is everything drawn on a strip, captured from a session at one
// point in time.
type Scene struct {
	Layout       entity.Layout
	Photos       []entity.Photo
	Stickers     []entity.Sticker
	Background   string
	Shape        valueobject.PhotoShape
	TextColor    string
	Caption      string
	PreviewWidth float64
}

func SceneFromSession(s *entity.Session) Scene {
	c := s.Clone()
	return Scene{
		Layout:       c.Layout,
		Photos:       c.Photos,
		Stickers:     c.Stickers,
		Background:   c.Background,
		Shape:        c.Shape,
		TextColor:    c.TextColor,
		Caption:      c.Caption,
		PreviewWidth: c.PreviewWidth,
	}
}

type Compositor struct {
	loader    Loader
	font      *opentype.Font
	baseWidth float64
}

func NewCompositor(loader Loader, baseWidth int) (*Compositor, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing caption font: %w", err)
	}
	if baseWidth <= 0 {
		baseWidth = DefaultBaseWidth
	}

	return &Compositor{
		loader:    loader,
		font:      f,
		baseWidth: float64(baseWidth),
	}, nil
}

// PreviewGeometry is the layout in preview pixels, as the browser draws it.
func (c *Compositor) PreviewGeometry(scene Scene) (Geometry, error) {
	return ComputeGeometry(scene.Layout, previewWidth(scene))
}

// ExportGeometry maps the preview layout onto the export canvas and
// returns the preview-to-canvas factor alongside it.
func (c *Compositor) ExportGeometry(scene Scene) (Geometry, float64, error) {
	preview, err := c.PreviewGeometry(scene)
	if err != nil {
		return Geometry{}, 0, err
	}
	k := c.baseWidth / preview.Width
	return preview.Scale(k), k, nil
}

// Render produces the full resolution strip. It refuses to start unless
// every slot has a photo, and any asset failure aborts the whole render.
func (c *Compositor) Render(ctx context.Context, scene Scene) (img *image.RGBA, err error) {
	if len(scene.Photos) < scene.Layout.PhotoCount {
		return nil, fmt.Errorf("%w: have %d, need %d",
			domain.ErrNotEnoughPhotos, len(scene.Photos), scene.Layout.PhotoCount)
	}

	g, k, err := c.ExportGeometry(scene)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("%w: %v", domain.ErrRenderFailed, r)
		}
	}()

	return c.draw(ctx, scene, g, k, false)
}

// RenderPreview draws the strip at preview size. Empty slots are shown as
// translucent placeholders instead of failing.
func (c *Compositor) RenderPreview(ctx context.Context, scene Scene) (img *image.RGBA, err error) {
	g, err := c.PreviewGeometry(scene)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("%w: %v", domain.ErrRenderFailed, r)
		}
	}()

	return c.draw(ctx, scene, g, 1, true)
}

func (c *Compositor) draw(ctx context.Context, scene Scene, g Geometry, k float64, placeholders bool) (*image.RGBA, error) {
	w, h := g.CanvasSize()
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))

	if err := c.drawBackground(ctx, canvas, scene.Background); err != nil {
		return nil, err
	}

	for i, slot := range g.Slots {
		if i >= len(scene.Photos) {
			if placeholders {
				drawPlaceholder(canvas, slot, scene.Shape)
			}
			continue
		}
		if err := c.drawPhoto(ctx, canvas, scene.Photos[i], slot, scene.Shape, k); err != nil {
			return nil, err
		}
	}

	for _, s := range scene.Stickers {
		if err := c.drawSticker(ctx, canvas, s, k); err != nil {
			return nil, err
		}
	}

	textColor, err := valueobject.ParseColor(scene.TextColor)
	if err != nil {
		return nil, err
	}
	if err := drawCaption(canvas, c.font, scene.Caption, g.Caption, g.FontSize, textColor, k); err != nil {
		return nil, fmt.Errorf("drawing caption: %w", err)
	}

	return canvas, nil
}

func (c *Compositor) drawBackground(ctx context.Context, canvas *image.RGBA, ref string) error {
	bg, err := valueobject.ParseBackground(ref)
	if err != nil {
		return err
	}

	bounds := canvas.Bounds()
	if !bg.IsImage() {
		draw.Draw(canvas, bounds, image.NewUniform(bg.Color), image.Point{}, draw.Src)
		return nil
	}

	img, err := c.loader.Load(ctx, bg.Ref)
	if err != nil {
		return fmt.Errorf("loading background: %w", err)
	}

	src := img.Bounds()
	fit := geometry.CoverFit(float64(src.Dx()), float64(src.Dy()),
		geometry.NewRect(0, 0, float64(bounds.Dx()), float64(bounds.Dy())))
	dst := fit.Image()
	resized := imaging.Resize(img, dst.Dx(), dst.Dy(), imaging.Lanczos)

	draw.Draw(canvas, dst, resized, image.Point{}, draw.Src)
	return nil
}

// drawPhoto cover-fits a photo into its slot, runs its filter, mirrors it
// about the slot center when flagged and clips it to the slot shape.
func (c *Compositor) drawPhoto(ctx context.Context, canvas *image.RGBA, p entity.Photo, slot geometry.Rect, shape valueobject.PhotoShape, k float64) error {
	img, err := c.loader.Load(ctx, p.Src)
	if err != nil {
		return fmt.Errorf("loading photo %s: %w", p.ID, err)
	}

	dst := slot.Image()
	w, h := dst.Dx(), dst.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	src := img.Bounds()
	crop := geometry.CoverCrop(float64(src.Dx()), float64(src.Dy()), float64(w), float64(h))
	cropped := imaging.Crop(img, crop.Image().Add(src.Min))
	fitted := imaging.Resize(cropped, w, h, imaging.Lanczos)

	out := ApplyFilter(fitted, p.Filter, k)
	if p.IsMirrored {
		out = imaging.FlipH(out)
	}

	mask := ShapeMask(shape, w, h)
	if mask == nil {
		draw.Draw(canvas, dst, out, image.Point{}, draw.Over)
		return nil
	}
	draw.DrawMask(canvas, dst, out, image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

func drawPlaceholder(canvas *image.RGBA, slot geometry.Rect, shape valueobject.PhotoShape) {
	dst := slot.Image()
	src := image.NewUniform(placeholderColor)

	mask := ShapeMask(shape, dst.Dx(), dst.Dy())
	if mask == nil {
		draw.Draw(canvas, dst, src, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(canvas, dst, src, image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *Compositor) drawSticker(ctx context.Context, canvas *image.RGBA, s entity.Sticker, k float64) error {
	img, err := c.loader.Load(ctx, s.Src)
	if err != nil {
		return fmt.Errorf("loading sticker %s: %w", s.ID, err)
	}

	src := img.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return fmt.Errorf("%w: sticker %s is empty", domain.ErrAssetLoad, s.ID)
	}
	aspect := float64(src.Dx()) / float64(src.Dy())

	pl := PlaceSticker(s, k, aspect)
	w := int(math.Round(pl.Width))
	h := int(math.Round(pl.Width / aspect))
	if w < 1 || h < 1 {
		return nil
	}

	var out image.Image = imaging.Resize(img, w, h, imaging.Lanczos)
	if pl.Rotation != 0 {
		// imaging rotates counter-clockwise.
		out = imaging.Rotate(out, -pl.Rotation, color.Transparent)
	}

	ob := out.Bounds()
	x0 := int(math.Round(pl.CenterX - float64(ob.Dx())/2))
	y0 := int(math.Round(pl.CenterY - float64(ob.Dy())/2))
	draw.Draw(canvas, image.Rect(x0, y0, x0+ob.Dx(), y0+ob.Dy()), out, ob.Min, draw.Over)

	return nil
}

// EncodePNG writes the strip as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// ExportFilename is the download name of a strip rendered at t.
func ExportFilename(slug string, t time.Time) string {
	return fmt.Sprintf("photostrip-%s-%d.png", slug, t.UnixMilli())
}

func previewWidth(scene Scene) float64 {
	if scene.PreviewWidth > 0 {
		return scene.PreviewWidth
	}
	return entity.DefaultPreviewWidth
}
