package geometry

import "math"

// kappa approximates a quarter circle with one cubic bezier.
const kappa = 0.5522847498307936

type Point struct {
	X, Y float64
}

type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
	OpCubeTo
	OpClose
)

// Segment is one path command. LineTo and MoveTo use Pts[0]; CubeTo uses
// the two control points and the end point in order.
type Segment struct {
	Op  Op
	Pts [3]Point
}

type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpMoveTo, Pts: [3]Point{{x, y}}})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpLineTo, Pts: [3]Point{{x, y}}})
	return p
}

func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpCubeTo, Pts: [3]Point{{x1, y1}, {x2, y2}, {x, y}}})
	return p
}

func (p *Path) Close() *Path {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
	return p
}

func RectPath(r Rect) *Path {
	p := &Path{}
	return p.MoveTo(r.X, r.Y).
		LineTo(r.X+r.W, r.Y).
		LineTo(r.X+r.W, r.Y+r.H).
		LineTo(r.X, r.Y+r.H).
		Close()
}

// RoundedRectPath clamps radius to half the shorter side.
func RoundedRectPath(r Rect, radius float64) *Path {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		return RectPath(r)
	}

	kr := kappa * radius
	x, y, w, h := r.X, r.Y, r.W, r.H

	p := &Path{}
	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.CubeTo(x+w-radius+kr, y, x+w, y+radius-kr, x+w, y+radius)
	p.LineTo(x+w, y+h-radius)
	p.CubeTo(x+w, y+h-radius+kr, x+w-radius+kr, y+h, x+w-radius, y+h)
	p.LineTo(x+radius, y+h)
	p.CubeTo(x+radius-kr, y+h, x, y+h-radius+kr, x, y+h-radius)
	p.LineTo(x, y+radius)
	p.CubeTo(x, y+radius-kr, x+radius-kr, y, x+radius, y)
	return p.Close()
}

// EllipsePath returns the ellipse inscribed in r.
func EllipsePath(r Rect) *Path {
	cx, cy := r.Center()
	rx, ry := r.W/2, r.H/2
	ox, oy := rx*kappa, ry*kappa

	p := &Path{}
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	return p.Close()
}

// heartCurves is a heart outline in the unit square. It touches all four
// edges so stretching it to a rectangle fills that rectangle's bounds.
var heartCurves = [][6]float64{
	{0.50, 0.22, 0.45, 0.00, 0.25, 0.00},
	{0.00, 0.00, 0.00, 0.30, 0.00, 0.35},
	{0.00, 0.60, 0.30, 0.80, 0.50, 1.00},
	{0.70, 0.80, 1.00, 0.60, 1.00, 0.35},
	{1.00, 0.30, 1.00, 0.00, 0.75, 0.00},
	{0.55, 0.00, 0.50, 0.22, 0.50, 0.25},
}

// HeartPath stretches the unit heart to r independently on each axis; the
// aspect ratio of the heart is not preserved.
func HeartPath(r Rect) *Path {
	tx := func(nx float64) float64 { return r.X + nx*r.W }
	ty := func(ny float64) float64 { return r.Y + ny*r.H }

	p := &Path{}
	p.MoveTo(tx(0.5), ty(0.25))
	for _, c := range heartCurves {
		p.CubeTo(tx(c[0]), ty(c[1]), tx(c[2]), ty(c[3]), tx(c[4]), ty(c[5]))
	}
	return p.Close()
}
