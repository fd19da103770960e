package geometry

import "math"

// CoverCrop returns the region of a srcW x srcH source that, once scaled,
// fills a dstW x dstH target exactly ("object-fit: cover"). Only the
// dimension in excess is cropped, symmetrically about the center; the other
// dimension is kept in full.
func CoverCrop(srcW, srcH, dstW, dstH float64) Rect {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Rect{}
	}

	srcAspect := srcW / srcH
	dstAspect := dstW / dstH

	if srcAspect > dstAspect {
		w := srcH * dstAspect
		return Rect{X: (srcW - w) / 2, Y: 0, W: w, H: srcH}
	}

	h := srcW / dstAspect
	return Rect{X: 0, Y: (srcH - h) / 2, W: srcW, H: h}
}

// CoverFit returns where a srcW x srcH image lands when scaled by the larger
// of the two fill ratios and centered on dst ("background-size: cover").
// The result may extend past dst on one axis.
func CoverFit(srcW, srcH float64, dst Rect) Rect {
	if srcW <= 0 || srcH <= 0 {
		return dst
	}

	ratio := math.Max(dst.W/srcW, dst.H/srcH)
	w := srcW * ratio
	h := srcH * ratio

	return Rect{
		X: dst.X + (dst.W-w)/2,
		Y: dst.Y + (dst.H-h)/2,
		W: w,
		H: h,
	}
}
