// Package geometry holds the pure pixel arithmetic behind the curve-tracing
// zoom window.
package geometry

import "image"

// Defaults used by the zoom window when the caller leaves them unset.
const (
	DefaultWindowSize    = 200
	DefaultMagnification = 2
)

// Upper bounds on caller-supplied sizes. Their product stays well inside int.
const (
	MaxImageSize     = 65536
	MaxWindowSize    = 4096
	MaxMagnification = 16
)

// ZoomWindow returns the crop rectangle of the given size centred on cursor and
// shifted so that it stays inside bounds. If bounds is smaller than size along
// an axis, the crop covers the whole image along that axis.
func ZoomWindow(cursor image.Point, bounds image.Rectangle, size image.Point) image.Rectangle {
	w := min(size.X, bounds.Dx())
	h := min(size.Y, bounds.Dy())

	x := clamp(cursor.X-size.X/2, bounds.Min.X, bounds.Max.X-w)
	y := clamp(cursor.Y-size.Y/2, bounds.Min.Y, bounds.Max.Y-h)

	return image.Rect(x, y, x+w, y+h)
}

// DisplaySize returns the on-screen size of a crop magnified by factor.
func DisplaySize(crop image.Rectangle, factor int) image.Point {
	return crop.Size().Mul(factor)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
