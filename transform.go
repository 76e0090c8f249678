package ggchart

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/spec"
)

// ChartTransform returns the matrix mapping chart coordinates onto the
// canvas for a chart drawn in area with rotation r.
//
// In chart coordinates the x scale always runs along X and the y scale
// along Y, so for vertical rotations the chart is area.Height() wide and
// area.Width() tall.
func ChartTransform(area gg.Rect, r spec.Rotation) gg.Matrix {
	w, h := area.Width(), area.Height()
	var m gg.Matrix
	switch r {
	case 90:
		m = gg.Translate(w, 0).Multiply(gg.Rotate(math.Pi / 2))
	case -90:
		m = gg.Translate(0, h).Multiply(gg.Rotate(-math.Pi / 2))
	case 180:
		m = gg.Translate(w, h).Multiply(gg.Rotate(math.Pi))
	default:
		m = gg.Identity()
	}
	return gg.Translate(area.Min.X, area.Min.Y).Multiply(m)
}

// ChartSize returns the size of area in chart coordinates.
func ChartSize(area gg.Rect, r spec.Rotation) (width, height float64) {
	if r.IsHorizontal() {
		return area.Width(), area.Height()
	}
	return area.Height(), area.Width()
}
