package geometry

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/index"
)

// IsPointOnGeometry reports whether the pixel (x, y) hits g. Points are hit
// within their radius plus buffer; an infinite buffer falls back to
// index.HighlightPadding. Bars are hit inside their rectangle.
func IsPointOnGeometry(x, y float64, g index.Geometry, buffer float64) bool {
	switch v := g.(type) {
	case *Point:
		if math.IsInf(buffer, 1) {
			buffer = index.HighlightPadding
		}
		return v.Center().Distance(gg.Pt(x, y)) <= v.Radius+buffer
	case *Bar:
		return y >= v.Y && y <= v.Y+v.Height && x >= v.X && x <= v.X+v.Width
	}
	return false
}
