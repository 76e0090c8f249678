package geometry

import (
	"math"

	"github.com/gogpu/ggchart/series"
)

// radiusBase keeps small marks visible.
const radiusBase = 2

// RadiusFunc returns the radius of a point for its mark value.
type RadiusFunc func(mark series.Number, defaultRadius float64) float64

// NewRadiusFunc spreads the mark values of data over radii. Half the mark
// is mapped linearly onto a step derived from markSizeRatio, then damped
// by a square root; lineWidth is always added.
func NewRadiusFunc(data []series.Datum, lineWidth, markSizeRatio float64) RadiusFunc {
	if len(data) == 0 {
		return func(series.Number, float64) float64 { return 0 }
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range data {
		if d.Mark.Valid {
			lo = min(lo, d.Mark.Value/2)
			hi = max(hi, d.Mark.Value/2)
		}
	}
	ratio := clamp(markSizeRatio, 0, 100)
	spread := hi - lo
	if spread == 0 {
		spread = hi * 100
	}
	step := spread / (ratio * ratio)

	return func(mark series.Number, defaultRadius float64) float64 {
		if !mark.Valid {
			return defaultRadius
		}
		circle := (mark.Value/2 - lo) / step
		if circle == 0 || math.IsNaN(circle) {
			return lineWidth
		}
		return math.Sqrt(circle+radiusBase) + lineWidth
	}
}
