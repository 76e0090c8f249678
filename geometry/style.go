package geometry

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/series"
)

// BarStyle sizes bars inside their band. Nil fields use the full band.
type BarStyle struct {
	// WidthPixel is a fixed bar width, capped by the band.
	WidthPixel *float64
	// WidthRatio is the largest share of the band a bar may fill, in [0, 1].
	WidthRatio *float64
}

// Style holds the theme values builders need.
type Style struct {
	Bar              BarStyle
	PointRadius      float64
	PointStrokeWidth float64
	// MarkSizeRatio spreads mark values over radii. It is clamped to [0, 100].
	MarkSizeRatio float64
}

// Input is what every builder reads.
type Input struct {
	Series *series.DataSeries
	XScale scale.Scale
	YScale *scale.Continuous
	Panel  Panel
	Color  gg.RGBA
	Style  Style

	// Shift moves lines, areas and points to the middle of bar bands when
	// bars share the chart.
	Shift float64
	// XScaleOffset aligns lines, areas and points with histogram bins.
	XScaleOffset float64
}

func (in Input) banded() bool {
	return len(in.Series.Spec.Common().Y0Accessors) > 0
}

func (in Input) markSizeEnabled() bool {
	return in.Series.Spec.Common().MarkSizeAccessor != ""
}

// barWidth returns the width of a bar inside a band of the given width.
func (s BarStyle) barWidth(bandwidth float64) float64 {
	ratio := 1.0
	if s.WidthRatio != nil {
		ratio = *s.WidthRatio
	}
	maxPx := clamp(ratio, 0, 1) * bandwidth
	if s.WidthPixel == nil {
		return maxPx
	}
	return clamp(*s.WidthPixel, 0, maxPx)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
