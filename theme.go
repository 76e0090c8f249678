package ggchart

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/diag"
	"github.com/gogpu/ggchart/geometry"
)

// Theme holds the visual constants that change geometry.
type Theme struct {
	// BarsPadding is the share of a band left empty around bars.
	BarsPadding float64 `yaml:"barsPadding" json:"barsPadding"`
	// HistogramPadding replaces BarsPadding in histogram mode.
	HistogramPadding float64 `yaml:"histogramPadding" json:"histogramPadding"`
	// MarkSizeRatio spreads bubble marks over radii, in [0, 100].
	MarkSizeRatio float64 `yaml:"markSizeRatio" json:"markSizeRatio"`

	PointRadius      float64 `yaml:"pointRadius" json:"pointRadius"`
	PointStrokeWidth float64 `yaml:"pointStrokeWidth" json:"pointStrokeWidth"`
	LineStrokeWidth  float64 `yaml:"lineStrokeWidth" json:"lineStrokeWidth"`

	BarWidthPixel *float64 `yaml:"barWidthPixel" json:"barWidthPixel"`
	BarWidthRatio *float64 `yaml:"barWidthRatio" json:"barWidthRatio"`

	// Palette colors series without their own color, by insertion order.
	Palette []string `yaml:"palette" json:"palette"`
}

// DefaultPalette is a color blind safe palette.
var DefaultPalette = []string{
	"#54B399", "#6092C0", "#D36086", "#9170B8", "#CA8EAE",
	"#D6BF57", "#B9A888", "#DA8B45", "#AA6556", "#E7664C",
}

// DefaultTheme returns the theme used when none is given.
func DefaultTheme() Theme {
	return Theme{
		BarsPadding:      0.25,
		HistogramPadding: 0.05,
		MarkSizeRatio:    50,
		PointRadius:      3,
		PointStrokeWidth: 2,
		LineStrokeWidth:  1,
		Palette:          DefaultPalette,
	}
}

// barsPadding returns the padding for the chart mode.
func (t Theme) barsPadding(histogram bool) float64 {
	if histogram {
		return t.HistogramPadding
	}
	return t.BarsPadding
}

func (t Theme) style() geometry.Style {
	return geometry.Style{
		Bar: geometry.BarStyle{
			WidthPixel: t.BarWidthPixel,
			WidthRatio: t.BarWidthRatio,
		},
		PointRadius:      t.PointRadius,
		PointStrokeWidth: t.PointStrokeWidth,
		MarkSizeRatio:    t.MarkSizeRatio,
	}
}

// palette resolves the palette colors. Invalid entries are reported and
// skipped; an empty result falls back to DefaultPalette.
func (t Theme) palette(sink diag.Sink) []gg.RGBA {
	out := make([]gg.RGBA, 0, len(t.Palette))
	for _, s := range t.Palette {
		c, err := ParseColor(s)
		if err != nil {
			diag.Warnf(sink, "theme", "%v", err)
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		for _, s := range DefaultPalette {
			c, _ := ParseColor(s)
			out = append(out, c)
		}
	}
	return out
}
