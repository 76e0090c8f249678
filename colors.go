package ggchart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/ggchart/diag"
	"github.com/gogpu/ggchart/series"
)

// ErrInvalidColor is returned for colors that are neither a known name nor
// a hex value.
var ErrInvalidColor = errors.New("ggchart: invalid color")

// ParseColor parses an SVG color name or a #rgb, #rgba, #rrggbb or
// #rrggbbaa hex value.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return gg.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return gg.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
			}
		}
		return gg.Hex(hex), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return gg.FromColor(c), nil
}

func isHexDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

// seriesColors assigns every series its spec color, or the palette color
// at its insertion index.
func seriesColors(list []*series.DataSeries, palette []gg.RGBA, sink diag.Sink) map[string]gg.RGBA {
	out := make(map[string]gg.RGBA, len(list))
	for _, ds := range list {
		if name := ds.Spec.Common().Color; name != "" {
			c, err := ParseColor(name)
			if err == nil {
				out[ds.Key] = c
				continue
			}
			diag.Warnf(sink, "colors", "series %q: %v", ds.Spec.Common().ID, err)
		}
		out[ds.Key] = palette[ds.InsertIndex%len(palette)]
	}
	return out
}
