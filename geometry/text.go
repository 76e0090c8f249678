package geometry

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/ggchart/internal/cache"
)

// textWidths holds measured label widths across passes.
var textWidths = cache.New[string, float64](4096)

// measureDisplayValue measures text with the fixed 7x13 face.
func measureDisplayValue(text string) *DisplayValue {
	face := basicfont.Face7x13
	width := textWidths.GetOrCreate(text, func() float64 {
		return float64(font.MeasureString(face, text).Ceil())
	})
	return &DisplayValue{
		Text:   text,
		Width:  width,
		Height: float64(face.Metrics().Height.Ceil()),
	}
}
