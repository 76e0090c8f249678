package geometry

import (
	"math"
	"strings"

	"github.com/gogpu/ggchart/index"
	"github.com/gogpu/ggchart/series"
)

// BarOptions are the bar spec settings used while building bars.
type BarOptions struct {
	// OrderIndex is the slot of the series inside a bar cluster.
	OrderIndex int
	// MinBarHeight is the smallest pixel height of a non-zero bar.
	MinBarHeight float64
	// DisplayValues adds a measured text label to each bar.
	DisplayValues bool
}

// RenderBars builds one bar per datum with a real y1 inside the x domain.
//
// A bar shorter than MinBarHeight is extended away from its baseline, so
// negative bars keep growing downwards. On log scales values of the wrong
// sign are skipped and null baselines sit on the log baseline.
func RenderBars(in Input, opts BarOptions) ([]Bar, *index.Map) {
	ds := in.Series
	idx := index.New()
	ym := newYMapper(in.YScale, in.XScale)
	bandwidth := in.XScale.Bandwidth()
	width := in.Style.Bar.barWidth(bandwidth)

	var bars []Bar
	for _, d := range ds.Data {
		if !d.Y1.Valid || !d.InitialY1.Valid || d.IsFilled() {
			continue
		}
		if !in.XScale.IsValueInDomain(d.X) || ym.wrongPolarity(d.Y1.Value) {
			continue
		}
		xScaled, ok := in.XScale.Scale(d.X)
		if !ok {
			continue
		}
		y1 := ym.scale(d.Y1.Value)
		y0 := ym.y0(d)
		if math.IsNaN(y1) || math.IsNaN(y0) {
			continue
		}

		absHeight := math.Abs(y0 - y1)
		height := absHeight
		if absHeight > 0 {
			height = max(opts.MinBarHeight, absHeight)
		}
		y := y0
		if y1 <= y0 {
			y = y1 - (height - absHeight)
		}

		value := datumYValue(d, false, false, ds.StackMode)
		b := &Bar{
			X:      xScaled + bandwidth*float64(opts.OrderIndex) + bandwidth/2 - width/2,
			Y:      y,
			Width:  width,
			Height: height,
			Color:  in.Color,
			Value: Value{
				X:        d.X,
				Y:        value,
				Mark:     d.Mark,
				Accessor: AccessorY1,
				Datum:    d.Datum,
			},
			SeriesIdentifier: ds.Identifier,
			Panel:            in.Panel,
		}
		if opts.DisplayValues && value.Valid {
			b.DisplayValue = measureDisplayValue(value.String())
		}
		idx.Set(b, index.Linear)
		bars = append(bars, *b)
	}
	return bars, idx
}

// BarIndexKey returns the cluster slot key of a bar series. Stacked bars
// of a group share one slot.
func BarIndexKey(ds *series.DataSeries) string {
	const sep = "__-__"
	if ds.IsStacked {
		return ds.GroupID + sep + "stacked"
	}
	parts := []string{ds.GroupID, ds.SpecID}
	for _, s := range ds.SplitAccessors {
		parts = append(parts, s.Value.String())
	}
	parts = append(parts, ds.YAccessor)
	return strings.Join(parts, sep)
}
