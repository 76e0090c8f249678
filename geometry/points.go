package geometry

import (
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/index"
	"github.com/gogpu/ggchart/series"
)

// RenderPoints builds the markers of a series. Banded series get a y0 and a
// y1 marker per datum. Datums with a null y1 or a y1 synthesized by the fit
// step get no marker at all. The remaining markers are all indexed, but
// only those with a drawable value inside the y domain are returned. Markers sized by mark values are sorted largest first
// so small ones stay on top.
func RenderPoints(in Input, spatial bool) ([]Point, *index.Map) {
	ds := in.Series
	idx := index.New()
	kind := index.Linear
	if spatial {
		kind = index.Spatial
	}

	markSize := in.markSizeEnabled()
	radiusOf := func(series.Number, float64) float64 { return 0 }
	if markSize {
		radiusOf = NewRadiusFunc(ds.Data, in.Style.PointStrokeWidth, in.Style.MarkSizeRatio)
	}
	banded := in.banded()
	ym := newYMapper(in.YScale, in.XScale)

	var points []Point
	for i, d := range ds.Data {
		if !d.Y1.Valid || d.Filled.Y1.Valid || !in.XScale.IsValueInDomain(d.X) {
			continue
		}
		x, ok := in.XScale.Scale(d.X)
		if !ok {
			continue
		}
		accessors := []Accessor{AccessorY1}
		if banded {
			accessors = []Accessor{AccessorY0, AccessorY1}
		}
		orphan := ym.isOrphan(ds.Data, i)
		radius := in.Style.PointRadius
		if markSize {
			radius = max(radiusOf(d.Mark, 0), in.Style.PointRadius)
		}
		for k, acc := range accessors {
			y, v := ym.y1(d), d.YValue()
			if acc == AccessorY0 {
				y, v = ym.y0(d), d.Y0Value()
			}
			p := &Point{
				X:      x,
				Y:      y,
				Radius: radius,
				Color:  in.Color,
				Value: Value{
					X:        d.X,
					Y:        datumYValue(d, k == 0, banded, ds.StackMode),
					Mark:     d.Mark,
					Accessor: acc,
					Datum:    d.Datum,
				},
				Transform:        gg.Pt(in.Shift, 0),
				SeriesIdentifier: ds.Identifier,
				Orphan:           orphan,
				Panel:            in.Panel,
			}
			idx.Set(p, kind)
			if !math.IsNaN(y) && ym.defined(d, v) && in.YScale.IsValueInDomain(scaleNumber(v)) && !d.IsFilled() {
				points = append(points, *p)
			}
		}
	}
	if markSize {
		slices.SortStableFunc(points, func(a, b Point) int {
			switch {
			case a.Radius > b.Radius:
				return -1
			case a.Radius < b.Radius:
				return 1
			}
			return 0
		})
	}
	return points, idx
}
