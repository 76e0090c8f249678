package geometry

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart/index"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/spec"
)

// y returns a real datum at x.
func y(x, v float64) series.Datum {
	return series.Datum{
		X:         scale.Number(x),
		Y1:        series.Num(v),
		InitialY1: series.Num(v),
	}
}

// gap returns a datum without a value at x.
func gap(x float64) series.Datum {
	return series.Datum{X: scale.Number(x)}
}

// fitted returns a gap filled with v.
func fitted(x, v float64) series.Datum {
	return series.Datum{X: scale.Number(x), Filled: series.Filled{Y1: series.Num(v)}}
}

func newSeries(s spec.Series, data ...series.Datum) *series.DataSeries {
	return &series.DataSeries{
		Identifier: series.Identifier{Key: "key", SpecID: "spec", YAccessor: "y"},
		GroupID:    "group",
		Spec:       s,
		Data:       data,
	}
}

// bandX maps 0..3 onto bands 25px wide starting at 0.
func bandX() scale.Scale {
	return scale.ComputeXScale(scale.XConfig{
		Type: scale.Linear, Min: 0, Max: 3, MinInterval: 1,
		IsBandScale: true, Range: [2]float64{0, 100}, TotalBarsInCluster: 1,
	})
}

// linearX maps 0..4 onto 0..100.
func linearX() scale.Scale {
	return scale.ComputeXScale(scale.XConfig{
		Type: scale.Linear, Min: 0, Max: 4, MinInterval: 1, Range: [2]float64{0, 100},
	})
}

// linearY maps lo..hi onto 100..0.
func linearY(lo, hi float64) *scale.Continuous {
	return scale.NewContinuous(scale.ContinuousConfig{
		Type: scale.Linear, Domain: [2]float64{lo, hi}, Range: [2]float64{100, 0},
	})
}

func input(ds *series.DataSeries, x scale.Scale, yScale *scale.Continuous) Input {
	return Input{
		Series: ds,
		XScale: x,
		YScale: yScale,
		Color:  gg.RGB(1, 0, 0),
		Style:  Style{PointRadius: 3, PointStrokeWidth: 1, MarkSizeRatio: 50},
	}
}

func ptr(v float64) *float64 { return &v }

func TestRenderBars(t *testing.T) {
	ds := newSeries(&spec.Bar{}, y(0, 5), gap(1), y(2, 0.1), series.Datum{
		X: scale.Number(3), InitialY1: series.Num(4), Filled: series.Filled{X: true},
	})
	bars, idx := RenderBars(input(ds, bandX(), linearY(0, 10)), BarOptions{MinBarHeight: 3})

	require.Len(t, bars, 2)
	assert.Equal(t, 0.0, bars[0].X)
	assert.Equal(t, 25.0, bars[0].Width)
	assert.InDelta(t, 50.0, bars[0].Y, 1e-9)
	assert.InDelta(t, 50.0, bars[0].Height, 1e-9)
	assert.Equal(t, series.Num(5), bars[0].Value.Y)

	// A 1px bar is extended upwards to the minimum height.
	assert.InDelta(t, 97.0, bars[1].Y, 1e-9)
	assert.InDelta(t, 3.0, bars[1].Height, 1e-9)

	assert.Equal(t, 2, idx.Len())
	assert.Len(t, idx.Find(scale.Number(0), nil), 1)
	assert.Empty(t, idx.Find(scale.Number(1), nil))
}

func TestRenderBarsNegative(t *testing.T) {
	ds := newSeries(&spec.Bar{}, y(0, -4), y(1, -0.1))
	bars, _ := RenderBars(input(ds, bandX(), linearY(-10, 10)), BarOptions{MinBarHeight: 3})

	require.Len(t, bars, 2)
	assert.InDelta(t, 50.0, bars[0].Y, 1e-9)
	assert.InDelta(t, 20.0, bars[0].Height, 1e-9)
	// Short negative bars grow downwards from the baseline.
	assert.InDelta(t, 50.0, bars[1].Y, 1e-9)
	assert.InDelta(t, 3.0, bars[1].Height, 1e-9)
}

func TestRenderBarsWidthAndOrder(t *testing.T) {
	ds := newSeries(&spec.Bar{}, y(1, 5))
	in := input(ds, bandX(), linearY(0, 10))

	in.Style.Bar = BarStyle{WidthPixel: ptr(10)}
	bars, _ := RenderBars(in, BarOptions{OrderIndex: 1})
	require.Len(t, bars, 1)
	assert.Equal(t, 10.0, bars[0].Width)
	assert.Equal(t, 25.0+25+12.5-5, bars[0].X)

	in.Style.Bar = BarStyle{WidthPixel: ptr(100), WidthRatio: ptr(0.5)}
	bars, _ = RenderBars(in, BarOptions{})
	assert.Equal(t, 12.5, bars[0].Width)
}

func TestRenderBarsLog(t *testing.T) {
	yScale := scale.NewContinuous(scale.ContinuousConfig{
		Type: scale.Log, Domain: [2]float64{1, 100}, Range: [2]float64{100, 0},
	})
	ds := newSeries(&spec.Bar{}, y(0, 10), y(1, -5))
	bars, _ := RenderBars(input(ds, bandX(), yScale), BarOptions{})

	require.Len(t, bars, 1)
	assert.InDelta(t, 50.0, bars[0].Y, 1e-6)
	assert.InDelta(t, 50.0, bars[0].Height, 1e-6)
}

func TestRenderBarsDisplayValuesAndPercentage(t *testing.T) {
	d := y(0, 0.3)
	d.Y0 = series.Num(0.1)
	ds := newSeries(&spec.Bar{}, d)
	ds.StackMode = spec.StackModePercentage
	bars, _ := RenderBars(input(ds, bandX(), linearY(0, 1)), BarOptions{DisplayValues: true})

	require.Len(t, bars, 1)
	assert.InDelta(t, 0.2, bars[0].Value.Y.Value, 1e-9)
	require.NotNil(t, bars[0].DisplayValue)
	assert.Equal(t, 13.0, bars[0].DisplayValue.Height)
	assert.Equal(t, float64(7*len(bars[0].DisplayValue.Text)), bars[0].DisplayValue.Width)
}

func TestMeasureDisplayValue(t *testing.T) {
	dv := measureDisplayValue("10")
	assert.Equal(t, &DisplayValue{Text: "10", Width: 14, Height: 13}, dv)
}

func TestRenderPoints(t *testing.T) {
	ds := newSeries(&spec.Line{}, y(0, 5), gap(1), y(2, 6), y(3, 7))
	in := input(ds, bandX(), linearY(0, 10))
	in.Shift = 12.5
	points, idx := RenderPoints(in, false)

	require.Len(t, points, 3)
	assert.Equal(t, 3, idx.Len())
	assert.Empty(t, idx.Find(scale.Number(1), nil))
	assert.False(t, idx.IsSpatial())

	assert.True(t, points[0].Orphan)
	assert.False(t, points[1].Orphan)
	assert.False(t, points[2].Orphan)

	assert.Equal(t, 0.0, points[0].X)
	assert.InDelta(t, 50.0, points[0].Y, 1e-9)
	assert.Equal(t, gg.Pt(12.5, 0), points[0].Transform)
	assert.InDelta(t, 12.5, points[0].Center().X, 1e-9)
	assert.Equal(t, 3.0, points[0].Radius)
	assert.Equal(t, AccessorY1, points[0].Value.Accessor)
}

func TestRenderPointsSkipsFittedAndOutOfDomain(t *testing.T) {
	ds := newSeries(&spec.Line{}, y(0, 5), fitted(1, 5.5), y(2, 20))
	points, idx := RenderPoints(input(ds, bandX(), linearY(0, 10)), false)

	require.Len(t, points, 1)
	assert.Equal(t, scale.Number(0), points[0].Value.X)
	// Out of the y domain is still indexed, the fitted datum is not.
	assert.Equal(t, 2, idx.Len())
	assert.Empty(t, idx.Find(scale.Number(1), nil))
	assert.Len(t, idx.Find(scale.Number(2), nil), 1)
}

func TestRenderPointsSubpixelBuffer(t *testing.T) {
	ds := newSeries(&spec.Line{}, y(0, 0), y(1, 0.02), y(2, 1))
	points, _ := RenderPoints(input(ds, bandX(), linearY(0, 10)), false)

	require.Len(t, points, 3)
	assert.InDelta(t, 99.5, points[0].Y, 1e-9)
	assert.InDelta(t, 99.3, points[1].Y, 1e-9)
	assert.InDelta(t, 90.0, points[2].Y, 1e-9)
}

func TestRenderPointsBanded(t *testing.T) {
	d := y(0, 5)
	d.Y0, d.InitialY0 = series.Num(2), series.Num(2)
	ds := newSeries(&spec.Area{Base: spec.Base{Y0Accessors: []string{"y0"}}}, d)
	points, _ := RenderPoints(input(ds, bandX(), linearY(0, 10)), false)

	require.Len(t, points, 2)
	assert.Equal(t, AccessorY0, points[0].Value.Accessor)
	assert.InDelta(t, 80.0, points[0].Y, 1e-9)
	assert.Equal(t, series.Num(2), points[0].Value.Y)
	assert.Equal(t, AccessorY1, points[1].Value.Accessor)
	assert.InDelta(t, 50.0, points[1].Y, 1e-9)
	assert.Equal(t, series.Num(5), points[1].Value.Y)
}

func TestRenderBubbleMarkSize(t *testing.T) {
	mark := func(x, v, m float64) series.Datum {
		d := y(x, v)
		d.Mark = series.Num(m)
		return d
	}
	ds := newSeries(&spec.Bubble{Base: spec.Base{MarkSizeAccessor: "m"}},
		mark(0, 1, 2), mark(1, 2, 6), mark(2, 3, 4))

	bubble, idx := RenderBubble(input(ds, bandX(), linearY(0, 10)), false)
	require.Len(t, bubble.Points, 3)
	assert.True(t, idx.IsSpatial())

	// Largest first.
	assert.Equal(t, scale.Number(1), bubble.Points[0].Value.X)
	assert.Equal(t, scale.Number(2), bubble.Points[1].Value.X)
	assert.Equal(t, scale.Number(0), bubble.Points[2].Value.X)
	// The smallest mark falls back to the theme radius.
	assert.Equal(t, 3.0, bubble.Points[2].Radius)

	_, idx = RenderBubble(input(ds, bandX(), linearY(0, 10)), true)
	assert.False(t, idx.IsSpatial())
}

func TestNewRadiusFunc(t *testing.T) {
	data := []series.Datum{{Mark: series.Num(2)}, {Mark: series.Num(6)}, {}}
	radius := NewRadiusFunc(data, 1, 50)

	assert.Equal(t, 7.0, radius(series.Null, 7))
	assert.Equal(t, 1.0, radius(series.Num(2), 0))
	// (3 - 1) / (2 / 2500) = 2500
	assert.InDelta(t, 51.0199, radius(series.Num(6), 0), 1e-4)

	assert.Equal(t, 0.0, NewRadiusFunc(nil, 1, 50)(series.Num(4), 0))
}

func elements(p *gg.Path) []gg.PathElement { return p.Elements() }

func TestRenderLine(t *testing.T) {
	ds := newSeries(&spec.Line{}, y(0, 5), gap(1), y(2, 6), y(3, 7))
	in := input(ds, bandX(), linearY(0, 10))
	in.Shift = 12.5
	line, idx := RenderLine(in, PathOptions{Curve: spec.CurveLinear})

	assert.Equal(t, []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(0, 50)},
		gg.MoveTo{Point: gg.Pt(50, 40)},
		gg.LineTo{Point: gg.Pt(75, 30)},
	}, elements(line.Path))
	assert.Equal(t, gg.Pt(12.5, 0), line.Transform)
	assert.Len(t, line.Points, 3)
	assert.Equal(t, 3, idx.Len())
	assert.Nil(t, line.ClippedRanges)
	assert.False(t, line.ShouldClip)
}

func TestRenderLineFitted(t *testing.T) {
	ds := newSeries(&spec.Line{}, y(0, 2), fitted(1, 3), y(2, 4))
	line, _ := RenderLine(input(ds, linearX(), linearY(0, 10)), PathOptions{Fitted: true})

	// The fitted datum keeps the path continuous.
	assert.Len(t, elements(line.Path), 3)
	assert.True(t, line.ShouldClip)
	assert.Equal(t, []ClippedRange{{0, 50}}, line.ClippedRanges)
	assert.Len(t, line.Points, 2)
}

func TestRenderLineFittedGapIsNotIndexed(t *testing.T) {
	ds := newSeries(&spec.Line{}, y(0, 2), fitted(1, 3), y(2, 4))
	_, idx := RenderLine(input(ds, linearX(), linearY(0, 10)), PathOptions{Fitted: true})

	assert.Empty(t, idx.Find(scale.Number(1), nil))
	got := idx.Find(scale.Number(2), nil)
	require.Len(t, got, 1)
	assert.Equal(t, series.Num(4), got[0].(*Point).Value.Y)
}

func TestRenderBubbleGapIsNotIndexed(t *testing.T) {
	ds := newSeries(&spec.Bubble{}, y(0, 1), gap(1), y(4, 9))
	bubble, idx := RenderBubble(input(ds, linearX(), linearY(0, 10)), false)
	require.Len(t, bubble.Points, 2)

	merged := index.New()
	merged.Merge(idx)
	require.True(t, merged.IsSpatial())
	assert.Equal(t, 2, merged.Len())

	tests := []struct {
		name    string
		pointer gg.Point
		want    scale.Value
		center  gg.Point
	}{
		{"on the last bubble", gg.Pt(100, 10), scale.Number(4), gg.Pt(100, 10)},
		{"near the first bubble", gg.Pt(2, 88), scale.Number(0), gg.Pt(0, 90)},
		{"where the gap would be", gg.Pt(25, 50), scale.Number(0), gg.Pt(0, 90)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.pointer
			got := merged.Find(scale.Value{}, &p)
			require.Len(t, got, 1)
			pt := got[0].(*Point)
			assert.Equal(t, tt.want, pt.Value.X)
			assert.InDelta(t, tt.center.X, pt.Center().X, 1e-9)
			assert.InDelta(t, tt.center.Y, pt.Center().Y, 1e-9)
		})
	}
}

func TestRenderArea(t *testing.T) {
	ds := newSeries(&spec.Area{}, y(0, 5), y(1, 6))
	area, _ := RenderArea(input(ds, bandX(), linearY(0, 10)), PathOptions{})

	assert.Equal(t, []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(0, 50)},
		gg.LineTo{Point: gg.Pt(25, 40)},
		gg.LineTo{Point: gg.Pt(25, 100)},
		gg.LineTo{Point: gg.Pt(0, 100)},
		gg.Close{},
	}, elements(area.Area))
	require.Len(t, area.Lines, 1)
	assert.Len(t, elements(area.Lines[0]), 2)
}

func TestRenderAreaBanded(t *testing.T) {
	d0, d1 := y(0, 5), y(1, 6)
	d0.Y0, d1.Y0 = series.Num(1), series.Num(2)
	ds := newSeries(&spec.Area{Base: spec.Base{Y0Accessors: []string{"y0"}}}, d0, d1)
	area, _ := RenderArea(input(ds, bandX(), linearY(0, 10)), PathOptions{Fitted: true})

	require.Len(t, area.Lines, 2)
	assert.Equal(t, []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(0, 90)},
		gg.LineTo{Point: gg.Pt(25, 80)},
	}, elements(area.Lines[1]))
	// Banded areas are never clipped.
	assert.Nil(t, area.ClippedRanges)
}

func TestClippedRanges(t *testing.T) {
	x := linearX()
	tests := []struct {
		name   string
		data   []series.Datum
		offset float64
		want   []ClippedRange
	}{
		{
			"leading inner and trailing gaps",
			[]series.Datum{fitted(0, 1), y(1, 1), fitted(2, 1), y(3, 1), fitted(4, 1)},
			0,
			[]ClippedRange{{0, 25}, {25, 75}, {75, 100}},
		},
		{
			"offset",
			[]series.Datum{y(1, 1), fitted(2, 1), y(3, 1)},
			5,
			[]ClippedRange{{20, 70}},
		},
		{"all filled", []series.Datum{fitted(0, 1), fitted(1, 1)}, 0, []ClippedRange{{0, 100}}},
		{"no gaps", []series.Datum{y(0, 1), y(1, 1)}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClippedRanges(tt.data, x, tt.offset))
		})
	}
}

func TestIsPointOnGeometry(t *testing.T) {
	p := &Point{X: 10, Y: 10, Radius: 3, Transform: gg.Pt(5, 0)}
	assert.True(t, IsPointOnGeometry(19, 10, p, 1))
	assert.False(t, IsPointOnGeometry(19, 10, p, 0))
	assert.True(t, IsPointOnGeometry(27, 10, p, math.Inf(1)))
	assert.False(t, IsPointOnGeometry(29, 10, p, math.Inf(1)))

	b := &Bar{X: 0, Y: 10, Width: 20, Height: 30}
	assert.True(t, IsPointOnGeometry(20, 40, b, 0))
	assert.False(t, IsPointOnGeometry(21, 40, b, 0))
	assert.Equal(t, gg.Rect{Min: gg.Pt(0, 10), Max: gg.Pt(20, 40)}, b.Rect())
}

func TestBarIndexKey(t *testing.T) {
	ds := newSeries(&spec.Bar{})
	ds.SplitAccessors = []series.SplitValue{{Accessor: "g", Value: scale.Category("a")}}
	assert.Equal(t, "group__-__spec__-__a__-__y", BarIndexKey(ds))

	ds.IsStacked = true
	assert.Equal(t, "group__-__stacked", BarIndexKey(ds))
}
