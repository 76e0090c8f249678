package geometry

import (
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/index"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/spec"
)

// PathOptions are the line and area spec settings used while building
// paths.
type PathOptions struct {
	Curve spec.Curve
	// Fitted is set when the series fills gaps; it enables clipped ranges.
	Fitted bool
}

// vertex is one defined datum of a path.
type vertex struct {
	x, y1, y0 float64
}

// segments splits the data into runs of datums for which defined holds.
func segments(data []series.Datum, defined func(series.Datum) bool, at func(series.Datum) vertex) [][]vertex {
	var out [][]vertex
	var cur []vertex
	for _, d := range data {
		if !defined(d) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		v := at(d)
		if math.IsNaN(v.x) || math.IsNaN(v.y1) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, v)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func (in Input) vertexFunc(ym yMapper) func(series.Datum) vertex {
	return func(d series.Datum) vertex {
		x, ok := in.XScale.Scale(d.X)
		if !ok {
			x = math.NaN()
		}
		return vertex{x: x - in.XScaleOffset, y1: ym.y1(d), y0: ym.y0(d)}
	}
}

func outline(c spec.Curve, segs [][]vertex, y func(vertex) float64) *gg.Path {
	path := gg.NewPath()
	for _, seg := range segs {
		pts := make([]gg.Point, len(seg))
		for i, v := range seg {
			pts[i] = gg.Pt(v.x, y(v))
		}
		drawCurve(path, c, pts, false, false)
	}
	return path
}

func y1Of(v vertex) float64 { return v.y1 }
func y0Of(v vertex) float64 { return v.y0 }

// RenderLine builds the path and the markers of a line series. Datums with
// an undrawable y1 break the path.
func RenderLine(in Input, opts PathOptions) (*Line, *index.Map) {
	ds := in.Series
	ym := newYMapper(in.YScale, in.XScale)
	defined := func(d series.Datum) bool { return ym.defined(d, d.YValue()) }
	segs := segments(ds.Data, defined, in.vertexFunc(ym))

	pointsIn := in
	pointsIn.Shift = in.Shift - in.XScaleOffset
	points, idx := RenderPoints(pointsIn, false)

	line := &Line{
		Path:             outline(opts.Curve, segs, y1Of),
		Points:           points,
		Color:            in.Color,
		Transform:        gg.Pt(in.Shift, 0),
		SeriesIdentifier: ds.Identifier,
		ShouldClip:       opts.Fitted,
	}
	if opts.Fitted && !in.banded() {
		line.ClippedRanges = ClippedRanges(ds.Data, in.XScale, in.XScaleOffset)
	}
	return line, idx
}

// RenderArea builds the fill path, the outlines and the markers of an area
// series. The fill runs along y1 and back along y0 for every run of
// defined datums. On log scales a datum with a y0 of the wrong sign is not
// defined.
func RenderArea(in Input, opts PathOptions) (*Area, *index.Map) {
	ds := in.Series
	ym := newYMapper(in.YScale, in.XScale)
	defined := func(d series.Datum) bool {
		if !ym.defined(d, d.YValue()) {
			return false
		}
		y0 := d.Y0Value()
		return !ym.log || !y0.Valid || !ym.wrongPolarity(y0.Value)
	}
	segs := segments(ds.Data, defined, in.vertexFunc(ym))

	fill := gg.NewPath()
	for _, seg := range segs {
		top := make([]gg.Point, len(seg))
		bottom := make([]gg.Point, len(seg))
		for i, v := range seg {
			top[i] = gg.Pt(v.x, v.y1)
			bottom[i] = gg.Pt(v.x, v.y0)
		}
		slices.Reverse(bottom)
		drawCurve(fill, opts.Curve, top, false, false)
		drawCurve(fill, opts.Curve, bottom, true, true)
		fill.Close()
	}

	lines := []*gg.Path{outline(opts.Curve, segs, y1Of)}
	if in.banded() {
		lines = append(lines, outline(opts.Curve, segs, y0Of))
	}

	pointsIn := in
	pointsIn.Shift = in.Shift - in.XScaleOffset
	points, idx := RenderPoints(pointsIn, false)

	area := &Area{
		Area:             fill,
		Lines:            lines,
		Points:           points,
		Color:            in.Color,
		Transform:        gg.Pt(in.Shift, 0),
		SeriesIdentifier: ds.Identifier,
		IsStacked:        ds.IsStacked,
		ShouldClip:       opts.Fitted,
	}
	if opts.Fitted && !in.banded() && !ds.IsStacked {
		area.ClippedRanges = ClippedRanges(ds.Data, in.XScale, in.XScaleOffset)
	}
	return area, idx
}

// RenderBubble builds the markers of a bubble series. Bubbles are indexed
// spatially unless the chart mixes them with other series kinds.
func RenderBubble(in Input, mixed bool) (*Bubble, *index.Map) {
	pointsIn := in
	pointsIn.Shift = in.Shift - in.XScaleOffset
	points, idx := RenderPoints(pointsIn, !mixed)
	return &Bubble{
		Points:           points,
		Color:            in.Color,
		SeriesIdentifier: in.Series.Identifier,
	}, idx
}
