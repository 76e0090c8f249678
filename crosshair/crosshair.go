// Package crosshair positions the cursor band and cursor line of a chart
// from a pointer position.
//
// A pointer is first projected into the chart area, then oriented so that
// its X coordinate runs along the x scale regardless of the chart
// rotation. The oriented position is inverted through the x scale and,
// when snapping is enabled, the band is drawn at the resolved value
// instead of under the pointer. Positions outside the chart area yield no
// band and no line.
package crosshair

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

// DefaultBand is the band width used on scales without a bandwidth.
const DefaultBand = 1

// Snap is the pixel extent of the band around an x value, measured along
// the x scale.
type Snap struct {
	Position float64
	Band     float64
}

// SnapPosition returns the band covering v. On band scales the band spans
// the bars of a whole cluster including their padding; elsewhere it is
// DefaultBand wide. It returns false when v is outside the scale domain.
func SnapPosition(v scale.Value, s scale.Scale, totalBars int) (Snap, bool) {
	pos, ok := s.Scale(v)
	if !ok {
		return Snap{}, false
	}
	if bw := s.Bandwidth(); bw > 0 {
		n := float64(max(1, totalBars))
		band := bw / (1 - s.BarsPadding())
		halfPadding := (band - bw) / 2
		return Snap{Position: pos - halfPadding*n, Band: band * n}, true
	}
	return Snap{Position: pos, Band: DefaultBand}, true
}

// Project returns the pointer position relative to the chart area.
func Project(pointer gg.Point, chart gg.Rect) gg.Point {
	return gg.Pt(pointer.X-chart.Min.X, pointer.Y-chart.Min.Y)
}

// Orient maps a projected position so that X runs along the x scale and Y
// along the y scale of a chart drawn with rotation r.
func Orient(projected gg.Point, chart gg.Rect, r spec.Rotation) gg.Point {
	x, y := projected.X, projected.Y
	switch r {
	case 180:
		return gg.Pt(chart.Width()-x, y)
	case 90:
		return gg.Pt(y, x)
	case -90:
		return gg.Pt(chart.Height()-y, x)
	default:
		return gg.Pt(x, y)
	}
}

// CursorLine returns the line crossing the y axis under a projected
// pointer position, as a zero-height or zero-width rectangle in chart
// coordinates. It returns nil when the pointer is outside the chart.
func CursorLine(r spec.Rotation, chart gg.Rect, projected gg.Point) *gg.Rect {
	if !inside(projected, chart.Width(), chart.Height()) {
		return nil
	}
	if r.IsHorizontal() {
		y := chart.Min.Y + projected.Y
		return &gg.Rect{Min: gg.Pt(chart.Min.X, y), Max: gg.Pt(chart.Max.X, y)}
	}
	x := chart.Min.X + projected.X
	return &gg.Rect{Min: gg.Pt(x, chart.Min.Y), Max: gg.Pt(x, chart.Max.Y)}
}

// BandOptions configure CursorBand.
type BandOptions struct {
	// Snap draws the band at the resolved value rather than under the
	// pointer.
	Snap bool
	// TotalBars is the number of bars in a cluster; zero for charts
	// without bars.
	TotalBars int
}

// CursorBand returns the highlighted band under an oriented cursor
// position in chart coordinates. xs is the x scale and xValues the sorted
// x values of the chart. The band is clipped to the chart area. It returns
// nil when the cursor is outside the chart or the x scale cannot resolve
// a value within its bandwidth.
func CursorBand(r spec.Rotation, chart gg.Rect, cursor gg.Point, xs scale.Scale, xValues []scale.Value, opts BandOptions) *gg.Rect {
	width, height := chart.Width(), chart.Height()
	if !r.IsHorizontal() {
		width, height = height, width
	}
	if !inside(cursor, width, height) {
		return nil
	}
	inv, ok := xs.InvertWithStep(cursor.X, xValues)
	if !ok || !inv.WithinBandwidth {
		return nil
	}
	snap, ok := SnapPosition(inv.Value, xs, opts.TotalBars)
	if !ok {
		return nil
	}
	along := cursor.X
	if opts.Snap {
		along = snap.Position
	}
	var offset float64
	if xs.Bandwidth() > 0 {
		offset = snap.Band
	}

	left, top := chart.Min.X, chart.Min.Y
	if r.IsHorizontal() {
		start := left + along
		if r == 180 {
			start = left + chart.Width() - along - offset
		}
		start, size := clip(start, snap.Band, left, left+chart.Width())
		return &gg.Rect{Min: gg.Pt(start, top), Max: gg.Pt(start+size, chart.Max.Y)}
	}
	start := top + along
	if r == -90 {
		start = top + chart.Height() - along - offset
	}
	start, size := clip(start, snap.Band, top, top+chart.Height())
	return &gg.Rect{Min: gg.Pt(left, start), Max: gg.Pt(chart.Max.X, start+size)}
}

// clip trims a band wider than one pixel to [lo, hi].
func clip(start, band, lo, hi float64) (float64, float64) {
	switch {
	case band > 1 && start+band > hi:
		return start, hi - start
	case band > 1 && start < lo:
		return lo, band - (lo - start)
	}
	return start, band
}

func inside(p gg.Point, width, height float64) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= width && p.Y <= height
}

// Position is the crosshair state for one pointer position.
type Position struct {
	// Value is the x value under the pointer.
	Value scale.Value
	Band  gg.Rect
	Line  gg.Rect
}

// Locate runs the whole positioning for a pointer in canvas coordinates.
// It returns false when the pointer is outside the chart area or no x
// value can be resolved.
func Locate(pointer gg.Point, chart gg.Rect, r spec.Rotation, xs scale.Scale, xValues []scale.Value, opts BandOptions) (Position, bool) {
	projected := Project(pointer, chart)
	line := CursorLine(r, chart, projected)
	if line == nil {
		return Position{}, false
	}
	cursor := Orient(projected, chart, r)
	band := CursorBand(r, chart, cursor, xs, xValues, opts)
	if band == nil {
		return Position{}, false
	}
	inv, _ := xs.InvertWithStep(cursor.X, xValues)
	return Position{Value: inv.Value, Band: *band, Line: *line}, true
}
