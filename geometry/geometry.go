// Package geometry builds the pixel shapes of a chart from formatted data
// series and their scales.
//
// Every builder is pure: it reads one series, its x and y scales and a
// style, and returns the shapes of that series together with an
// [index.Map] holding them for pointer lookups. Datums outside the scale
// domains, with null values, or synthesized by the fit step are skipped
// rather than reported.
//
// Lines and areas are emitted as [gg.Path] values; bars and points carry
// their pixel position directly. Coordinates are relative to the panel
// the series is drawn in.
package geometry

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/series"
)

// Accessor tells which y value of a banded datum a point shows.
type Accessor uint8

const (
	AccessorY1 Accessor = iota
	AccessorY0
)

// Value is the domain value behind a geometry.
type Value struct {
	X        scale.Value
	Y        series.Number
	Mark     series.Number
	Accessor Accessor
	// Datum is the source row.
	Datum any
}

// Panel is the small multiples cell a geometry is drawn in.
type Panel struct {
	Bounds gg.Rect
	V, H   scale.Value
}

// Width returns the panel width.
func (p Panel) Width() float64 { return p.Bounds.Width() }

// Height returns the panel height.
func (p Panel) Height() float64 { return p.Bounds.Height() }

// Point is a marker drawn at one datum.
type Point struct {
	X, Y   float64
	Radius float64
	Color  gg.RGBA
	Value  Value
	// Transform is added to X and Y when drawing.
	Transform        gg.Point
	SeriesIdentifier series.Identifier
	// Orphan is set when the point has no defined neighbour, so no line
	// segment reaches it.
	Orphan bool
	Panel  Panel
}

// XValue implements index.Geometry.
func (p *Point) XValue() scale.Value { return p.Value.X }

// PanelValues implements index.Geometry.
func (p *Point) PanelValues() (scale.Value, scale.Value) { return p.Panel.V, p.Panel.H }

// Center returns the drawn position of the point.
func (p *Point) Center() gg.Point { return gg.Pt(p.X+p.Transform.X, p.Y+p.Transform.Y) }

// HitRadius implements index.PointGeometry.
func (p *Point) HitRadius() float64 { return p.Radius }

// DisplayValue is the text label of a bar.
type DisplayValue struct {
	Text          string
	Width, Height float64
}

// Bar is a rectangle drawn for one datum.
type Bar struct {
	X, Y          float64
	Width, Height float64
	Color         gg.RGBA
	DisplayValue  *DisplayValue
	Value         Value

	SeriesIdentifier series.Identifier
	Panel            Panel
}

// XValue implements index.Geometry.
func (b *Bar) XValue() scale.Value { return b.Value.X }

// PanelValues implements index.Geometry.
func (b *Bar) PanelValues() (scale.Value, scale.Value) { return b.Panel.V, b.Panel.H }

// Rect returns the bar bounds.
func (b *Bar) Rect() gg.Rect {
	return gg.Rect{Min: gg.Pt(b.X, b.Y), Max: gg.Pt(b.X+b.Width, b.Y+b.Height)}
}

// ClippedRange is a pixel interval along x drawn from synthesized values.
type ClippedRange [2]float64

// Line is the geometry of a line series.
type Line struct {
	Path   *gg.Path
	Points []Point
	Color  gg.RGBA
	// Transform is added to the path when drawing.
	Transform        gg.Point
	SeriesIdentifier series.Identifier
	// ClippedRanges are the gaps bridged by fitted values.
	ClippedRanges []ClippedRange
	// ShouldClip is set when the series is fitted.
	ShouldClip bool
}

// Area is the geometry of an area series.
type Area struct {
	// Area is the closed fill path.
	Area *gg.Path
	// Lines holds the y1 outline and, for banded areas, the y0 outline.
	Lines            []*gg.Path
	Points           []Point
	Color            gg.RGBA
	Transform        gg.Point
	SeriesIdentifier series.Identifier
	IsStacked        bool
	ClippedRanges    []ClippedRange
	ShouldClip       bool
}

// Bubble is the geometry of a bubble series.
type Bubble struct {
	Points           []Point
	Color            gg.RGBA
	SeriesIdentifier series.Identifier
}
