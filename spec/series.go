// Package spec holds the declarative input of a chart: series specs,
// axes and chart settings.
//
// A series spec is one of four variants, [Bar], [Line], [Area] or
// [Bubble], each embedding the shared [Base]. Kind specific options
// live on the variant and are read once where the series is split.
package spec

import (
	"strconv"

	"github.com/gogpu/ggchart/scale"
)

// DefaultGroupID is the y group of series that do not name one.
const DefaultGroupID = "__global__"

// Series is implemented by Bar, Line, Area and Bubble.
type Series interface {
	Kind() Kind
	Common() *Base
	isSeries()
}

// Base holds the fields shared by every series variant.
type Base struct {
	ID      string
	GroupID string
	Name    string
	// Color is a CSS-like color name or a #rrggbb hex value.
	Color string

	// Data rows are maps keyed by accessor name or slices indexed by the
	// decimal accessor ("0", "1", ...).
	Data []any

	XAccessor        string
	YAccessors       []string
	Y0Accessors      []string
	SplitAccessors   []string
	StackAccessors   []string
	MarkSizeAccessor string

	StackMode  StackMode
	XScaleType scale.Type
	YScaleType scale.Type
	TimeZone   string
}

// Common returns b.
func (b *Base) Common() *Base { return b }

// Group returns the y group, defaulting to DefaultGroupID.
func (b *Base) Group() string {
	if b.GroupID == "" {
		return DefaultGroupID
	}
	return b.GroupID
}

// IsStacked reports whether the series declares stack accessors.
func (b *Base) IsStacked() bool { return len(b.StackAccessors) > 0 }

// Bar is a bar series.
type Bar struct {
	Base

	EnableHistogramMode bool
	// MinBarHeight is the smallest pixel height of a non-zero bar.
	MinBarHeight float64
	// DisplayValues adds a formatted value label to each bar.
	DisplayValues bool
}

// Kind implements Series.
func (*Bar) Kind() Kind { return KindBar }
func (*Bar) isSeries()  {}

// Line is a line series.
type Line struct {
	Base

	Curve                  Curve
	Fit                    Fit
	HistogramModeAlignment scale.Alignment
}

// Kind implements Series.
func (*Line) Kind() Kind { return KindLine }
func (*Line) isSeries()  {}

// Area is an area series.
type Area struct {
	Base

	Curve                  Curve
	Fit                    Fit
	HistogramModeAlignment scale.Alignment
}

// Kind implements Series.
func (*Area) Kind() Kind { return KindArea }
func (*Area) isSeries()  {}

// Bubble is a bubble series sized by its mark accessor.
type Bubble struct {
	Base
}

// Kind implements Series.
func (*Bubble) Kind() Kind { return KindBubble }
func (*Bubble) isSeries()  {}

// FitOf returns the fit policy of s, FitNone for variants without one.
func FitOf(s Series) Fit {
	switch v := s.(type) {
	case *Line:
		return v.Fit.Normalize()
	case *Area:
		return v.Fit.Normalize()
	}
	return Fit{}
}

// CurveOf returns the curve of s, CurveLinear for variants without one.
func CurveOf(s Series) Curve {
	switch v := s.(type) {
	case *Line:
		return v.Curve
	case *Area:
		return v.Curve
	}
	return CurveLinear
}

// AlignmentOf returns the histogram alignment of lines and areas.
func AlignmentOf(s Series) scale.Alignment {
	switch v := s.(type) {
	case *Line:
		return v.HistogramModeAlignment
	case *Area:
		return v.HistogramModeAlignment
	}
	return scale.AlignStart
}

// IsHistogram reports whether s is a bar series in histogram mode.
func IsHistogram(s Series) bool {
	b, ok := s.(*Bar)
	return ok && b.EnableHistogramMode
}

// Field reads accessor from a data row. Map rows are looked up by key and
// slice rows by decimal index.
func Field(row any, accessor string) (any, bool) {
	switch r := row.(type) {
	case map[string]any:
		v, ok := r[accessor]
		return v, ok
	case map[any]any:
		v, ok := r[accessor]
		return v, ok
	case []any:
		i, err := strconv.Atoi(accessor)
		if err != nil || i < 0 || i >= len(r) {
			return nil, false
		}
		return r[i], true
	case []float64:
		i, err := strconv.Atoi(accessor)
		if err != nil || i < 0 || i >= len(r) {
			return nil, false
		}
		return r[i], true
	}
	return nil, false
}
