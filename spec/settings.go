package spec

import (
	"fmt"
	"strings"

	"github.com/gogpu/ggchart/scale"
)

// Rotation is the chart rotation in degrees: 0, 90, -90 or 180.
type Rotation int

// IsHorizontal reports whether the x axis runs left to right or right to left.
func (r Rotation) IsHorizontal() bool { return r == 0 || r == 180 }

// Validate reports an error for unsupported angles.
func (r Rotation) Validate() error {
	switch r {
	case 0, 90, -90, 180:
		return nil
	}
	return fmt.Errorf("spec: unsupported rotation %d", int(r))
}

// DomainRange bounds a continuous domain. Nil fields are computed from data.
type DomainRange struct {
	Min         *float64
	Max         *float64
	MinInterval *float64
}

// IsComplete reports whether both bounds are set.
func (d DomainRange) IsComplete() bool { return d.Min != nil && d.Max != nil }

// IsLowerBound reports whether only the lower bound is set.
func (d DomainRange) IsLowerBound() bool { return d.Min != nil && d.Max == nil }

// IsUpperBound reports whether only the upper bound is set.
func (d DomainRange) IsUpperBound() bool { return d.Min == nil && d.Max != nil }

// XDomain is a custom x domain: a range for continuous scales or an
// ordered category list for ordinal scales. Setting the wrong shape for
// the resolved scale type is reported and ignored.
type XDomain struct {
	Range      *DomainRange
	Categories []scale.Value
}

// BinAgg selects the aggregation used to order ordinal bins.
type BinAgg uint8

const (
	BinAggSum BinAgg = iota
	BinAggNone
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BinAgg) UnmarshalText(t []byte) error {
	switch strings.ToLower(string(t)) {
	case "sum":
		*b = BinAggSum
	case "none":
		*b = BinAggNone
	default:
		return fmt.Errorf("spec: unknown bin aggregation %q", t)
	}
	return nil
}

// Direction is a sort direction.
type Direction uint8

const (
	Descending Direction = iota
	Ascending
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(t []byte) error {
	switch strings.ToLower(string(t)) {
	case "desc", "descending":
		*d = Descending
	case "asc", "ascending":
		*d = Ascending
	default:
		return fmt.Errorf("spec: unknown sort direction %q", t)
	}
	return nil
}

// OrderBy orders ordinal x values by an aggregate of their y values.
// The zero value sorts by descending sum.
type OrderBy struct {
	BinAgg    BinAgg
	Direction Direction
}

// SmallMultiples splits series into panels by the named datum fields.
type SmallMultiples struct {
	Vertical   string
	Horizontal string
}

// Settings are chart wide options.
type Settings struct {
	Rotation           Rotation
	XDomain            *XDomain
	OrderOrdinalBinsBy *OrderBy
	SmallMultiples     SmallMultiples
}

// YDomain is a custom y domain for one group.
type YDomain struct {
	DomainRange
	// Fit scales the domain to the data extent instead of including zero.
	Fit  bool
	Nice bool
}

// Axis declares an axis and, for y axes, the custom domain of its group.
type Axis struct {
	ID           string
	GroupID      string
	Position     Position
	Domain       *YDomain
	TickCount    int
	IntegersOnly bool
}

// Group returns the y group, defaulting to DefaultGroupID.
func (a Axis) Group() string {
	if a.GroupID == "" {
		return DefaultGroupID
	}
	return a.GroupID
}

// IsYAxis reports whether the axis shows y values under rotation r.
func (a Axis) IsYAxis(r Rotation) bool {
	return a.Position.IsVertical() == r.IsHorizontal()
}
