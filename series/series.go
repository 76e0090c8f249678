// Package series turns series specs into normalized data series.
//
// [Split] extracts datums from raw rows and groups them into one
// [DataSeries] per spec, y accessor, split value and panel. Non-stacked
// series are then gap-filled by [Fit] and stacked series are accumulated
// by [Stack]. A DataSeries is never mutated after it is produced; every
// step returns new values.
package series

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

// Filled marks values synthesized by the pipeline rather than read from data.
type Filled struct {
	// X is set when the whole datum was added for an x value missing from
	// the series.
	X bool
	// Y1 and Y0 carry gap-fill values; the datum's own Y1 stays null.
	Y1 Number
	Y0 Number
}

// Any reports whether any value was synthesized.
func (f Filled) Any() bool { return f.X || f.Y1.Valid || f.Y0.Valid }

// Datum is one observation of a data series.
type Datum struct {
	X  scale.Value
	Y1 Number
	Y0 Number

	// InitialY1 and InitialY0 keep the values before stacking.
	InitialY1 Number
	InitialY0 Number

	Mark Number

	// Datum is the source row.
	Datum any

	Filled Filled
}

// IsFilled reports whether d should render as synthesized: either a fill
// value was written or there is no original y1.
func (d Datum) IsFilled() bool {
	return d.Filled.X || d.Filled.Y1.Valid || !d.InitialY1.Valid
}

// YValue returns Y1, falling back to the fill value.
func (d Datum) YValue() Number {
	if d.Y1.Valid {
		return d.Y1
	}
	return d.Filled.Y1
}

// Y0Value returns Y0, falling back to the fill value.
func (d Datum) Y0Value() Number {
	if d.Y0.Valid {
		return d.Y0
	}
	return d.Filled.Y0
}

// SplitValue is one split accessor and its value for a series.
type SplitValue struct {
	Accessor string
	Value    scale.Value
}

// Identifier identifies a series across render passes.
type Identifier struct {
	Key            string
	SpecID         string
	YAccessor      string
	SplitAccessors []SplitValue
	// SeriesKeys are the split values followed by the y accessor.
	SeriesKeys []scale.Value
	// SmV and SmH are the small multiples panel values, null when unused.
	SmV scale.Value
	SmH scale.Value
}

// DataSeries is an ordered list of datums sharing an Identifier.
type DataSeries struct {
	Identifier

	GroupID     string
	Spec        spec.Series
	Data        []Datum
	IsStacked   bool
	StackMode   spec.StackMode
	InsertIndex int
	// IsFiltered marks series deselected by the user.
	IsFiltered bool
}

// Kind returns the series variant.
func (ds *DataSeries) Kind() spec.Kind { return ds.Spec.Kind() }

// withData returns a shallow copy of ds holding data.
func (ds *DataSeries) withData(data []Datum) *DataSeries {
	c := *ds
	c.Data = data
	return &c
}

// SeriesKey builds the unique key of a series. Split accessors are sorted
// by name; panel values are appended when set.
func SeriesKey(groupID, specID, yAccessor string, splits []SplitValue, smV, smH scale.Value) string {
	sorted := slices.Clone(splits)
	slices.SortStableFunc(sorted, func(a, b SplitValue) int {
		return cmp.Compare(a.Accessor, b.Accessor)
	})
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = s.Accessor + "-" + s.Value.String()
	}

	var b strings.Builder
	b.WriteString("groupId{" + groupID + "}")
	b.WriteString("spec{" + specID + "}")
	b.WriteString("yAccessor{" + yAccessor + "}")
	b.WriteString("splitAccessors{" + strings.Join(parts, "|") + "}")
	if !smV.IsNull() {
		b.WriteString("smV{" + smV.String() + "}")
	}
	if !smH.IsNull() {
		b.WriteString("smH{" + smH.String() + "}")
	}
	return b.String()
}

// SortByX sorts a copy of data by x in domain order.
func SortByX(data []Datum) []Datum {
	out := slices.Clone(data)
	slices.SortStableFunc(out, func(a, b Datum) int {
		return scale.Compare(a.X, b.X)
	})
	return out
}

// LastValue is the value shown in a legend for the last x of a series.
type LastValue struct {
	Y0 Number
	Y1 Number
}

// LastValues returns, per series key, the values of the last datum when it
// sits on lastX and carries real data. Percentage series report the height
// of their slice.
func LastValues(list []*DataSeries, lastX scale.Value) map[string]LastValue {
	out := make(map[string]LastValue, len(list))
	for _, ds := range list {
		if len(ds.Data) == 0 {
			continue
		}
		last := ds.Data[len(ds.Data)-1]
		if last.IsFilled() || last.X != lastX {
			continue
		}
		if ds.StackMode == spec.StackModePercentage {
			y1 := Null
			if last.Y1.Valid && last.Y0.Valid {
				y1 = Num(last.Y1.Value - last.Y0.Value)
			}
			out[ds.Key] = LastValue{Y0: last.Y0, Y1: y1}
			continue
		}
		if last.InitialY0.Valid || last.InitialY1.Valid {
			out[ds.Key] = LastValue{Y0: last.InitialY0, Y1: last.InitialY1}
		}
	}
	return out
}
