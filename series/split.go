package series

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/ggchart/diag"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

// SplitOptions configures Split.
type SplitOptions struct {
	// Deselected lists series keys hidden by the user.
	Deselected     []string
	SmallMultiples spec.SmallMultiples
	Sink           diag.Sink
}

// SplitResult is the output of Split.
type SplitResult struct {
	// Series in spec order, then first-seen order within a spec.
	Series []*DataSeries

	// XValues are the distinct x values: ascending when every value is a
	// number and no spec is ordinal, first-seen order otherwise.
	XValues []scale.Value

	// XValueSums holds the sum of y1 per x value, used to order bins.
	XValueSums map[scale.Value]float64

	// Ordinal is set when a spec declares an ordinal x scale.
	Ordinal bool

	// FallbackOrdinal is set when non-numeric x values were found on
	// continuous specs.
	FallbackOrdinal bool

	// Histogram is set when a bar spec enables histogram mode.
	Histogram bool

	SmVValues []scale.Value
	SmHValues []scale.Value
}

// Split extracts data series from specs.
//
// Rows without a string or numeric x are skipped. When split accessors are
// configured, rows without any split value are skipped. Non-numeric y and
// mark values become null and are reported once per spec.
func Split(specs []spec.Series, opts SplitOptions) SplitResult {
	res := SplitResult{XValueSums: make(map[scale.Value]float64)}
	for _, s := range specs {
		if spec.IsHistogram(s) {
			res.Histogram = true
		}
	}

	deselected := make(map[string]bool, len(opts.Deselected))
	for _, k := range opts.Deselected {
		deselected[k] = true
	}

	seenX := make(map[scale.Value]bool)
	seenSmV := make(map[scale.Value]bool)
	seenSmH := make(map[scale.Value]bool)
	allNumbers := true

	for _, s := range specs {
		base := s.Common()
		if base.XScaleType == scale.Ordinal {
			res.Ordinal = true
		}
		stacked := s.Kind() != spec.KindBubble &&
			(base.IsStacked() || (res.Histogram && s.Kind() == spec.KindBar))

		list, xs := splitSpec(s, stacked, res.XValueSums, opts)
		for _, ds := range list {
			ds.IsFiltered = deselected[ds.Key]
			ds.InsertIndex = len(res.Series)
			res.Series = append(res.Series, ds)
			if !ds.SmV.IsNull() && !seenSmV[ds.SmV] {
				seenSmV[ds.SmV] = true
				res.SmVValues = append(res.SmVValues, ds.SmV)
			}
			if !ds.SmH.IsNull() && !seenSmH[ds.SmH] {
				seenSmH[ds.SmH] = true
				res.SmHValues = append(res.SmHValues, ds.SmH)
			}
		}
		for _, x := range xs {
			if !x.IsNumber() {
				allNumbers = false
			}
			if !seenX[x] {
				seenX[x] = true
				res.XValues = append(res.XValues, x)
			}
		}
	}

	if !res.Ordinal && allNumbers {
		slices.SortFunc(res.XValues, scale.Compare)
	}
	res.FallbackOrdinal = !res.Ordinal && !allNumbers
	return res
}

func splitSpec(s spec.Series, stacked bool, sums map[scale.Value]float64, opts SplitOptions) ([]*DataSeries, []scale.Value) {
	base := s.Common()
	groupID := base.Group()
	byKey := make(map[string]*DataSeries)
	var order []*DataSeries
	var xs []scale.Value
	var nonNumeric []any

	cast := func(row any, accessor string) Number {
		if accessor == "" {
			return Null
		}
		raw, _ := spec.Field(row, accessor)
		n, ok := castNumber(raw)
		if !ok {
			nonNumeric = append(nonNumeric, raw)
		}
		return n
	}

	for _, row := range base.Data {
		splits := splitValues(row, base.SplitAccessors)
		if len(base.SplitAccessors) > 0 && len(splits) == 0 {
			continue
		}
		rawX, ok := spec.Field(row, base.XAccessor)
		if !ok {
			continue
		}
		x, ok := xValueOf(rawX)
		if !ok {
			continue
		}
		xs = append(xs, x)

		smV := panelValue(row, opts.SmallMultiples.Vertical)
		smH := panelValue(row, opts.SmallMultiples.Horizontal)

		sum := sums[x]
		for i, yAccessor := range base.YAccessors {
			var y0Accessor string
			if i < len(base.Y0Accessors) {
				y0Accessor = base.Y0Accessors[i]
			}
			y1 := cast(row, yAccessor)
			y0 := cast(row, y0Accessor)
			mark := cast(row, base.MarkSizeAccessor)

			key := SeriesKey(groupID, base.ID, yAccessor, splits, smV, smH)
			d := Datum{
				X:         x,
				Y1:        y1,
				Y0:        y0,
				InitialY1: y1,
				InitialY0: y0,
				Mark:      mark,
				Datum:     row,
			}
			sum += y1.Or(0)

			ds, ok := byKey[key]
			if !ok {
				keys := make([]scale.Value, 0, len(splits)+1)
				for _, sv := range splits {
					keys = append(keys, sv.Value)
				}
				keys = append(keys, scale.Category(yAccessor))
				ds = &DataSeries{
					Identifier: Identifier{
						Key:            key,
						SpecID:         base.ID,
						YAccessor:      yAccessor,
						SplitAccessors: splits,
						SeriesKeys:     keys,
						SmV:            smV,
						SmH:            smH,
					},
					GroupID:   groupID,
					Spec:      s,
					IsStacked: stacked,
					StackMode: base.StackMode,
				}
				byKey[key] = ds
				order = append(order, ds)
			}
			ds.Data = append(ds.Data, d)
		}
		sums[x] = sum
	}

	if len(nonNumeric) > 0 {
		plural := ""
		if len(nonNumeric) > 1 {
			plural = "s"
		}
		diag.Warnf(opts.Sink, "series", "Found non-numeric y value%s in dataset for spec %q (%s)",
			plural, base.ID, formatRaw(nonNumeric))
	}
	return order, xs
}

// xValueOf accepts only numbers and strings.
func xValueOf(raw any) (scale.Value, bool) {
	if _, isBool := raw.(bool); isBool {
		return scale.Value{}, false
	}
	return scale.ValueOf(raw)
}

func splitValues(row any, accessors []string) []SplitValue {
	var out []SplitValue
	for _, a := range accessors {
		raw, ok := spec.Field(row, a)
		if !ok {
			continue
		}
		v, ok := xValueOf(raw)
		if !ok {
			continue
		}
		out = append(out, SplitValue{Accessor: a, Value: v})
	}
	return out
}

func panelValue(row any, accessor string) scale.Value {
	if accessor == "" {
		return scale.Value{}
	}
	raw, ok := spec.Field(row, accessor)
	if !ok {
		return scale.Value{}
	}
	v, _ := xValueOf(raw)
	return v
}

func formatRaw(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			parts[i] = strconv.Quote(s)
			continue
		}
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
