package series

import (
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

// Stack accumulates the y values of a group of series at each x value.
//
// Datums are emitted in xValues order, followed by any x value present in
// the group but missing from xValues. A series without a datum at some x
// gets a datum with a null Y1 and Filled.X set. Null y1 values stay null
// and add nothing to the baseline of later series.
//
// The first series keeps its own y0 when it has one. Otherwise its Y0 is 0
// in percentage mode, equal to Y1 when scaleToExtent is set, and null in
// every other case. In percentage mode every value is divided by the total
// of the x value; a zero total yields null values.
func Stack(group []*DataSeries, xValues []scale.Value, scaleToExtent bool, mode spec.StackMode) []*DataSeries {
	if len(group) == 0 {
		return nil
	}
	percentage := mode == spec.StackModePercentage

	order := make([]scale.Value, 0, len(xValues))
	seen := make(map[scale.Value]bool, len(xValues))
	for _, x := range xValues {
		if !seen[x] {
			seen[x] = true
			order = append(order, x)
		}
	}
	lookup := make([]map[scale.Value]int, len(group))
	for si, ds := range group {
		lookup[si] = make(map[scale.Value]int, len(ds.Data))
		for i, d := range ds.Data {
			lookup[si][d.X] = i
			if !seen[d.X] {
				seen[d.X] = true
				order = append(order, d.X)
			}
		}
	}

	// raw[xi][si] is the y1 of series si at order[xi], 0 when missing or null.
	raw := make([][]float64, len(order))
	totals := make([]float64, len(order))
	for xi, x := range order {
		raw[xi] = make([]float64, len(group))
		for si, ds := range group {
			if i, ok := lookup[si][x]; ok {
				raw[xi][si] = ds.Data[i].Y1.Or(0)
			}
			totals[xi] += raw[xi][si]
		}
	}

	out := make([]*DataSeries, len(group))
	for si, ds := range group {
		data := make([]Datum, 0, len(order))
		for xi, x := range order {
			i, ok := lookup[si][x]
			if !ok {
				data = append(data, Datum{X: x, Filled: Filled{X: true}})
				continue
			}
			d := ds.Data[i]
			total := totals[xi]
			var base float64
			for j := 0; j < si; j++ {
				base += raw[xi][j]
			}

			y1, y0 := d.Y1, d.Y0
			if percentage {
				if total == 0 {
					y1, y0 = Null, Null
				} else {
					if y1.Valid {
						y1 = Num(y1.Value / total)
					}
					if y0.Valid {
						y0 = Num(y0.Value / total)
					}
					base /= total
				}
			}

			stacked := d
			stacked.InitialY1, stacked.InitialY0 = y1, y0
			switch {
			case percentage && total == 0:
				stacked.Y1, stacked.Y0 = Null, Null
			case si == 0:
				stacked.Y1 = y1
				switch {
				case y0.Valid:
					stacked.Y0 = y0
				case percentage:
					stacked.Y0 = Num(0)
				case scaleToExtent:
					stacked.Y0 = y1
				default:
					stacked.Y0 = Null
				}
			default:
				stacked.Y1 = Null
				if y1.Valid {
					stacked.Y1 = Num(base + y1.Value)
				}
				stacked.Y0 = Num(base)
				if y0.Valid {
					stacked.Y0 = Num(base + y0.Value)
				}
			}
			data = append(data, stacked)
		}
		out[si] = ds.withData(data)
	}
	return out
}
