package series

import (
	"math"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

// Neighbor is the closest non-null datum on one side of a gap together with
// its position in the sorted data.
type Neighbor struct {
	Datum Datum
	Index int
}

// Fit fills null y1 values of a non-stacked series according to cfg.
//
// FitNone, and FitExplicit without a value, return ds itself. Other
// policies return a new series whose gaps carry Filled.Y1; the datums'
// own Y1 stay null. Data is sorted by x first unless sorted is true or
// the x scale is ordinal.
func Fit(ds *DataSeries, cfg spec.Fit, xScaleType scale.Type, sorted bool) *DataSeries {
	cfg = cfg.Normalize()
	switch cfg.Type {
	case spec.FitNone:
		return ds
	case spec.FitZero, spec.FitExplicit:
		fill := 0.0
		if cfg.Type == spec.FitExplicit {
			fill = *cfg.Value
		}
		data := make([]Datum, len(ds.Data))
		for i, d := range ds.Data {
			if !d.Y1.Valid {
				d.Filled.Y1 = Num(fill)
			}
			data[i] = d
		}
		return ds.withData(data)
	}

	data := ds.Data
	if !sorted && xScaleType != scale.Ordinal {
		data = SortByX(data)
	}
	ordinal := xScaleType == scale.Ordinal

	lookahead := cfg.EndValue.IsNearest()
	switch cfg.Type {
	case spec.FitLookahead, spec.FitNearest, spec.FitAverage, spec.FitLinear:
		lookahead = true
	}

	out := make([]Datum, len(data))
	var prev, next *Neighbor
	for i, current := range data {
		if !current.Y1.Valid && next == nil && lookahead {
			for j := i + 1; j < len(data); j++ {
				if data[j].Y1.Valid && !data[j].X.IsNull() {
					next = &Neighbor{Datum: data[j], Index: j}
					break
				}
			}
		}

		if current.Y1.Valid {
			out[i] = current
		} else {
			out[i] = fitDatum(current, i, prev, next, cfg.Type, cfg.EndValue, ordinal)
		}

		if current.Y1.Valid && !current.X.IsNull() {
			prev = &Neighbor{Datum: current, Index: i}
		}
		if next != nil && next.Index <= i {
			next = nil
		}
	}
	return ds.withData(out)
}

// FitValue resolves the fill value of a single null datum at position
// index given its non-null neighbours. Category x values use positions
// instead of values for distances.
func FitValue(current Datum, index int, prev, next *Neighbor, fitType spec.FitType, end spec.EndValue) Datum {
	return fitDatum(current, index, prev, next, fitType, end, false)
}

func fitDatum(current Datum, index int, prev, next *Neighbor, fitType spec.FitType, end spec.EndValue, ordinal bool) Datum {
	fill := func(v float64) Datum {
		current.Filled.Y1 = Num(v)
		return current
	}

	switch {
	case prev != nil && fitType == spec.FitCarry:
		return fill(prev.Datum.Y1.Value)
	case next != nil && fitType == spec.FitLookahead:
		return fill(next.Datum.Y1.Value)
	case prev != nil && next != nil:
		py, ny := prev.Datum.Y1.Value, next.Datum.Y1.Value
		if fitType == spec.FitAverage {
			return fill((py + ny) / 2)
		}
		cx := position(current.X, index, ordinal)
		px := position(prev.Datum.X, prev.Index, ordinal)
		nx := position(next.Datum.X, next.Index, ordinal)
		switch fitType {
		case spec.FitNearest:
			if math.Abs(cx-px) >= math.Abs(cx-nx) {
				return fill(ny)
			}
			return fill(py)
		case spec.FitLinear:
			if nx != px {
				return fill(py + (cx-px)*((ny-py)/(nx-px)))
			}
		}
	case (prev != nil || next != nil) && (fitType == spec.FitNearest || end.IsNearest()):
		if prev != nil {
			return fill(prev.Datum.Y1.Value)
		}
		return fill(next.Datum.Y1.Value)
	}

	if v, ok := end.Number(); ok {
		return fill(v)
	}
	return current
}

func position(x scale.Value, index int, ordinal bool) float64 {
	if ordinal || !x.IsNumber() {
		return float64(index)
	}
	return x.Float()
}
