package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

// gappy has y values [_, 3, _, 5, _, _, 8, _, 10, _, 12, _] at x 0..11.
func gappy() *DataSeries {
	ys := []any{nil, 3.0, nil, 5.0, nil, nil, 8.0, nil, 10.0, nil, 12.0, nil}
	points := make([][2]any, len(ys))
	for i, y := range ys {
		points[i] = [2]any{i, y}
	}
	ds := seriesOf("gappy", points...)
	ds.IsStacked = false
	return ds
}

// fitted returns the rendered y of every datum, NaN-free: unfilled gaps
// are reported as nil.
func fitted(ds *DataSeries) []any {
	out := make([]any, len(ds.Data))
	for i, d := range ds.Data {
		if v := d.YValue(); v.Valid {
			out[i] = v.Value
		}
	}
	return out
}

func TestFit(t *testing.T) {
	tests := []struct {
		name string
		cfg  spec.Fit
		want []any
	}{
		{
			name: "carry",
			cfg:  spec.Fit{Type: spec.FitCarry},
			want: []any{nil, 3.0, 3.0, 5.0, 5.0, 5.0, 8.0, 8.0, 10.0, 10.0, 12.0, 12.0},
		},
		{
			name: "lookahead",
			cfg:  spec.Fit{Type: spec.FitLookahead},
			want: []any{3.0, 3.0, 5.0, 5.0, 8.0, 8.0, 8.0, 10.0, 10.0, 12.0, 12.0, nil},
		},
		{
			name: "nearest",
			cfg:  spec.Fit{Type: spec.FitNearest},
			want: []any{3.0, 3.0, 5.0, 5.0, 5.0, 8.0, 8.0, 10.0, 10.0, 12.0, 12.0, 12.0},
		},
		{
			name: "average",
			cfg:  spec.Fit{Type: spec.FitAverage},
			want: []any{nil, 3.0, 4.0, 5.0, 6.5, 6.5, 8.0, 9.0, 10.0, 11.0, 12.0, nil},
		},
		{
			name: "linear",
			cfg:  spec.Fit{Type: spec.FitLinear},
			want: []any{nil, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0, 11.0, 12.0, nil},
		},
		{
			name: "linear with nearest ends",
			cfg:  spec.Fit{Type: spec.FitLinear, EndValue: spec.EndNearest},
			want: []any{3.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0, 11.0, 12.0, 12.0},
		},
		{
			name: "carry with numeric end",
			cfg:  spec.Fit{Type: spec.FitCarry, EndValue: spec.EndNumber(-1)},
			want: []any{-1.0, 3.0, 3.0, 5.0, 5.0, 5.0, 8.0, 8.0, 10.0, 10.0, 12.0, 12.0},
		},
		{
			name: "zero",
			cfg:  spec.Fit{Type: spec.FitZero},
			want: []any{0.0, 3.0, 0.0, 5.0, 0.0, 0.0, 8.0, 0.0, 10.0, 0.0, 12.0, 0.0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := gappy()
			out := Fit(in, tt.cfg, scale.Linear, false)
			assert.Equal(t, tt.want, fitted(out))
			for i, d := range out.Data {
				assert.Equal(t, in.Data[i].Y1, d.Y1, "own y1 is never overwritten")
			}
		})
	}
}

func TestFitNoneReturnsInput(t *testing.T) {
	in := gappy()
	assert.Same(t, in, Fit(in, spec.Fit{}, scale.Linear, false))
	// Explicit without a value behaves like none.
	assert.Same(t, in, Fit(in, spec.Fit{Type: spec.FitExplicit}, scale.Linear, false))
}

func TestFitExplicit(t *testing.T) {
	v := 7.0
	out := Fit(gappy(), spec.Fit{Type: spec.FitExplicit, Value: &v}, scale.Linear, false)
	assert.Equal(t, Num(7), out.Data[0].Filled.Y1)
	assert.Equal(t, Null, out.Data[1].Filled.Y1)
	assert.True(t, out.Data[0].IsFilled())
	assert.False(t, out.Data[1].IsFilled())
}

func TestFitSortsUnsortedData(t *testing.T) {
	ds := seriesOf("s", [2]any{4, 8.0}, [2]any{0, 0.0}, [2]any{2, nil})
	out := Fit(ds, spec.Fit{Type: spec.FitLinear}, scale.Linear, false)
	require.Len(t, out.Data, 3)
	assert.Equal(t, scale.Numbers(0, 2, 4), []scale.Value{out.Data[0].X, out.Data[1].X, out.Data[2].X})
	assert.Equal(t, Num(4), out.Data[1].Filled.Y1)
}

func TestFitOrdinalUsesPositions(t *testing.T) {
	ds := &DataSeries{Data: []Datum{
		{X: scale.Number(100), Y1: Num(0), InitialY1: Num(0)},
		{X: scale.Number(1)},
		{X: scale.Number(50), Y1: Num(10), InitialY1: Num(10)},
	}}
	out := Fit(ds, spec.Fit{Type: spec.FitLinear}, scale.Ordinal, false)
	// Order is preserved and the gap sits halfway by position.
	assert.Equal(t, scale.Number(1), out.Data[1].X)
	assert.Equal(t, Num(5), out.Data[1].Filled.Y1)
}

func TestFitValue(t *testing.T) {
	prev := &Neighbor{Datum: Datum{X: scale.Number(2), Y1: Num(11)}, Index: 0}
	next := &Neighbor{Datum: Datum{X: scale.Number(6), Y1: Num(19)}, Index: 4}

	tests := []struct {
		x    float64
		want float64
	}{
		{3, 13},
		{4, 15},
		{5, 17},
	}
	for _, tt := range tests {
		got := FitValue(Datum{X: scale.Number(tt.x)}, int(tt.x)-2, prev, next, spec.FitLinear, spec.EndValue{})
		assert.Equal(t, Num(tt.want), got.Filled.Y1, "x=%v", tt.x)
	}

	// Category x values fall back to positions.
	cprev := &Neighbor{Datum: Datum{X: scale.Category("a"), Y1: Num(10)}, Index: 1}
	cnext := &Neighbor{Datum: Datum{X: scale.Category("z"), Y1: Num(20)}, Index: 9}
	got := FitValue(Datum{X: scale.Category("d")}, 3, cprev, cnext, spec.FitNearest, spec.EndValue{})
	assert.Equal(t, Num(10), got.Filled.Y1)
	got = FitValue(Datum{X: scale.Category("y")}, 8, cprev, cnext, spec.FitNearest, spec.EndValue{})
	assert.Equal(t, Num(20), got.Filled.Y1)

	// Equidistant neighbours resolve to the next one.
	got = FitValue(Datum{X: scale.Number(4)}, 2, prev, next, spec.FitNearest, spec.EndValue{})
	assert.Equal(t, Num(19), got.Filled.Y1)

	// Without neighbours nothing is filled.
	got = FitValue(Datum{X: scale.Number(4)}, 0, nil, nil, spec.FitLinear, spec.EndValue{})
	assert.False(t, got.Filled.Y1.Valid)
}
