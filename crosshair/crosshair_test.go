package crosshair

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

var (
	chart   = gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(120, 100)}
	xValues = scale.Numbers(0, 1, 2)
)

func lineScale() scale.Scale {
	return scale.ComputeXScale(scale.XConfig{
		Type: scale.Linear, Min: 0, Max: 2, MinInterval: 1,
		Range: [2]float64{0, 120}, TotalBarsInCluster: 1,
	})
}

func barScale(totalBars int, padding float64) scale.Scale {
	return scale.ComputeXScale(scale.XConfig{
		Type: scale.Linear, Min: 0, Max: 2, MinInterval: 1, IsBandScale: true,
		Range: [2]float64{0, 120}, TotalBarsInCluster: totalBars, BarsPadding: padding,
	})
}

func rect(x0, y0, x1, y1 float64) gg.Rect {
	return gg.Rect{Min: gg.Pt(x0, y0), Max: gg.Pt(x1, y1)}
}

func TestSnapPosition(t *testing.T) {
	tests := []struct {
		name      string
		s         scale.Scale
		totalBars int
		v         float64
		want      Snap
	}{
		{"line start", lineScale(), 1, 0, Snap{Position: 0, Band: 1}},
		{"line middle", lineScale(), 1, 1, Snap{Position: 60, Band: 1}},
		{"line end", lineScale(), 2, 2, Snap{Position: 120, Band: 1}},
		{"bar start", barScale(1, 0), 1, 0, Snap{Position: 0, Band: 40}},
		{"bar middle", barScale(1, 0), 1, 1, Snap{Position: 40, Band: 40}},
		{"bar end", barScale(1, 0), 1, 2, Snap{Position: 80, Band: 40}},
		{"clustered bars", barScale(2, 0), 2, 1, Snap{Position: 40, Band: 40}},
		{"padded bars", barScale(1, 0.5), 1, 1, Snap{Position: 40, Band: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SnapPosition(scale.Number(tt.v), tt.s, tt.totalBars)
			require.True(t, ok)
			assert.InDelta(t, tt.want.Position, got.Position, 1e-9)
			assert.InDelta(t, tt.want.Band, got.Band, 1e-9)
		})
	}

	_, ok := SnapPosition(scale.Category("a"), lineScale(), 1)
	assert.False(t, ok)
}

func TestOrient(t *testing.T) {
	p := gg.Pt(30, 20)
	assert.Equal(t, gg.Pt(30, 20), Orient(p, chart, 0))
	assert.Equal(t, gg.Pt(90, 20), Orient(p, chart, 180))
	assert.Equal(t, gg.Pt(20, 30), Orient(p, chart, 90))
	assert.Equal(t, gg.Pt(80, 30), Orient(p, chart, -90))
}

func TestProject(t *testing.T) {
	c := rect(10, 5, 130, 105)
	assert.Equal(t, gg.Pt(40, 15), Project(gg.Pt(50, 20), c))
}

func TestCursorLine(t *testing.T) {
	line := CursorLine(0, chart, gg.Pt(30, 20))
	require.NotNil(t, line)
	assert.Equal(t, rect(0, 20, 120, 20), *line)

	line = CursorLine(90, chart, gg.Pt(30, 20))
	require.NotNil(t, line)
	assert.Equal(t, rect(30, 0, 30, 100), *line)

	assert.Nil(t, CursorLine(0, chart, gg.Pt(-1, 20)))
	assert.Nil(t, CursorLine(0, chart, gg.Pt(30, 101)))
}

func TestCursorBandOutside(t *testing.T) {
	for _, cursor := range []gg.Point{gg.Pt(200, 0), gg.Pt(0, 200), gg.Pt(-1, 0), gg.Pt(0, -1)} {
		assert.Nil(t, CursorBand(0, chart, cursor, lineScale(), xValues, BandOptions{TotalBars: 1}), "cursor %v", cursor)
	}
	assert.Nil(t, CursorBand(90, chart, gg.Pt(0, 200), lineScale(), xValues, BandOptions{TotalBars: 1}))
}

func TestCursorBandLine(t *testing.T) {
	tests := []struct {
		name     string
		rotation spec.Rotation
		snap     bool
		cursor   gg.Point
		want     gg.Rect
	}{
		{"origin", 0, false, gg.Pt(0, 0), rect(0, 0, 1, 100)},
		{"y ignored", 0, false, gg.Pt(0, 45), rect(0, 0, 1, 100)},
		{"follows pointer", 0, false, gg.Pt(40, 0), rect(40, 0, 41, 100)},
		{"snap down", 0, true, gg.Pt(20, 0), rect(0, 0, 1, 100)},
		{"snap up", 0, true, gg.Pt(40, 0), rect(60, 0, 61, 100)},
		{"snap end", 0, true, gg.Pt(95, 0), rect(120, 0, 121, 100)},
		{"180 origin", 180, false, gg.Pt(0, 0), rect(120, 0, 121, 100)},
		{"180 follows pointer", 180, false, gg.Pt(90, 0), rect(30, 0, 31, 100)},
		{"180 snap", 180, true, gg.Pt(40, 0), rect(60, 0, 61, 100)},
		{"180 snap end", 180, true, gg.Pt(95, 0), rect(0, 0, 1, 100)},
		{"90 follows pointer", 90, false, gg.Pt(45, 0), rect(0, 45, 120, 46)},
		{"90 snap", 90, true, gg.Pt(45, 0), rect(0, 60, 120, 61)},
		{"-90 origin", -90, false, gg.Pt(0, 0), rect(0, 100, 120, 101)},
		{"-90 follows pointer", -90, false, gg.Pt(45, 0), rect(0, 55, 120, 56)},
		{"-90 snap", -90, true, gg.Pt(45, 0), rect(0, 40, 120, 41)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CursorBand(tt.rotation, chart, tt.cursor, lineScale(), xValues, BandOptions{Snap: tt.snap, TotalBars: 1})
			require.NotNil(t, got)
			assert.InDelta(t, tt.want.Min.X, got.Min.X, 1e-9)
			assert.InDelta(t, tt.want.Min.Y, got.Min.Y, 1e-9)
			assert.InDelta(t, tt.want.Max.X, got.Max.X, 1e-9)
			assert.InDelta(t, tt.want.Max.Y, got.Max.Y, 1e-9)
		})
	}
}

func TestCursorBandBars(t *testing.T) {
	tests := []struct {
		name     string
		rotation spec.Rotation
		cursor   gg.Point
		want     gg.Rect
	}{
		{"origin", 0, gg.Pt(0, 0), rect(0, 0, 40, 100)},
		{"y ignored", 0, gg.Pt(0, 45), rect(0, 0, 40, 100)},
		{"end of first band", 0, gg.Pt(39, 0), rect(0, 0, 40, 100)},
		{"start of second band", 0, gg.Pt(40, 0), rect(40, 0, 80, 100)},
		{"last band", 0, gg.Pt(90, 0), rect(80, 0, 120, 100)},
		{"180 origin", 180, gg.Pt(0, 0), rect(80, 0, 120, 100)},
		{"180 second band", 180, gg.Pt(40, 0), rect(40, 0, 80, 100)},
		{"180 last band", 180, gg.Pt(90, 0), rect(0, 0, 40, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CursorBand(tt.rotation, chart, tt.cursor, barScale(1, 0), xValues, BandOptions{Snap: true, TotalBars: 1})
			require.NotNil(t, got)
			assert.InDelta(t, tt.want.Min.X, got.Min.X, 1e-9)
			assert.InDelta(t, tt.want.Min.Y, got.Min.Y, 1e-9)
			assert.InDelta(t, tt.want.Max.X, got.Max.X, 1e-9)
			assert.InDelta(t, tt.want.Max.Y, got.Max.Y, 1e-9)
		})
	}
}

func TestCursorBandOutsideBandwidth(t *testing.T) {
	got := CursorBand(0, chart, gg.Pt(90, 0), barScale(1, 0), scale.Numbers(0, 1), BandOptions{Snap: true, TotalBars: 1})
	assert.Nil(t, got)
}

func TestClip(t *testing.T) {
	start, size := clip(100, 40, 0, 120)
	assert.Equal(t, 100.0, start)
	assert.Equal(t, 20.0, size)

	start, size = clip(-10, 40, 0, 120)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 30.0, size)

	start, size = clip(119.5, 1, 0, 120)
	assert.Equal(t, 119.5, start)
	assert.Equal(t, 1.0, size)
}

func TestLocate(t *testing.T) {
	c := rect(10, 5, 130, 105)
	pos, ok := Locate(gg.Pt(50, 5), c, 0, lineScale(), xValues, BandOptions{Snap: true, TotalBars: 1})
	require.True(t, ok)
	assert.Equal(t, scale.Number(1), pos.Value)
	assert.Equal(t, rect(70, 5, 71, 105), pos.Band)
	assert.Equal(t, rect(10, 5, 130, 5), pos.Line)

	_, ok = Locate(gg.Pt(5, 5), c, 0, lineScale(), xValues, BandOptions{})
	assert.False(t, ok)
}
