package ggchart

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart/diag"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/spec"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#fff", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"#f00f", gg.RGBA{R: 1, A: 1}},
		{"#00ff00", gg.RGBA{G: 1, A: 1}},
		{"#0000ff00", gg.RGBA{B: 1}},
		{" #000 ", gg.RGBA{A: 1}},
		{"white", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"Red", gg.RGBA{R: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "notacolor"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, "input %q", in)
	}
}

func TestSeriesColors(t *testing.T) {
	palette := []gg.RGBA{{R: 1, A: 1}, {G: 1, A: 1}}
	mk := func(key, color string, insert int) *series.DataSeries {
		ds := &series.DataSeries{
			Spec:        &spec.Line{Base: spec.Base{ID: key, Color: color}},
			InsertIndex: insert,
		}
		ds.Key = key
		return ds
	}
	var c diag.Collector
	got := seriesColors([]*series.DataSeries{
		mk("a", "", 0),
		mk("b", "blue", 1),
		mk("c", "", 2),
		mk("d", "#xyz", 3),
	}, palette, &c)

	assert.Equal(t, palette[0], got["a"])
	assert.Equal(t, gg.RGBA{B: 1, A: 1}, got["b"])
	assert.Equal(t, palette[0], got["c"])
	assert.Equal(t, palette[1], got["d"])
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "colors", c.Warnings()[0].Source)
}
