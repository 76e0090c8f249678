package ggchart

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"

	"github.com/gogpu/ggchart/spec"
)

func TestChartTransform(t *testing.T) {
	area := gg.Rect{Min: gg.Pt(10, 20), Max: gg.Pt(110, 70)}
	tests := []struct {
		rotation spec.Rotation
		in, want gg.Point
	}{
		{0, gg.Pt(0, 0), gg.Pt(10, 20)},
		{0, gg.Pt(100, 50), gg.Pt(110, 70)},
		{180, gg.Pt(0, 0), gg.Pt(110, 70)},
		{180, gg.Pt(100, 50), gg.Pt(10, 20)},
		// vertical charts are 50 wide and 100 tall in chart coordinates
		{90, gg.Pt(0, 0), gg.Pt(110, 20)},
		{90, gg.Pt(50, 0), gg.Pt(110, 70)},
		{90, gg.Pt(0, 100), gg.Pt(10, 20)},
		{-90, gg.Pt(0, 0), gg.Pt(10, 70)},
		{-90, gg.Pt(50, 0), gg.Pt(10, 20)},
		{-90, gg.Pt(0, 100), gg.Pt(110, 70)},
	}
	for _, tt := range tests {
		got := ChartTransform(area, tt.rotation).TransformPoint(tt.in)
		assert.InDelta(t, tt.want.X, got.X, 1e-9, "rotation %d point %v", tt.rotation, tt.in)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-9, "rotation %d point %v", tt.rotation, tt.in)
	}
}

func TestChartSize(t *testing.T) {
	area := gg.Rect{Min: gg.Pt(10, 20), Max: gg.Pt(110, 70)}
	w, h := ChartSize(area, 0)
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)
	w, h = ChartSize(area, -90)
	assert.Equal(t, 50.0, w)
	assert.Equal(t, 100.0, h)
}
