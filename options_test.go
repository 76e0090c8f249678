package ggchart

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart/diag"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.Nil(t, o.sink)
	assert.Nil(t, o.theme)
	assert.Empty(t, o.deselected)
	assert.Equal(t, 1, o.workers)
}

func TestOptions(t *testing.T) {
	var c diag.Collector
	theme := DefaultTheme()
	theme.BarsPadding = 0.5

	o := defaultOptions()
	for _, opt := range []Option{
		WithDiagnostics(&c),
		WithDeselected("a"),
		WithDeselected("b", "c"),
		WithTheme(theme),
		WithWorkers(4),
	} {
		opt(&o)
	}
	assert.Same(t, &c, o.sink)
	assert.Equal(t, []string{"a", "b", "c"}, o.deselected)
	require.NotNil(t, o.theme)
	assert.Equal(t, 0.5, o.theme.BarsPadding)
	assert.Equal(t, 4, o.workers)
}

func TestThemeBarsPadding(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, 0.25, th.barsPadding(false))
	assert.Equal(t, 0.05, th.barsPadding(true))
}

func TestThemeStyle(t *testing.T) {
	ratio := 0.5
	th := DefaultTheme()
	th.BarWidthRatio = &ratio
	s := th.style()
	assert.Equal(t, 3.0, s.PointRadius)
	assert.Equal(t, 2.0, s.PointStrokeWidth)
	assert.Equal(t, 50.0, s.MarkSizeRatio)
	assert.Same(t, &ratio, s.Bar.WidthRatio)
	assert.Nil(t, s.Bar.WidthPixel)
}

func TestThemePalette(t *testing.T) {
	var c diag.Collector
	th := Theme{Palette: []string{"red", "nope", "#00f"}}
	p := th.palette(&c)
	require.Len(t, p, 2)
	assert.Equal(t, gg.RGBA{R: 1, A: 1}, p[0])
	assert.Equal(t, gg.RGBA{B: 1, A: 1}, p[1])
	assert.Equal(t, 1, c.Len())
}

func TestThemePaletteFallback(t *testing.T) {
	p := Theme{}.palette(nil)
	require.Len(t, p, len(DefaultPalette))
	want, err := ParseColor(DefaultPalette[0])
	require.NoError(t, err)
	assert.Equal(t, want, p[0])
}
