package geometry

import (
	"math"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/spec"
)

// subpixelBuffer lifts y1 when it lands within half a pixel of y0, so a
// zero height band is still drawn by canvas renderers.
const subpixelBuffer = 0.5

// yMapper maps datum values to y pixels. Every method returns NaN when a
// value cannot be mapped.
type yMapper struct {
	y        *scale.Continuous
	x        scale.Scale
	log      bool
	polarity int
	baseline float64
}

func newYMapper(y *scale.Continuous, x scale.Scale) yMapper {
	domain := y.NumericDomain()
	return yMapper{
		y:        y,
		x:        x,
		log:      y.Type() == scale.Log,
		polarity: scale.DomainPolarity(domain),
		baseline: scale.LogBaseline(domain),
	}
}

func (m yMapper) scale(v float64) float64 {
	px, ok := m.y.ScaleFloat(v)
	if !ok {
		return math.NaN()
	}
	return px
}

// wrongPolarity reports whether v cannot be drawn on a log scale.
func (m yMapper) wrongPolarity(v float64) bool {
	return m.log && sign(v) != m.polarity
}

// y0 maps the baseline of d: 0 on linear scales, the log baseline on log
// scales when y0 is null or has the wrong sign.
func (m yMapper) y0(d series.Datum) float64 {
	if m.log && (!d.Y0.Valid || m.wrongPolarity(d.Y0.Value)) {
		return m.scale(m.baseline)
	}
	return m.scale(d.Y0.Or(0))
}

// y1 maps the top of d, falling back to its fill value.
func (m yMapper) y1(d series.Datum) float64 {
	v := d.YValue()
	if !v.Valid {
		return math.NaN()
	}
	y1, y0 := m.scale(v.Value), m.y0(d)
	if math.Abs(y1-y0) <= subpixelBuffer {
		y1 -= subpixelBuffer
	}
	return y1
}

// defined reports whether v of d can be drawn.
func (m yMapper) defined(d series.Datum, v series.Number) bool {
	return v.Valid && !m.wrongPolarity(v.Value) && m.x.IsValueInDomain(d.X)
}

// isOrphan reports whether the datum at i has no defined neighbour.
func (m yMapper) isOrphan(data []series.Datum, i int) bool {
	prevMissing := i == 0 || !m.defined(data[i-1], data[i-1].YValue())
	nextMissing := i == len(data)-1 || !m.defined(data[i+1], data[i+1].YValue())
	switch i {
	case 0:
		return nextMissing
	case len(data) - 1:
		return prevMissing
	}
	return prevMissing && nextMissing
}

// datumYValue returns the y value a point or bar reports: the initial
// value, or the slice height in percentage stacks.
func datumYValue(d series.Datum, y0 bool, banded bool, mode spec.StackMode) series.Number {
	if banded {
		if y0 {
			return d.InitialY0
		}
		return d.InitialY1
	}
	if mode == spec.StackModePercentage {
		if !d.Y1.Valid || !d.InitialY1.Valid {
			return series.Null
		}
		return series.Num(d.Y1.Value - d.Y0.Or(0))
	}
	return d.InitialY1
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func scaleNumber(n series.Number) scale.Value {
	if !n.Valid {
		return scale.Value{}
	}
	return scale.Number(n.Value)
}
