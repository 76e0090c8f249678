package geometry

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/spec"
)

// cardinalK is the control point factor of a cardinal spline with zero
// tension.
const cardinalK = 1.0 / 6

// pen starts a segment with a move, or with a line when the segment
// continues the previous one, as the bottom edge of an area does.
type pen struct {
	path    *gg.Path
	connect bool
}

func (p pen) start(pt gg.Point) {
	if p.connect {
		p.path.LineTo(pt.X, pt.Y)
		return
	}
	p.path.MoveTo(pt.X, pt.Y)
}

// drawCurve appends pts to path interpolated by c. Reversed segments flip
// the step position so an area's bottom edge mirrors its top edge.
func drawCurve(path *gg.Path, c spec.Curve, pts []gg.Point, connect, reversed bool) {
	if len(pts) == 0 {
		return
	}
	p := pen{path: path, connect: connect}
	switch c {
	case spec.CurveStep:
		drawStep(p, pts, 0.5)
	case spec.CurveStepBefore:
		drawStep(p, pts, stepT(0, reversed))
	case spec.CurveStepAfter:
		drawStep(p, pts, stepT(1, reversed))
	case spec.CurveBasis:
		drawBasis(p, pts)
	case spec.CurveCardinal:
		drawCardinal(p, pts)
	case spec.CurveNatural:
		drawNatural(p, pts)
	case spec.CurveMonotoneX:
		drawMonotoneX(p, pts)
	default:
		drawLinear(p, pts)
	}
}

func stepT(t float64, reversed bool) float64 {
	if reversed {
		return 1 - t
	}
	return t
}

func drawLinear(p pen, pts []gg.Point) {
	p.start(pts[0])
	for _, pt := range pts[1:] {
		p.path.LineTo(pt.X, pt.Y)
	}
}

// drawStep places the vertical step at t between consecutive points:
// 0 before the next point is reached, 1 on it.
func drawStep(p pen, pts []gg.Point, t float64) {
	p.start(pts[0])
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		if t <= 0 {
			p.path.LineTo(prev.X, cur.Y)
			p.path.LineTo(cur.X, cur.Y)
			continue
		}
		x := prev.X*(1-t) + cur.X*t
		p.path.LineTo(x, prev.Y)
		p.path.LineTo(x, cur.Y)
	}
	if last := pts[len(pts)-1]; t > 0 && t < 1 && len(pts) > 1 {
		p.path.LineTo(last.X, last.Y)
	}
}

// drawBasis draws a cubic B-spline through the end points.
func drawBasis(p pen, pts []gg.Point) {
	var p0, p1 gg.Point
	for i, pt := range pts {
		switch i {
		case 0:
			p.start(pt)
		case 1:
		case 2:
			p.path.LineTo((5*p0.X+p1.X)/6, (5*p0.Y+p1.Y)/6)
			basisPoint(p.path, p0, p1, pt)
		default:
			basisPoint(p.path, p0, p1, pt)
		}
		p0, p1 = p1, pt
	}
	switch {
	case len(pts) >= 3:
		basisPoint(p.path, p0, p1, p1)
		p.path.LineTo(p1.X, p1.Y)
	case len(pts) == 2:
		p.path.LineTo(p1.X, p1.Y)
	}
}

func basisPoint(path *gg.Path, p0, p1, pt gg.Point) {
	path.CubicTo(
		(2*p0.X+p1.X)/3, (2*p0.Y+p1.Y)/3,
		(p0.X+2*p1.X)/3, (p0.Y+2*p1.Y)/3,
		(p0.X+4*p1.X+pt.X)/6, (p0.Y+4*p1.Y+pt.Y)/6,
	)
}

// drawCardinal draws a cardinal spline with zero tension. The first and
// last tangents mirror their neighbours.
func drawCardinal(p pen, pts []gg.Point) {
	var p0, p1, p2 gg.Point
	for i, pt := range pts {
		switch i {
		case 0:
			p.start(pt)
		case 1:
			p1 = pt
		default:
			cardinalPoint(p.path, p0, p1, p2, pt)
		}
		p0, p1, p2 = p1, p2, pt
	}
	switch {
	case len(pts) >= 3:
		cardinalPoint(p.path, p0, p1, p2, p1)
	case len(pts) == 2:
		p.path.LineTo(p2.X, p2.Y)
	}
}

func cardinalPoint(path *gg.Path, p0, p1, p2, pt gg.Point) {
	path.CubicTo(
		p1.X+cardinalK*(p2.X-p0.X), p1.Y+cardinalK*(p2.Y-p0.Y),
		p2.X+cardinalK*(p1.X-pt.X), p2.Y+cardinalK*(p1.Y-pt.Y),
		p2.X, p2.Y,
	)
}

// drawNatural draws a natural cubic spline, whose second derivative is
// zero at both ends.
func drawNatural(p pen, pts []gg.Point) {
	p.start(pts[0])
	n := len(pts)
	switch {
	case n == 2:
		p.path.LineTo(pts[1].X, pts[1].Y)
		return
	case n < 2:
		return
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	ax, bx := naturalControls(xs)
	ay, by := naturalControls(ys)
	for i := 1; i < n; i++ {
		p.path.CubicTo(ax[i-1], ay[i-1], bx[i-1], by[i-1], xs[i], ys[i])
	}
}

// naturalControls solves the tridiagonal system of a natural spline and
// returns the first and second control coordinates of every segment.
func naturalControls(x []float64) ([]float64, []float64) {
	n := len(x) - 1
	a := make([]float64, n)
	b := make([]float64, n)
	r := make([]float64, n)
	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}

// monotone holds the state of a monotone cubic interpolation along x,
// which never overshoots the data.
type monotone struct {
	p       pen
	x0, y0  float64
	x1, y1  float64
	t0      float64
	visited int
}

func drawMonotoneX(p pen, pts []gg.Point) {
	m := monotone{p: p, x0: math.NaN(), y0: math.NaN(), x1: math.NaN(), y1: math.NaN(), t0: math.NaN()}
	for _, pt := range pts {
		m.point(pt)
	}
	switch m.visited {
	case 2:
		p.path.LineTo(m.x1, m.y1)
	case 3:
		m.segment(m.t0, m.slope2(m.t0))
	}
}

func (m *monotone) point(pt gg.Point) {
	x, y := pt.X, pt.Y
	if x == m.x1 && y == m.y1 {
		return
	}
	t1 := math.NaN()
	switch m.visited {
	case 0:
		m.visited = 1
		m.p.start(pt)
	case 1:
		m.visited = 2
	case 2:
		m.visited = 3
		t1 = m.slope3(x, y)
		m.segment(m.slope2(t1), t1)
	default:
		t1 = m.slope3(x, y)
		m.segment(m.t0, t1)
	}
	m.x0, m.x1 = m.x1, x
	m.y0, m.y1 = m.y1, y
	m.t0 = t1
}

func (m *monotone) segment(t0, t1 float64) {
	dx := (m.x1 - m.x0) / 3
	m.p.path.CubicTo(m.x0+dx, m.y0+dx*t0, m.x1-dx, m.y1-dx*t1, m.x1, m.y1)
}

// slope3 returns the tangent at the middle of three points.
func (m *monotone) slope3(x2, y2 float64) float64 {
	h0, h1 := m.x1-m.x0, x2-m.x1
	s0 := (m.y1 - m.y0) / signedDenominator(h0, h1)
	s1 := (y2 - m.y1) / signedDenominator(h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	v := (monoSign(s0) + monoSign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// slope2 returns the end tangent from a one-sided difference.
func (m *monotone) slope2(t float64) float64 {
	h := m.x1 - m.x0
	if h == 0 {
		return t
	}
	return (3*(m.y1-m.y0)/h - t) / 2
}

// signedDenominator returns h, or a zero carrying the sign of other when h
// is zero.
func signedDenominator(h, other float64) float64 {
	if h != 0 {
		return h
	}
	if other < 0 {
		return math.Copysign(0, -1)
	}
	return 0
}

func monoSign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
