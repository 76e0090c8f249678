package scale

import (
	"math"
	"slices"

	mmscale "github.com/aclements/go-moremath/scale"
)

// normalizer maps an ascending domain onto [0, 1] and back.
type normalizer interface {
	Map(x float64) float64
	Unmap(t float64) float64
}

// tickSource produces major ticks for an ascending domain.
type tickSource interface {
	ticks(o mmscale.TickOptions) []float64
}

// newNormalizer builds the normalizer for lo <= hi.
func newNormalizer(t Type, lo, hi float64, logBase int) (normalizer, tickSource) {
	lin := &mmscale.Linear{Min: lo, Max: hi}
	linTicks := moremathTicks{lin}
	switch t {
	case Log:
		if n, ts, ok := newLogNormalizer(lo, hi, logBase); ok {
			return n, ts
		}
	case Sqrt:
		return sqrtNorm{lo: signedSqrt(lo), hi: signedSqrt(hi)}, linTicks
	}
	return lin, linTicks
}

func newLogNormalizer(lo, hi float64, base int) (normalizer, tickSource, bool) {
	if base < 2 {
		base = 10
	}
	negative := hi < 0
	a, b := lo, hi
	if negative {
		a, b = -hi, -lo
	}
	if a <= 0 || a == b {
		return nil, nil, false
	}
	ls, err := mmscale.NewLog(a, b, base)
	if err != nil {
		return nil, nil, false
	}
	if negative {
		return reflected{&ls}, reflectedTicks{moremathTicks{&ls}}, true
	}
	return &ls, moremathTicks{&ls}, true
}

type tickMapper interface {
	mmscale.Ticker
	Map(x float64) float64
}

type moremathTicks struct {
	t tickMapper
}

func (m moremathTicks) ticks(o mmscale.TickOptions) []float64 {
	level, ok := o.FindLevel(m.t, 0)
	if !ok {
		return nil
	}
	major, _ := m.t.TicksAtLevel(level).([]float64)
	return major
}

// reflected mirrors a normalizer over a negative domain.
type reflected struct {
	n normalizer
}

func (r reflected) Map(x float64) float64   { return 1 - r.n.Map(-x) }
func (r reflected) Unmap(t float64) float64 { return -r.n.Unmap(1 - t) }

type reflectedTicks struct {
	src tickSource
}

func (r reflectedTicks) ticks(o mmscale.TickOptions) []float64 {
	major := r.src.ticks(o)
	out := make([]float64, len(major))
	for i, t := range major {
		out[i] = -t
	}
	slices.Sort(out)
	return out
}

// sqrtNorm holds signed square roots of the domain bounds.
type sqrtNorm struct {
	lo, hi float64
}

func (s sqrtNorm) Map(x float64) float64 {
	return (signedSqrt(x) - s.lo) / (s.hi - s.lo)
}

func (s sqrtNorm) Unmap(t float64) float64 {
	y := s.lo + t*(s.hi-s.lo)
	return math.Copysign(y*y, y)
}

func signedSqrt(x float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(x)), x)
}
