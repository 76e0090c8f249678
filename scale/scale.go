// Package scale maps domain values onto pixel ranges.
//
// Two families are provided: [Continuous] for linear, logarithmic, square
// root and time domains, and [Band] for ordinal domains. Both satisfy the
// read-only [Scale] interface consumed by the geometry builders and the
// crosshair positioner. Continuous normalization, nice bounds and tick
// generation are delegated to github.com/aclements/go-moremath/scale.
//
// A continuous scale can also carry a bandwidth: bar series on a continuous
// x axis divide each minInterval slot into one band per bar in a cluster.
package scale

import "math"

// Inverted is the result of projecting a pixel back onto a domain.
type Inverted struct {
	Value Value
	// WithinBandwidth is false when the pixel falls between data points
	// further away than one minInterval.
	WithinBandwidth bool
}

// Scale is a read-only mapping between a domain and a pixel range.
type Scale interface {
	// Type returns the scale type.
	Type() Type

	// Scale maps v to pixels. It reports false when v cannot be mapped.
	Scale(v Value) (float64, bool)

	// Invert maps a pixel back to a domain value.
	Invert(px float64) Value

	// InvertWithStep maps a pixel to the closest value in data, which
	// must be sorted in domain order.
	InvertWithStep(px float64, data []Value) (Inverted, bool)

	// Bandwidth is the pixel width of a single bar slot, 0 for pure
	// continuous scales.
	Bandwidth() float64

	// BandwidthPadding is the pixel padding reserved around bar slots.
	BandwidthPadding() float64

	// BarsPadding is the ratio of a band left empty between clusters.
	BarsPadding() float64

	// Step is the pixel distance between two consecutive bands.
	Step() float64

	// MinInterval is the smallest domain gap, 0 for ordinal scales.
	MinInterval() float64

	// TotalBarsInCluster is the number of bar slots inside one band.
	TotalBarsInCluster() int

	// Domain returns the domain: [min, max] for continuous scales or the
	// ordered categories for band scales.
	Domain() []Value

	// Range returns the pixel range.
	Range() [2]float64

	// IsInverted reports whether the domain runs from high to low.
	IsInverted() bool

	// IsValueInDomain reports whether v lies inside the domain.
	IsValueInDomain(v Value) bool

	// IsSingleValue reports whether the domain collapses to one value.
	IsSingleValue() bool

	// Ticks returns the tick values for axes.
	Ticks() []Value
}

// DomainPolarity returns 1 when both bounds are non-negative, -1 when both
// are non-positive and 0 when the domain crosses zero.
func DomainPolarity(domain [2]float64) int {
	lo, hi := domain[0], domain[1]
	switch {
	case lo >= 0 && hi >= 0:
		return 1
	case lo <= 0 && hi <= 0:
		return -1
	}
	return 0
}

// LogBaseline returns the value used in place of a missing or wrong-signed
// baseline on a logarithmic domain.
func LogBaseline(domain [2]float64) float64 {
	polarity := DomainPolarity(domain)
	var base float64
	if polarity >= 0 {
		base = math.Min(domain[0], domain[1])
	} else {
		base = math.Max(domain[0], domain[1])
	}
	if base != 0 {
		return base
	}
	if polarity >= 0 {
		return 1
	}
	return -1
}

// IsLog reports whether s is a logarithmic scale.
func IsLog(s Scale) bool {
	return s != nil && s.Type() == Log
}

// ContinuousDomain returns the numeric [min, max] of a continuous scale.
// Band scales return NaN bounds.
func ContinuousDomain(s Scale) [2]float64 {
	d := s.Domain()
	if len(d) < 2 || !d[0].IsNumber() {
		return [2]float64{math.NaN(), math.NaN()}
	}
	return [2]float64{d[0].Float(), d[len(d)-1].Float()}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
