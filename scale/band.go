package scale

import (
	"math"
	"slices"
)

// Band maps an ordered list of categories onto equally sized bands.
// Inner padding between bands equals BarsPadding and outer padding is half
// of it, so the first band starts at step*padding/2.
type Band struct {
	domain           []Value
	index            map[Value]int
	rng              [2]float64
	step             float64
	start            float64
	bandwidth        float64
	origBandwidth    float64
	bandwidthPadding float64
	barsPadding      float64
	totalBars        int
}

var _ Scale = (*Band)(nil)

// NewBand creates a band scale. When overrideBandwidth is positive it
// replaces the computed bandwidth before padding is applied.
func NewBand(domain []Value, rng [2]float64, overrideBandwidth, barsPadding float64, totalBars int) *Band {
	padding := clamp(barsPadding, 0, 1)
	if totalBars < 1 {
		totalBars = 1
	}
	b := &Band{
		domain:      slices.Clone(domain),
		index:       make(map[Value]int, len(domain)),
		rng:         rng,
		barsPadding: padding,
		totalBars:   totalBars,
	}
	for i, v := range b.domain {
		if _, ok := b.index[v]; !ok {
			b.index[v] = i
		}
	}

	n := float64(len(b.domain))
	width := math.Abs(rng[1] - rng[0])
	if n > 0 {
		b.step = width / math.Max(1, n)
		b.start = math.Min(rng[0], rng[1]) + (width-b.step*(n-padding))/2
		b.origBandwidth = b.step * (1 - padding)
	}
	b.bandwidth = b.origBandwidth
	if overrideBandwidth > 0 {
		b.bandwidth = overrideBandwidth * (1 - padding)
	}
	b.bandwidthPadding = b.bandwidth
	return b
}

// Type implements Scale.
func (b *Band) Type() Type { return Ordinal }

// Scale implements Scale.
func (b *Band) Scale(v Value) (float64, bool) {
	i, ok := b.index[v]
	if !ok {
		return 0, false
	}
	if b.rng[1] < b.rng[0] {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i), true
}

// Invert implements Scale.
func (b *Band) Invert(px float64) Value {
	n := len(b.domain)
	if n == 0 {
		return Value{}
	}
	width := math.Abs(b.rng[1] - b.rng[0])
	if width == 0 {
		return b.domain[0]
	}
	i := int(math.Floor((px - math.Min(b.rng[0], b.rng[1])) / (width / float64(n))))
	i = max(0, min(n-1, i))
	if b.rng[1] < b.rng[0] {
		i = n - 1 - i
	}
	return b.domain[i]
}

// InvertWithStep implements Scale. Band lookups are always within the
// bandwidth.
func (b *Band) InvertWithStep(px float64, _ []Value) (Inverted, bool) {
	v := b.Invert(px)
	if v.IsNull() {
		return Inverted{}, false
	}
	return Inverted{Value: v, WithinBandwidth: true}, true
}

// Bandwidth implements Scale.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// OriginalBandwidth returns the bandwidth before any override.
func (b *Band) OriginalBandwidth() float64 { return b.origBandwidth }

// BandwidthPadding implements Scale.
func (b *Band) BandwidthPadding() float64 { return b.bandwidthPadding }

// BarsPadding implements Scale.
func (b *Band) BarsPadding() float64 { return b.barsPadding }

// Step implements Scale.
func (b *Band) Step() float64 { return b.step }

// MinInterval implements Scale.
func (b *Band) MinInterval() float64 { return 0 }

// TotalBarsInCluster implements Scale.
func (b *Band) TotalBarsInCluster() int { return b.totalBars }

// Domain implements Scale.
func (b *Band) Domain() []Value { return slices.Clone(b.domain) }

// Range implements Scale.
func (b *Band) Range() [2]float64 { return b.rng }

// IsInverted implements Scale.
func (b *Band) IsInverted() bool {
	return len(b.domain) > 1 && Compare(b.domain[0], b.domain[len(b.domain)-1]) > 0
}

// IsValueInDomain implements Scale.
func (b *Band) IsValueInDomain(v Value) bool {
	_, ok := b.index[v]
	return ok
}

// IsSingleValue implements Scale.
func (b *Band) IsSingleValue() bool { return len(b.domain) < 2 }

// Ticks implements Scale.
func (b *Band) Ticks() []Value { return slices.Clone(b.domain) }
