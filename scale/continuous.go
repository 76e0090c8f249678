package scale

import (
	"math"
	"slices"
	"sort"

	mmscale "github.com/aclements/go-moremath/scale"
)

// DefaultTickCount is the desired number of ticks when none is configured.
const DefaultTickCount = 10

// ContinuousConfig configures a Continuous scale.
type ContinuousConfig struct {
	Type   Type
	Domain [2]float64
	Range  [2]float64

	// Nice extends the domain to round tick values. Ignored for time scales.
	Nice bool

	// Bandwidth is the width of a full minInterval slot divided by the
	// bars in a cluster, before padding. Zero for line-only axes.
	Bandwidth          float64
	BarsPadding        float64
	TotalBarsInCluster int
	MinInterval        float64

	TimeZone         string
	DesiredTickCount int
	IntegersOnly     bool

	// SingleValueHistogram marks a histogram domain widened from a single
	// value by one minInterval.
	SingleValueHistogram bool

	LogBase     int
	LogMinLimit float64
}

// Continuous maps a numeric domain onto a pixel range.
type Continuous struct {
	typ     Type
	domain  [2]float64
	lo, hi  float64
	rng     [2]float64
	norm    normalizer
	tickers tickSource

	bandwidth        float64
	bandwidthPadding float64
	barsPadding      float64
	step             float64
	minInterval      float64
	totalBars        int

	timeZone        string
	singleValueHist bool
	ticks           []Value
}

var _ Scale = (*Continuous)(nil)

// NewContinuous creates a continuous scale.
func NewContinuous(cfg ContinuousConfig) *Continuous {
	domain := cfg.Domain
	if cfg.Type == Log {
		domain = LimitLogDomain(domain, cfg.LogMinLimit)
	}
	tickCount := cfg.DesiredTickCount
	if tickCount <= 0 {
		tickCount = DefaultTickCount
	}
	opts := tickOptions(tickCount, cfg.IntegersOnly)

	if cfg.Nice && cfg.Type != Time && cfg.Type != Log {
		domain = niceDomain(domain, opts)
	}

	totalBars := cfg.TotalBarsInCluster
	if totalBars < 1 {
		totalBars = 1
	}
	padding := clamp(cfg.BarsPadding, 0, 1)

	c := &Continuous{
		typ:              cfg.Type,
		domain:           domain,
		lo:               math.Min(domain[0], domain[1]),
		hi:               math.Max(domain[0], domain[1]),
		rng:              cfg.Range,
		bandwidth:        cfg.Bandwidth * (1 - padding),
		bandwidthPadding: cfg.Bandwidth * padding,
		barsPadding:      padding,
		minInterval:      cfg.MinInterval,
		totalBars:        totalBars,
		timeZone:         cfg.TimeZone,
		singleValueHist:  cfg.SingleValueHistogram,
	}
	c.step = c.bandwidth + c.barsPadding + c.bandwidthPadding
	c.norm, c.tickers = newNormalizer(cfg.Type, c.lo, c.hi, cfg.LogBase)
	c.ticks = c.computeTicks(opts)
	return c
}

// Type implements Scale.
func (c *Continuous) Type() Type { return c.typ }

// Scale implements Scale.
func (c *Continuous) Scale(v Value) (float64, bool) {
	if !v.IsNumber() {
		return 0, false
	}
	px := c.scaleFloat(v.Float())
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return 0, false
	}
	return px, true
}

// ScaleFloat maps a raw number. It reports false for NaN results.
func (c *Continuous) ScaleFloat(f float64) (float64, bool) {
	return c.Scale(Number(f))
}

func (c *Continuous) scaleFloat(f float64) float64 {
	t := 0.5
	if c.lo != c.hi {
		if c.typ == Log && (f == 0 || (f < 0) != (c.hi < 0)) {
			return math.NaN()
		}
		t = c.norm.Map(f)
		if c.IsInverted() {
			t = 1 - t
		}
	}
	return c.rng[0] + t*(c.rng[1]-c.rng[0]) + c.bandwidthPadding/2*float64(c.totalBars)
}

// Invert implements Scale.
func (c *Continuous) Invert(px float64) Value {
	return Number(c.invertFloat(px))
}

func (c *Continuous) invertFloat(px float64) float64 {
	if c.lo == c.hi || c.rng[0] == c.rng[1] {
		return c.domain[0]
	}
	px -= c.bandwidthPadding / 2 * float64(c.totalBars)
	t := (px - c.rng[0]) / (c.rng[1] - c.rng[0])
	if c.IsInverted() {
		t = 1 - t
	}
	return c.norm.Unmap(t)
}

// InvertWithStep implements Scale. Values outside data snap to the
// nearest minInterval slot and are reported outside the bandwidth.
func (c *Continuous) InvertWithStep(px float64, data []Value) (Inverted, bool) {
	if len(data) == 0 {
		return Inverted{}, false
	}
	inverted := c.invertFloat(px)
	bisect := inverted
	if c.bandwidth == 0 {
		bisect = inverted + c.minInterval/2
	}
	// first index past bisect, so an exact hit selects its own slot
	left := sort.Search(len(data), func(i int) bool {
		return data[i].Float() > bisect
	})
	if left == 0 {
		first := data[0].Float()
		if inverted < first {
			v := first
			if c.minInterval > 0 {
				v = first - c.minInterval*math.Ceil((first-inverted)/c.minInterval)
			}
			return Inverted{Value: Number(v), WithinBandwidth: false}, true
		}
		return Inverted{Value: data[0], WithinBandwidth: true}, true
	}
	current := data[left-1]
	if c.bandwidth == 0 {
		if left >= len(data) {
			return Inverted{Value: current, WithinBandwidth: true}, true
		}
		next := data[left]
		nextDiff := math.Abs(next.Float() - inverted)
		prevDiff := math.Abs(inverted - current.Float())
		if nextDiff <= prevDiff {
			return Inverted{Value: next, WithinBandwidth: true}, true
		}
		return Inverted{Value: current, WithinBandwidth: true}, true
	}
	if inverted-current.Float() <= c.minInterval {
		return Inverted{Value: current, WithinBandwidth: true}, true
	}
	v := current.Float()
	if c.minInterval > 0 {
		v += c.minInterval * math.Floor((inverted-v)/c.minInterval)
	}
	return Inverted{Value: Number(v), WithinBandwidth: false}, true
}

// Bandwidth implements Scale.
func (c *Continuous) Bandwidth() float64 { return c.bandwidth }

// BandwidthPadding implements Scale.
func (c *Continuous) BandwidthPadding() float64 { return c.bandwidthPadding }

// BarsPadding implements Scale.
func (c *Continuous) BarsPadding() float64 { return c.barsPadding }

// Step implements Scale.
func (c *Continuous) Step() float64 { return c.step }

// MinInterval implements Scale.
func (c *Continuous) MinInterval() float64 { return c.minInterval }

// TotalBarsInCluster implements Scale.
func (c *Continuous) TotalBarsInCluster() int { return c.totalBars }

// Domain implements Scale.
func (c *Continuous) Domain() []Value { return Numbers(c.domain[0], c.domain[1]) }

// NumericDomain returns the domain bounds as stored.
func (c *Continuous) NumericDomain() [2]float64 { return c.domain }

// Range implements Scale.
func (c *Continuous) Range() [2]float64 { return c.rng }

// IsInverted implements Scale.
func (c *Continuous) IsInverted() bool { return c.domain[0] > c.domain[1] }

// IsValueInDomain implements Scale.
func (c *Continuous) IsValueInDomain(v Value) bool {
	if !v.IsNumber() {
		return false
	}
	f := v.Float()
	return f >= c.lo && f <= c.hi
}

// IsSingleValue implements Scale.
func (c *Continuous) IsSingleValue() bool {
	return c.singleValueHist || c.lo == c.hi
}

// TimeZone returns the time zone of a time scale.
func (c *Continuous) TimeZone() string { return c.timeZone }

// Ticks implements Scale.
func (c *Continuous) Ticks() []Value { return slices.Clone(c.ticks) }

func (c *Continuous) computeTicks(opts mmscale.TickOptions) []Value {
	if math.IsNaN(c.lo) || math.IsNaN(c.hi) {
		return nil
	}
	if c.lo == c.hi {
		return Numbers(c.lo)
	}
	switch {
	case c.typ == Time:
		if ticks, ok := timeTicks(c.lo, c.hi, opts.Max, LoadTimeZone(c.timeZone)); ok {
			return Numbers(ticks...)
		}
	case c.minInterval > 0 && c.bandwidth+c.bandwidthPadding > 0 && (c.hi-c.lo)/c.minInterval < maxTicks:
		// one tick per bar slot, none between bars
		n := int(math.Floor((c.hi - c.lo) / c.minInterval))
		out := make([]Value, n+1)
		for i := range out {
			out[i] = Number(c.lo + float64(i)*c.minInterval)
		}
		return out
	}
	major := c.tickers.ticks(opts)
	out := make([]Value, 0, len(major))
	const eps = 1e-9
	for _, t := range major {
		if t >= c.lo-eps*math.Abs(c.lo) && t <= c.hi+eps*math.Abs(c.hi) {
			out = append(out, Number(t))
		}
	}
	return out
}

func tickOptions(count int, integersOnly bool) mmscale.TickOptions {
	o := mmscale.TickOptions{Max: count, MinLevel: -1000, MaxLevel: 1000}
	if integersOnly {
		o.MinLevel = 0
	}
	return o
}

func niceDomain(domain [2]float64, opts mmscale.TickOptions) [2]float64 {
	lo, hi := math.Min(domain[0], domain[1]), math.Max(domain[0], domain[1])
	if lo == hi {
		return domain
	}
	lin := &mmscale.Linear{Min: lo, Max: hi}
	lin.Nice(opts)
	if domain[0] > domain[1] {
		return [2]float64{lin.Max, lin.Min}
	}
	return [2]float64{lin.Min, lin.Max}
}
