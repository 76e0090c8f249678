package scale

import "math"

// XConfig describes the merged x domain and layout needed to build the
// x scale.
type XConfig struct {
	Type Type

	// Categories is the ordinal domain. Used when Type is Ordinal.
	Categories []Value
	// Min and Max bound a continuous domain.
	Min, Max float64

	IsBandScale bool
	MinInterval float64
	TimeZone    string
	LogBase     int

	Range              [2]float64
	TotalBarsInCluster int
	BarsPadding        float64
	Histogram          bool

	Nice             bool
	DesiredTickCount int
	IntegersOnly     bool
}

// ComputeXScale builds the x scale.
//
// Ordinal domains yield a Band scale whose bandwidth is split between the
// bars of a cluster. Continuous domains carrying bars yield a Continuous
// scale with one band per minInterval slot; the last slot is kept outside
// the range so the final bar fits. A single-value domain is widened by one
// minInterval only in histogram mode.
func ComputeXScale(cfg XConfig) Scale {
	span := math.Abs(cfg.Range[1] - cfg.Range[0])
	inverse := cfg.Range[1] < cfg.Range[0]
	totalBars := cfg.TotalBarsInCluster

	if cfg.Type == Ordinal {
		dividend := float64(max(1, totalBars))
		var bandwidth float64
		if n := len(cfg.Categories); n > 0 {
			bandwidth = span / (float64(n) * dividend)
		}
		return NewBand(cfg.Categories, cfg.Range, bandwidth, cfg.BarsPadding, totalBars)
	}

	if cfg.IsBandScale {
		lo, hi := cfg.Min, cfg.Max
		singleValueHistogram := cfg.Histogram && hi-lo == 0
		if singleValueHistogram {
			hi = lo + cfg.MinInterval
		}
		intervals := 0.0
		if cfg.MinInterval > 0 {
			intervals = (hi - lo) / cfg.MinInterval
		}
		offset := 1.0
		if singleValueHistogram {
			offset = 0
		}
		bandwidth := span / (intervals + offset)
		if math.IsInf(bandwidth, 0) || math.IsNaN(bandwidth) {
			bandwidth = 0
		}
		endOffset := bandwidth
		if singleValueHistogram {
			endOffset = 0
		}
		start, end := cfg.Range[0], cfg.Range[1]-endOffset
		if inverse {
			start, end = cfg.Range[0]-endOffset, cfg.Range[1]
		}
		if totalBars > 0 {
			bandwidth /= float64(totalBars)
		}
		return NewContinuous(ContinuousConfig{
			Type:                 cfg.Type,
			Domain:               [2]float64{lo, hi},
			Range:                [2]float64{start, end},
			Nice:                 cfg.Nice,
			Bandwidth:            bandwidth,
			BarsPadding:          cfg.BarsPadding,
			TotalBarsInCluster:   totalBars,
			MinInterval:          cfg.MinInterval,
			TimeZone:             cfg.TimeZone,
			DesiredTickCount:     cfg.DesiredTickCount,
			IntegersOnly:         cfg.IntegersOnly,
			SingleValueHistogram: singleValueHistogram,
			LogBase:              cfg.LogBase,
		})
	}

	return NewContinuous(ContinuousConfig{
		Type:               cfg.Type,
		Domain:             [2]float64{cfg.Min, cfg.Max},
		Range:              cfg.Range,
		Nice:               cfg.Nice,
		BarsPadding:        cfg.BarsPadding,
		TotalBarsInCluster: totalBars,
		MinInterval:        cfg.MinInterval,
		TimeZone:           cfg.TimeZone,
		DesiredTickCount:   cfg.DesiredTickCount,
		IntegersOnly:       cfg.IntegersOnly,
		LogBase:            cfg.LogBase,
	})
}

// YConfig describes one y group domain.
type YConfig struct {
	GroupID string
	Type    Type
	Min     float64
	Max     float64

	Nice             bool
	DesiredTickCount int
	IntegersOnly     bool
	LogBase          int
	LogMinLimit      float64
}

// ComputeYScales builds one continuous scale per y group over rng.
// The range usually runs bottom-up: [height, 0].
func ComputeYScales(groups []YConfig, rng [2]float64) map[string]*Continuous {
	out := make(map[string]*Continuous, len(groups))
	for _, g := range groups {
		out[g.GroupID] = NewContinuous(ContinuousConfig{
			Type:             g.Type,
			Domain:           [2]float64{g.Min, g.Max},
			Range:            rng,
			Nice:             g.Nice,
			DesiredTickCount: g.DesiredTickCount,
			IntegersOnly:     g.IntegersOnly,
			LogBase:          g.LogBase,
			LogMinLimit:      g.LogMinLimit,
		})
	}
	return out
}

// XScaleOffset returns the horizontal shift applied to lines, areas and
// points so they align with histogram bars. It is 0 outside histogram mode.
func XScaleOffset(s Scale, histogram bool, align Alignment) float64 {
	if !histogram || s == nil {
		return 0
	}
	bandwidth := s.Bandwidth()
	padding := s.BarsPadding()
	band := bandwidth
	if padding < 1 {
		band = bandwidth / (1 - padding)
	}
	halfPadding := (band - bandwidth) / 2
	start := bandwidth/2 + halfPadding
	switch align {
	case AlignCenter:
		return 0
	case AlignEnd:
		return -start
	}
	return start
}
