// Package domain merges the data extents of many series into the x domain
// shared by a chart and one y domain per group.
//
// Invalid custom x bounds are reported through a [diag.Sink] and ignored.
// Invalid custom y bounds are hard errors ([ErrInvalidYDomain],
// [ErrInvalidAxisDomain]).
package domain

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/ggchart/diag"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

const source = "domain"

// DefaultTimeZone is used when no time spec names a zone or specs disagree.
const DefaultTimeZone = "utc"

// XConfig is the resolved x scale configuration plus the custom domain and
// ordering inputs MergeX needs.
type XConfig struct {
	Type        scale.Type
	IsBandScale bool
	// TimeZone is set for time scales only.
	TimeZone string

	Custom *spec.XDomain

	// OrderBy reorders ordinal values by Sums. Nil keeps insertion order.
	OrderBy *spec.OrderBy
	Sums    map[scale.Value]float64

	// FallbackOrdinal forces an ordinal domain because non-numeric values
	// were found on a continuous scale.
	FallbackOrdinal bool
}

// XDomain is the merged x domain of a chart.
type XDomain struct {
	Type        scale.Type
	IsBandScale bool

	// Min and Max bound continuous domains.
	Min, Max float64
	// Categories is the ordinal domain in display order.
	Categories []scale.Value

	MinInterval float64
	TimeZone    string
}

// IsOrdinal reports whether d is an ordinal domain.
func (d XDomain) IsOrdinal() bool { return d.Type == scale.Ordinal }

// Values returns the categories of an ordinal domain or the two bounds of
// a continuous one.
func (d XDomain) Values() []scale.Value {
	if d.IsOrdinal() {
		return d.Categories
	}
	return []scale.Value{scale.Number(d.Min), scale.Number(d.Max)}
}

// ScaleConfig returns the scale factory input for d drawn over rng.
func (d XDomain) ScaleConfig(rng [2]float64, totalBars int, barsPadding float64, histogram bool) scale.XConfig {
	return scale.XConfig{
		Type:               d.Type,
		Categories:         d.Categories,
		Min:                d.Min,
		Max:                d.Max,
		IsBandScale:        d.IsBandScale,
		MinInterval:        d.MinInterval,
		TimeZone:           d.TimeZone,
		Range:              rng,
		TotalBarsInCluster: totalBars,
		BarsPadding:        barsPadding,
		Histogram:          histogram,
	}
}

// ConvertXScaleTypes resolves a single x scale type for specs.
//
// Any ordinal spec makes the scale ordinal. Otherwise time wins over the
// other continuous types, and log or sqrt are kept only when every spec
// agrees. Any bar spec makes the scale a band scale. Time zones are
// compared case-insensitively; disagreeing zones resolve to utc.
func ConvertXScaleTypes(specs []spec.Series) XConfig {
	var cfg XConfig
	if len(specs) == 0 {
		return cfg
	}

	lower := cases.Lower(language.Und)
	zones := make(map[string]bool)
	types := make(map[scale.Type]bool)
	for _, s := range specs {
		base := s.Common()
		types[base.XScaleType] = true
		if s.Kind() == spec.KindBar {
			cfg.IsBandScale = true
		}
		if base.XScaleType == scale.Time && base.TimeZone != "" {
			zones[lower.String(base.TimeZone)] = true
		}
	}

	switch {
	case types[scale.Ordinal]:
		cfg.Type = scale.Ordinal
	case types[scale.Time]:
		cfg.Type = scale.Time
	case len(types) == 1:
		for t := range types {
			cfg.Type = t
		}
	default:
		cfg.Type = scale.Linear
	}

	if cfg.Type == scale.Time {
		cfg.TimeZone = DefaultTimeZone
		if len(zones) == 1 {
			for z := range zones {
				cfg.TimeZone = z
			}
		}
	}
	return cfg
}

// MergeX merges the x values of every series into the chart x domain.
func MergeX(cfg XConfig, xValues []scale.Value, sink diag.Sink) XDomain {
	d := XDomain{
		Type:        cfg.Type,
		IsBandScale: cfg.IsBandScale,
		TimeZone:    cfg.TimeZone,
	}

	if cfg.FallbackOrdinal && cfg.Type != scale.Ordinal {
		diag.Warnf(sink, source,
			"Each X value in a %s x scale needs to be a number. Using ordinal x scale as fallback.", cfg.Type)
		d.Type = scale.Ordinal
		d.TimeZone = ""
	}

	if d.Type == scale.Ordinal {
		d.Categories = dedup(xValues)
		if cfg.Type == scale.Ordinal && cfg.OrderBy != nil {
			d.Categories = OrderXValues(d.Categories, cfg.Sums, *cfg.OrderBy)
		}
		if c := cfg.Custom; c != nil {
			switch {
			case c.Categories != nil:
				d.Categories = slices.Clone(c.Categories)
			case c.Range != nil:
				diag.Warnf(sink, source,
					"xDomain for ordinal scale should be an array of values, not a DomainRange object. xDomain is ignored.")
			}
		}
		d.MinInterval = 1
		return d
	}

	nums := numbers(xValues)
	if len(nums) > 0 {
		d.Min, d.Max = slices.Min(nums), slices.Max(nums)
	}
	computedInterval := MinInterval(nums)
	d.MinInterval = computedInterval

	c := cfg.Custom
	if c == nil {
		return d
	}
	if c.Categories != nil {
		diag.Warnf(sink, source, "xDomain for continuous scale should be a DomainRange object, not an array")
		return d
	}
	r := c.Range
	if r == nil {
		return d
	}

	switch {
	case r.IsComplete():
		if *r.Min > *r.Max {
			diag.Warnf(sink, source, "custom xDomain is invalid, min is greater than max. Custom domain is ignored.")
		} else {
			d.Min, d.Max = *r.Min, *r.Max
		}
	case r.IsLowerBound():
		if *r.Min > d.Max {
			diag.Warnf(sink, source,
				"custom xDomain is invalid, custom min is greater than computed max. Custom domain is ignored.")
		} else {
			d.Min = *r.Min
		}
	case r.IsUpperBound():
		if d.Min > *r.Max {
			diag.Warnf(sink, source,
				"custom xDomain is invalid, computed min is greater than custom max. Custom domain is ignored.")
		} else {
			d.Max = *r.Max
		}
	}

	if r.MinInterval != nil {
		custom := *r.MinInterval
		switch {
		case custom < 0:
			diag.Warnf(sink, source,
				"custom xDomain is invalid, custom minInterval is less than 0. Using computed minInterval.")
		case custom > computedInterval && distinct(nums) > 1:
			diag.Warnf(sink, source,
				"custom xDomain is invalid, custom minInterval is greater than computed minInterval. Using computed minInterval.")
		default:
			d.MinInterval = custom
		}
	}
	return d
}

// MinInterval returns the smallest positive gap between the distinct
// values. It is 0 for no values and 1 for a single distinct value.
func MinInterval(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return 1
	}
	interval := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		interval = min(interval, sorted[i]-sorted[i-1])
	}
	return interval
}

// OrderXValues sorts ordinal values by their aggregated y sum. BinAggNone
// keeps the input order. Equal sums keep their relative order.
func OrderXValues(values []scale.Value, sums map[scale.Value]float64, by spec.OrderBy) []scale.Value {
	out := slices.Clone(values)
	if by.BinAgg == spec.BinAggNone {
		return out
	}
	slices.SortStableFunc(out, func(a, b scale.Value) int {
		if by.Direction == spec.Ascending {
			return cmp.Compare(sums[a], sums[b])
		}
		return cmp.Compare(sums[b], sums[a])
	})
	return out
}

func dedup(values []scale.Value) []scale.Value {
	seen := make(map[scale.Value]bool, len(values))
	out := make([]scale.Value, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func numbers(values []scale.Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.IsNumber() {
			out = append(out, v.Float())
		}
	}
	return out
}

func distinct(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
