package domain

import (
	"fmt"
	"math"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/spec"
)

// Group holds the visible series of one y group, split by stacking.
type Group struct {
	ID         string
	Stacked    []*series.DataSeries
	NonStacked []*series.DataSeries
}

// GroupSeries groups series by GroupID in first-seen order. Series
// deselected by the user are left out.
func GroupSeries(list []*series.DataSeries) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, ds := range list {
		if ds.IsFiltered {
			continue
		}
		i, ok := index[ds.GroupID]
		if !ok {
			i = len(groups)
			index[ds.GroupID] = i
			groups = append(groups, Group{ID: ds.GroupID})
		}
		if ds.IsStacked {
			groups[i].Stacked = append(groups[i].Stacked, ds)
		} else {
			groups[i].NonStacked = append(groups[i].NonStacked, ds)
		}
	}
	return groups
}

// All returns the stacked series followed by the non-stacked ones.
func (g Group) All() []*series.DataSeries {
	out := make([]*series.DataSeries, 0, len(g.Stacked)+len(g.NonStacked))
	out = append(out, g.Stacked...)
	return append(out, g.NonStacked...)
}

// StackMode returns percentage when any stacked series asks for it.
func (g Group) StackMode() spec.StackMode {
	for _, ds := range g.Stacked {
		if ds.StackMode == spec.StackModePercentage {
			return spec.StackModePercentage
		}
	}
	return spec.StackModeNone
}

// HasZeroBaseline reports whether the group draws bars or areas, whose
// domain always includes zero.
func (g Group) HasZeroBaseline() bool {
	for _, ds := range g.All() {
		if k := ds.Kind(); k == spec.KindBar || k == spec.KindArea {
			return true
		}
	}
	return false
}

// YScaleType returns the common y scale type of the group, or Linear when
// series disagree.
func (g Group) YScaleType() scale.Type {
	types := make([]scale.Type, 0, len(g.Stacked)+len(g.NonStacked))
	for _, ds := range g.All() {
		types = append(types, ds.Spec.Common().YScaleType)
	}
	return CoerceYScaleTypes(types)
}

// CoerceYScaleTypes returns the shared type, or Linear for none or mixed.
func CoerceYScaleTypes(types []scale.Type) scale.Type {
	if len(types) == 0 {
		return scale.Linear
	}
	for _, t := range types[1:] {
		if t != types[0] {
			return scale.Linear
		}
	}
	return types[0]
}

// BarsInCluster counts the bar slots sharing one x band.
type BarsInCluster struct {
	NonStacked int
	Stacked    int
	Total      int
}

// CountBarsInCluster counts one slot per non-stacked bar series and one
// per group with stacked bars.
func CountBarsInCluster(groups []Group) BarsInCluster {
	var c BarsInCluster
	for _, g := range groups {
		for _, ds := range g.NonStacked {
			if ds.Kind() == spec.KindBar {
				c.NonStacked++
			}
		}
		for _, ds := range g.Stacked {
			if ds.Kind() == spec.KindBar {
				c.Stacked++
				break
			}
		}
	}
	c.Total = c.NonStacked + c.Stacked
	return c
}

// AxisOptions are the y axis settings of one group.
type AxisOptions struct {
	Domain       *spec.YDomain
	TickCount    int
	IntegersOnly bool
}

// Fit reports whether the domain should hug the data instead of
// including zero.
func (o AxisOptions) Fit() bool { return o.Domain != nil && o.Domain.Fit }

// AxisOptionsByGroup collects the options of every y axis under rotation
// r. When several axes share a group the first one wins.
func AxisOptionsByGroup(axes []spec.Axis, r spec.Rotation) (map[string]AxisOptions, error) {
	out := make(map[string]AxisOptions)
	for _, a := range axes {
		if !a.IsYAxis(r) {
			continue
		}
		if d := a.Domain; d != nil && d.IsComplete() && *d.Min > *d.Max {
			return nil, fmt.Errorf("axis %q: min %v is greater than max %v: %w",
				a.ID, *d.Min, *d.Max, ErrInvalidAxisDomain)
		}
		if _, ok := out[a.Group()]; ok {
			continue
		}
		out[a.Group()] = AxisOptions{Domain: a.Domain, TickCount: a.TickCount, IntegersOnly: a.IntegersOnly}
	}
	return out, nil
}

// YDomain is the merged domain of one y group.
type YDomain struct {
	GroupID string
	Type    scale.Type
	Min     float64
	Max     float64

	Nice             bool
	DesiredTickCount int
	IntegersOnly     bool
}

// ScaleConfig returns the scale factory input for d.
func (d YDomain) ScaleConfig() scale.YConfig {
	return scale.YConfig{
		GroupID:          d.GroupID,
		Type:             d.Type,
		Min:              d.Min,
		Max:              d.Max,
		Nice:             d.Nice,
		DesiredTickCount: d.DesiredTickCount,
		IntegersOnly:     d.IntegersOnly,
	}
}

// MergeY computes one domain per group from the formatted series: stacked
// series contribute their accumulated y0 and y1, non-stacked series their
// own values.
//
// Percentage groups always span [0, 1]. Otherwise the domain includes zero
// unless the axis asks to fit the data and the group draws no bars or
// areas; log domains never include zero. A partial custom bound that does
// not overlap the data fails with ErrInvalidYDomain.
func MergeY(groups []Group, axes map[string]AxisOptions) ([]YDomain, error) {
	out := make([]YDomain, 0, len(groups))
	for _, g := range groups {
		opts := axes[g.ID]
		d := YDomain{
			GroupID:          g.ID,
			Type:             g.YScaleType(),
			DesiredTickCount: opts.TickCount,
			IntegersOnly:     opts.IntegersOnly,
		}
		if opts.Domain != nil {
			d.Nice = opts.Domain.Nice
		}

		if g.StackMode() == spec.StackModePercentage {
			d.Min, d.Max = 0, 1
			out = append(out, d)
			continue
		}

		lo, hi := extent(g)
		includeZero := d.Type != scale.Log && (!opts.Fit() || g.HasZeroBaseline())
		if includeZero {
			lo, hi = min(lo, 0), max(hi, 0)
		}
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			lo, hi = 0, 0
		}
		d.Min, d.Max = lo, hi

		if c := opts.Domain; c != nil {
			switch {
			case c.IsComplete():
				d.Min, d.Max = *c.Min, *c.Max
			case c.IsLowerBound():
				if *c.Min > d.Max {
					return nil, fmt.Errorf("custom yDomain for %s is invalid, custom min is greater than computed max: %w",
						g.ID, ErrInvalidYDomain)
				}
				d.Min = *c.Min
			case c.IsUpperBound():
				if d.Min > *c.Max {
					return nil, fmt.Errorf("custom yDomain for %s is invalid, computed min is greater than custom max: %w",
						g.ID, ErrInvalidYDomain)
				}
				d.Max = *c.Max
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// extent returns the min and max defined y values of g, or +Inf/-Inf
// when there are none.
func extent(g Group) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	add := func(n series.Number) {
		if n.Valid {
			lo, hi = min(lo, n.Value), max(hi, n.Value)
		}
	}
	for _, ds := range g.Stacked {
		for _, d := range ds.Data {
			add(d.Y1)
			add(d.Y0)
		}
	}
	for _, ds := range g.NonStacked {
		for _, d := range ds.Data {
			add(d.Y1)
			add(d.Y0)
		}
	}
	return lo, hi
}
