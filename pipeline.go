package ggchart

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/diag"
	"github.com/gogpu/ggchart/domain"
	"github.com/gogpu/ggchart/geometry"
	"github.com/gogpu/ggchart/index"
	"github.com/gogpu/ggchart/internal/parallel"
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/spec"
)

// Scales are the scales of one chart pass.
type Scales struct {
	X scale.Scale
	// Y holds one scale per y group.
	Y map[string]*scale.Continuous
}

// Geometries are the shapes of one chart pass, in series insertion order.
type Geometries struct {
	Bars    []geometry.Bar
	Lines   []*geometry.Line
	Areas   []*geometry.Area
	Points  []geometry.Point
	Bubbles []*geometry.Bubble
}

// Counts are the geometry totals of one chart pass.
type Counts struct {
	Bars         int
	Lines        int
	LinePoints   int
	Areas        int
	AreaPoints   int
	Points       int
	Bubbles      int
	BubblePoints int
}

// Result is the output of Compute.
type Result struct {
	XDomain domain.XDomain
	// XValues are the distinct x values in domain order.
	XValues  []scale.Value
	YDomains []domain.YDomain
	Scales   Scales

	// Series are the formatted series, deselected ones excluded.
	Series []*series.DataSeries
	// Colors maps series keys to their color, deselected series included.
	Colors map[string]gg.RGBA

	Geometries Geometries
	Index      *index.Map
	Counts     Counts
	Panels     []geometry.Panel

	// LastValues maps series keys to their values at the last x.
	LastValues map[string]series.LastValue
	// BarsInCluster counts the bar slots of all panels.
	BarsInCluster domain.BarsInCluster
	// TotalBars is the number of bar slots sharing one x band in a panel.
	TotalBars int
	// Transform maps chart coordinates onto the canvas.
	Transform gg.Matrix
}

// Compute runs a full pass over c for a chart drawn in area.
//
// Warnings about the input are reported to the diagnostics sink and never
// stop the pass. An invalid custom y domain fails with an error wrapping
// domain.ErrInvalidYDomain or domain.ErrInvalidAxisDomain.
func Compute(c *Chart, area gg.Rect, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := Logger()
	sink := o.sink
	if sink == nil {
		sink = diag.NewLogSink(log)
	}
	theme := DefaultTheme()
	switch {
	case o.theme != nil:
		theme = *o.theme
	case c.Theme != nil:
		theme = *c.Theme
	}
	rotation := c.Settings.Rotation
	if err := rotation.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}

	split := series.Split(c.Series, series.SplitOptions{
		Deselected:     o.deselected,
		SmallMultiples: c.Settings.SmallMultiples,
		Sink:           sink,
	})
	log.Debug("ggchart: split series",
		"specs", len(c.Series), "series", len(split.Series), "xValues", len(split.XValues))

	xcfg := domain.ConvertXScaleTypes(c.Series)
	xcfg.Custom = c.Settings.XDomain
	xcfg.OrderBy = c.Settings.OrderOrdinalBinsBy
	xcfg.Sums = split.XValueSums
	xcfg.FallbackOrdinal = split.FallbackOrdinal
	xDomain := domain.MergeX(xcfg, split.XValues, sink)

	axes, err := domain.AxisOptionsByGroup(c.Axes, rotation)
	if err != nil {
		return nil, err
	}

	xValues := split.XValues
	if xDomain.IsOrdinal() {
		xValues = xDomain.Categories
	}
	groups := formatGroups(domain.GroupSeries(split.Series), xValues, xDomain.Type, axes)
	yDomains, err := domain.MergeY(groups, axes)
	if err != nil {
		return nil, err
	}
	log.Debug("ggchart: merged domains",
		"xType", xDomain.Type, "xCategories", len(xDomain.Categories), "yGroups", len(yDomains))

	res := &Result{
		XDomain:       xDomain,
		XValues:       xValues,
		YDomains:      yDomains,
		Colors:        seriesColors(split.Series, theme.palette(sink), sink),
		Index:         index.New(),
		BarsInCluster: domain.CountBarsInCluster(groups),
		Transform:     ChartTransform(area, rotation),
	}
	for _, g := range groups {
		res.Series = append(res.Series, g.All()...)
	}
	slices.SortStableFunc(res.Series, func(a, b *series.DataSeries) int {
		return a.InsertIndex - b.InsertIndex
	})

	res.Panels = panels(area, rotation, split.SmVValues, split.SmHValues)
	xRange, yRange := ranges(res.Panels[0])
	slots := barIndexes(res.Series)
	for _, s := range slots {
		res.TotalBars = max(res.TotalBars, len(s))
	}
	res.Scales.X = scale.ComputeXScale(xDomain.ScaleConfig(xRange, res.TotalBars, theme.barsPadding(split.Histogram), split.Histogram))
	yConfigs := make([]scale.YConfig, len(yDomains))
	for i, d := range yDomains {
		yConfigs[i] = d.ScaleConfig()
	}
	res.Scales.Y = scale.ComputeYScales(yConfigs, yRange)

	renderGeometries(res, slots, theme, split.Histogram, o.workers)

	if vals := xDomain.Values(); len(vals) > 0 {
		res.LastValues = series.LastValues(res.Series, vals[len(vals)-1])
	}
	log.Debug("ggchart: computed geometries",
		slog.Int("bars", res.Counts.Bars),
		slog.Int("lines", res.Counts.Lines),
		slog.Int("areas", res.Counts.Areas),
		slog.Int("points", res.Counts.Points),
		slog.Int("bubbles", res.Counts.Bubbles),
		slog.Int("indexed", res.Index.Len()))
	return res, nil
}

// formatGroups stacks the stacked series of every group, panel by panel,
// and fits the others.
func formatGroups(groups []domain.Group, xValues []scale.Value, xType scale.Type, axes map[string]domain.AxisOptions) []domain.Group {
	out := make([]domain.Group, len(groups))
	for i, g := range groups {
		out[i] = domain.Group{ID: g.ID}
		for _, panel := range byPanel(g.Stacked) {
			out[i].Stacked = append(out[i].Stacked, series.Stack(panel, xValues, axes[g.ID].Fit(), g.StackMode())...)
		}
		for _, ds := range g.NonStacked {
			if k := ds.Kind(); k == spec.KindLine || k == spec.KindArea {
				ds = series.Fit(ds, spec.FitOf(ds.Spec), xType, false)
			}
			out[i].NonStacked = append(out[i].NonStacked, ds)
		}
	}
	return out
}

// byPanel partitions list by small multiples panel, keeping order.
func byPanel(list []*series.DataSeries) [][]*series.DataSeries {
	var out [][]*series.DataSeries
	index := make(map[panelKey]int)
	for _, ds := range list {
		key := panelKey{ds.SmV, ds.SmH}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], ds)
	}
	return out
}

// panels splits area into a grid of small multiples in chart coordinates:
// vertical values are rows, horizontal values are columns. Without small
// multiples there is a single panel covering area.
func panels(area gg.Rect, r spec.Rotation, vs, hs []scale.Value) []geometry.Panel {
	if len(vs) == 0 {
		vs = []scale.Value{{}}
	}
	if len(hs) == 0 {
		hs = []scale.Value{{}}
	}
	w, h := ChartSize(area, r)
	w /= float64(len(hs))
	h /= float64(len(vs))
	out := make([]geometry.Panel, 0, len(vs)*len(hs))
	for row, v := range vs {
		for col, hv := range hs {
			top := gg.Pt(float64(col)*w, float64(row)*h)
			out = append(out, geometry.Panel{
				Bounds: gg.Rect{Min: top, Max: gg.Pt(top.X+w, top.Y+h)},
				V:      v,
				H:      hv,
			})
		}
	}
	return out
}

// ranges returns the pixel ranges of the x and y scales inside p. The y
// range runs bottom-up.
func ranges(p geometry.Panel) (x, y [2]float64) {
	return [2]float64{0, p.Width()}, [2]float64{p.Height(), 0}
}

type panelKey struct {
	v, h scale.Value
}

// barIndexes assigns every bar series its slot in the cluster of its
// panel.
func barIndexes(list []*series.DataSeries) map[panelKey]map[string]int {
	out := make(map[panelKey]map[string]int)
	for _, ds := range list {
		if ds.Kind() != spec.KindBar {
			continue
		}
		key := panelKey{ds.SmV, ds.SmH}
		slots := out[key]
		if slots == nil {
			slots = make(map[string]int)
			out[key] = slots
		}
		if k := geometry.BarIndexKey(ds); !hasKey(slots, k) {
			slots[k] = len(slots)
		}
	}
	return out
}

func hasKey(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}

// rendered holds the shapes of one series.
type rendered struct {
	bars   []geometry.Bar
	line   *geometry.Line
	area   *geometry.Area
	bubble *geometry.Bubble
	index  *index.Map
}

// renderGeometries builds the shapes of every series, merging the
// results in insertion order.
func renderGeometries(res *Result, slots map[panelKey]map[string]int, theme Theme, histogram bool, workers int) {
	list := res.Series
	panelOf := make(map[panelKey]geometry.Panel, len(res.Panels))
	for _, p := range res.Panels {
		panelOf[panelKey{p.V, p.H}] = p
	}
	mixed := false
	for _, ds := range list {
		if ds.Kind() != spec.KindBubble {
			mixed = true
			break
		}
	}
	style := theme.style()
	xs := res.Scales.X

	out := make([]rendered, len(list))
	work := make([]func(), len(list))
	for i, ds := range list {
		work[i] = func() {
			yScale, ok := res.Scales.Y[ds.GroupID]
			if !ok {
				return
			}
			key := panelKey{ds.SmV, ds.SmH}
			bars := len(slots[key])
			in := geometry.Input{
				Series:       ds,
				XScale:       xs,
				YScale:       yScale,
				Panel:        panelOf[key],
				Color:        res.Colors[ds.Key],
				Style:        style,
				Shift:        xs.Bandwidth() * float64(max(1, bars)) / 2,
				XScaleOffset: scale.XScaleOffset(xs, histogram, spec.AlignmentOf(ds.Spec)),
			}
			r := &out[i]
			switch s := ds.Spec.(type) {
			case *spec.Bar:
				slot, ok := slots[key][geometry.BarIndexKey(ds)]
				if !ok {
					return
				}
				r.bars, r.index = geometry.RenderBars(in, geometry.BarOptions{
					OrderIndex:    slot,
					MinBarHeight:  s.MinBarHeight,
					DisplayValues: s.DisplayValues,
				})
			case *spec.Line:
				r.line, r.index = geometry.RenderLine(in, pathOptions(s))
			case *spec.Area:
				r.area, r.index = geometry.RenderArea(in, pathOptions(s))
			case *spec.Bubble:
				r.bubble, r.index = geometry.RenderBubble(in, mixed)
			}
		}
	}
	pool := parallel.NewWorkerPool(workers)
	pool.ExecuteAll(work)
	pool.Close()

	g := &res.Geometries
	for _, r := range out {
		switch {
		case r.bars != nil:
			g.Bars = append(g.Bars, r.bars...)
			res.Counts.Bars += len(r.bars)
		case r.line != nil:
			g.Lines = append(g.Lines, r.line)
			g.Points = append(g.Points, r.line.Points...)
			res.Counts.Lines++
			res.Counts.LinePoints += len(r.line.Points)
		case r.area != nil:
			g.Areas = append(g.Areas, r.area)
			g.Points = append(g.Points, r.area.Points...)
			res.Counts.Areas++
			res.Counts.AreaPoints += len(r.area.Points)
		case r.bubble != nil:
			g.Bubbles = append(g.Bubbles, r.bubble)
			res.Counts.Bubbles++
			res.Counts.BubblePoints += len(r.bubble.Points)
		}
		if r.index != nil {
			res.Index.Merge(r.index)
		}
	}
	res.Counts.Points = res.Counts.LinePoints + res.Counts.AreaPoints
}

func pathOptions(s spec.Series) geometry.PathOptions {
	return geometry.PathOptions{
		Curve:  spec.CurveOf(s),
		Fitted: spec.FitOf(s).Type != spec.FitNone,
	}
}
