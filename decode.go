package ggchart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/spec"
)

// ErrInvalidChart is returned for chart documents that cannot be turned
// into specs.
var ErrInvalidChart = errors.New("ggchart: invalid chart")

// Chart is a complete chart description.
type Chart struct {
	Settings spec.Settings
	Axes     []spec.Axis
	Series   []spec.Series
	// Theme is nil when the document does not carry one.
	Theme *Theme
}

// chartDoc is the document form of Chart shared by YAML and JSON.
type chartDoc struct {
	Settings settingsDoc `yaml:"settings" json:"settings"`
	Axes     []axisDoc   `yaml:"axes" json:"axes"`
	Series   []seriesDoc `yaml:"series" json:"series"`
	Theme    *Theme      `yaml:"theme" json:"theme"`
}

type settingsDoc struct {
	Rotation           int          `yaml:"rotation" json:"rotation"`
	XDomain            any          `yaml:"xDomain" json:"xDomain"`
	OrderOrdinalBinsBy *orderByDoc  `yaml:"orderOrdinalBinsBy" json:"orderOrdinalBinsBy"`
	SmallMultiples     smallMultDoc `yaml:"smallMultiples" json:"smallMultiples"`
}

type orderByDoc struct {
	BinAgg    spec.BinAgg    `yaml:"binAgg" json:"binAgg"`
	Direction spec.Direction `yaml:"direction" json:"direction"`
}

type smallMultDoc struct {
	Vertical   string `yaml:"splitVertically" json:"splitVertically"`
	Horizontal string `yaml:"splitHorizontally" json:"splitHorizontally"`
}

type axisDoc struct {
	ID           string        `yaml:"id" json:"id"`
	GroupID      string        `yaml:"groupId" json:"groupId"`
	Position     spec.Position `yaml:"position" json:"position"`
	Domain       *yDomainDoc   `yaml:"domain" json:"domain"`
	TickCount    int           `yaml:"ticks" json:"ticks"`
	IntegersOnly bool          `yaml:"integersOnly" json:"integersOnly"`
}

type yDomainDoc struct {
	Min  *float64 `yaml:"min" json:"min"`
	Max  *float64 `yaml:"max" json:"max"`
	Fit  bool     `yaml:"fit" json:"fit"`
	Nice bool     `yaml:"nice" json:"nice"`
}

type fitDoc struct {
	Type  spec.FitType `yaml:"type" json:"type"`
	Value *float64     `yaml:"value" json:"value"`
	// EndValue is a number or "nearest".
	EndValue any `yaml:"endValue" json:"endValue"`
}

type seriesDoc struct {
	Type    string `yaml:"type" json:"type"`
	ID      string `yaml:"id" json:"id"`
	GroupID string `yaml:"groupId" json:"groupId"`
	Name    string `yaml:"name" json:"name"`
	Color   string `yaml:"color" json:"color"`
	Data    []any  `yaml:"data" json:"data"`

	XAccessor        any     `yaml:"xAccessor" json:"xAccessor"`
	YAccessors       []any   `yaml:"yAccessors" json:"yAccessors"`
	Y0Accessors      []any   `yaml:"y0Accessors" json:"y0Accessors"`
	SplitAccessors   []any   `yaml:"splitSeriesAccessors" json:"splitSeriesAccessors"`
	StackAccessors   []any   `yaml:"stackAccessors" json:"stackAccessors"`
	MarkSizeAccessor any     `yaml:"markSizeAccessor" json:"markSizeAccessor"`
	StackMode        string  `yaml:"stackMode" json:"stackMode"`
	XScaleType       string  `yaml:"xScaleType" json:"xScaleType"`
	YScaleType       string  `yaml:"yScaleType" json:"yScaleType"`
	TimeZone         string  `yaml:"timeZone" json:"timeZone"`
	MinBarHeight     float64 `yaml:"minBarHeight" json:"minBarHeight"`
	DisplayValues    bool    `yaml:"displayValueSettings" json:"displayValueSettings"`
	Histogram        bool    `yaml:"enableHistogramMode" json:"enableHistogramMode"`
	Curve            string  `yaml:"curve" json:"curve"`
	Fit              *fitDoc `yaml:"fit" json:"fit"`
	Alignment        string  `yaml:"histogramModeAlignment" json:"histogramModeAlignment"`
}

// ParseYAML decodes a YAML chart document.
func ParseYAML(data []byte) (*Chart, error) {
	var doc chartDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ggchart: decode yaml: %w", err)
	}
	return doc.chart()
}

// ParseJSON decodes a JSON chart document.
func ParseJSON(data []byte) (*Chart, error) {
	var doc chartDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ggchart: decode json: %w", err)
	}
	return doc.chart()
}

// LoadChart reads a chart document from path. Files ending in .json are
// decoded as JSON, anything else as YAML.
func LoadChart(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ggchart: load chart: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

func (doc *chartDoc) chart() (*Chart, error) {
	settings, err := doc.Settings.settings()
	if err != nil {
		return nil, err
	}
	c := &Chart{Settings: settings, Theme: doc.Theme}
	if c.Theme != nil {
		t := DefaultTheme()
		// absent fields keep their default
		mergeTheme(&t, c.Theme)
		c.Theme = &t
	}
	for _, a := range doc.Axes {
		axis := spec.Axis{
			ID:           a.ID,
			GroupID:      a.GroupID,
			Position:     a.Position,
			TickCount:    a.TickCount,
			IntegersOnly: a.IntegersOnly,
		}
		if d := a.Domain; d != nil {
			axis.Domain = &spec.YDomain{
				DomainRange: spec.DomainRange{Min: d.Min, Max: d.Max},
				Fit:         d.Fit,
				Nice:        d.Nice,
			}
		}
		c.Axes = append(c.Axes, axis)
	}
	for i, s := range doc.Series {
		out, err := s.series()
		if err != nil {
			return nil, fmt.Errorf("series %d (%q): %w", i, s.ID, err)
		}
		c.Series = append(c.Series, out)
	}
	return c, nil
}

// mergeTheme copies the fields set in doc over t.
func mergeTheme(t *Theme, doc *Theme) {
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&t.BarsPadding, doc.BarsPadding)
	set(&t.HistogramPadding, doc.HistogramPadding)
	set(&t.MarkSizeRatio, doc.MarkSizeRatio)
	set(&t.PointRadius, doc.PointRadius)
	set(&t.PointStrokeWidth, doc.PointStrokeWidth)
	set(&t.LineStrokeWidth, doc.LineStrokeWidth)
	if doc.BarWidthPixel != nil {
		t.BarWidthPixel = doc.BarWidthPixel
	}
	if doc.BarWidthRatio != nil {
		t.BarWidthRatio = doc.BarWidthRatio
	}
	if len(doc.Palette) > 0 {
		t.Palette = doc.Palette
	}
}

func (d settingsDoc) settings() (spec.Settings, error) {
	s := spec.Settings{
		Rotation: spec.Rotation(d.Rotation),
		SmallMultiples: spec.SmallMultiples{
			Vertical:   d.SmallMultiples.Vertical,
			Horizontal: d.SmallMultiples.Horizontal,
		},
	}
	if err := s.Rotation.Validate(); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}
	if o := d.OrderOrdinalBinsBy; o != nil {
		s.OrderOrdinalBinsBy = &spec.OrderBy{BinAgg: o.BinAgg, Direction: o.Direction}
	}
	xd, err := xDomainOf(d.XDomain)
	if err != nil {
		return s, err
	}
	s.XDomain = xd
	return s, nil
}

// xDomainOf converts a decoded xDomain: a list of categories or a map
// with min, max and minInterval.
func xDomainOf(raw any) (*spec.XDomain, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		cats := make([]scale.Value, 0, len(v))
		for _, x := range v {
			val, ok := scale.ValueOf(x)
			if !ok {
				return nil, fmt.Errorf("%w: xDomain value %v", ErrInvalidChart, x)
			}
			cats = append(cats, val)
		}
		return &spec.XDomain{Categories: cats}, nil
	case map[string]any:
		var r spec.DomainRange
		for key, dst := range map[string]**float64{"min": &r.Min, "max": &r.Max, "minInterval": &r.MinInterval} {
			x, ok := v[key]
			if !ok || x == nil {
				continue
			}
			val, ok := scale.ValueOf(x)
			if !ok || !val.IsNumber() {
				return nil, fmt.Errorf("%w: xDomain %s must be a number", ErrInvalidChart, key)
			}
			f := val.Float()
			*dst = &f
		}
		return &spec.XDomain{Range: &r}, nil
	}
	return nil, fmt.Errorf("%w: xDomain must be a list or a range", ErrInvalidChart)
}

func (d seriesDoc) series() (spec.Series, error) {
	kind, err := spec.ParseKind(d.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}
	base := spec.Base{
		ID:               d.ID,
		GroupID:          d.GroupID,
		Name:             d.Name,
		Color:            d.Color,
		Data:             d.Data,
		XAccessor:        accessor(d.XAccessor),
		YAccessors:       accessors(d.YAccessors),
		Y0Accessors:      accessors(d.Y0Accessors),
		SplitAccessors:   accessors(d.SplitAccessors),
		StackAccessors:   accessors(d.StackAccessors),
		MarkSizeAccessor: accessor(d.MarkSizeAccessor),
		TimeZone:         d.TimeZone,
		XScaleType:       scale.Ordinal,
		YScaleType:       scale.Linear,
	}
	if base.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidChart)
	}
	if err := decodeText(&base.StackMode, d.StackMode); err != nil {
		return nil, err
	}
	if err := decodeText(&base.XScaleType, d.XScaleType); err != nil {
		return nil, err
	}
	if err := decodeText(&base.YScaleType, d.YScaleType); err != nil {
		return nil, err
	}

	switch kind {
	case spec.KindBar:
		return &spec.Bar{
			Base:                base,
			EnableHistogramMode: d.Histogram,
			MinBarHeight:        d.MinBarHeight,
			DisplayValues:       d.DisplayValues,
		}, nil
	case spec.KindBubble:
		return &spec.Bubble{Base: base}, nil
	}

	var curve spec.Curve
	if err := decodeText(&curve, d.Curve); err != nil {
		return nil, err
	}
	var align scale.Alignment
	if err := decodeText(&align, d.Alignment); err != nil {
		return nil, err
	}
	fit, err := d.Fit.fit()
	if err != nil {
		return nil, err
	}
	if kind == spec.KindArea {
		return &spec.Area{Base: base, Curve: curve, Fit: fit, HistogramModeAlignment: align}, nil
	}
	return &spec.Line{Base: base, Curve: curve, Fit: fit, HistogramModeAlignment: align}, nil
}

func (d *fitDoc) fit() (spec.Fit, error) {
	if d == nil {
		return spec.Fit{}, nil
	}
	f := spec.Fit{Type: d.Type, Value: d.Value}
	switch v := d.EndValue.(type) {
	case nil:
	case string:
		if !strings.EqualFold(v, "nearest") {
			return f, fmt.Errorf("%w: unknown fit end value %q", ErrInvalidChart, v)
		}
		f.EndValue = spec.EndNearest
	default:
		val, ok := scale.ValueOf(v)
		if !ok || !val.IsNumber() {
			return f, fmt.Errorf("%w: fit end value %v", ErrInvalidChart, v)
		}
		f.EndValue = spec.EndNumber(val.Float())
	}
	return f, nil
}

type textUnmarshaler interface {
	UnmarshalText([]byte) error
}

// decodeText leaves dst unchanged for an empty s.
func decodeText(dst textUnmarshaler, s string) error {
	if s == "" {
		return nil
	}
	if err := dst.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}
	return nil
}

// accessor accepts a field name or a row index.
func accessor(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprint(int(v))
	}
	return fmt.Sprint(raw)
}

func accessors(raw []any) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = accessor(r)
	}
	return out
}
