package spec

import (
	"fmt"
	"strings"
)

// Kind identifies the series variant.
type Kind uint8

const (
	KindBar Kind = iota
	KindLine
	KindArea
	KindBubble
)

var kindNames = [...]string{
	KindBar:    "bar",
	KindLine:   "line",
	KindArea:   "area",
	KindBubble: "bubble",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind parses a series kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	i, ok := lookup(kindNames[:], s)
	if !ok {
		return 0, fmt.Errorf("spec: unknown series type %q", s)
	}
	return Kind(i), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// StackMode selects how stacked values are normalized.
type StackMode uint8

const (
	StackModeNone StackMode = iota
	StackModePercentage
)

var stackModeNames = [...]string{
	StackModeNone:       "none",
	StackModePercentage: "percentage",
}

func (m StackMode) String() string {
	if int(m) < len(stackModeNames) {
		return stackModeNames[m]
	}
	return fmt.Sprintf("StackMode(%d)", m)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *StackMode) UnmarshalText(b []byte) error {
	i, ok := lookup(stackModeNames[:], string(b))
	if !ok {
		return fmt.Errorf("spec: unknown stack mode %q", b)
	}
	*m = StackMode(i)
	return nil
}

// Curve selects the interpolation between line and area points.
type Curve uint8

const (
	CurveLinear Curve = iota
	CurveStep
	CurveStepBefore
	CurveStepAfter
	CurveMonotoneX
	CurveBasis
	CurveCardinal
	CurveNatural
)

var curveNames = [...]string{
	CurveLinear:     "linear",
	CurveStep:       "step",
	CurveStepBefore: "stepBefore",
	CurveStepAfter:  "stepAfter",
	CurveMonotoneX:  "monotoneX",
	CurveBasis:      "basis",
	CurveCardinal:   "cardinal",
	CurveNatural:    "natural",
}

func (c Curve) String() string {
	if int(c) < len(curveNames) {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", c)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(b []byte) error {
	i, ok := lookup(curveNames[:], string(b))
	if !ok {
		return fmt.Errorf("spec: unknown curve %q", b)
	}
	*c = Curve(i)
	return nil
}

// Position places an axis around the chart.
type Position uint8

const (
	Left Position = iota
	Right
	Top
	Bottom
)

var positionNames = [...]string{
	Left:   "left",
	Right:  "right",
	Top:    "top",
	Bottom: "bottom",
}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", p)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(b []byte) error {
	i, ok := lookup(positionNames[:], string(b))
	if !ok {
		return fmt.Errorf("spec: unknown axis position %q", b)
	}
	*p = Position(i)
	return nil
}

// IsVertical reports whether the axis runs top to bottom.
func (p Position) IsVertical() bool { return p == Left || p == Right }

func lookup(names []string, s string) (int, bool) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, true
		}
	}
	return 0, false
}
