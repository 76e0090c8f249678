package spec

import "fmt"

// FitType selects how null y values of a non-stacked series are filled.
type FitType uint8

const (
	FitNone FitType = iota
	FitZero
	FitExplicit
	FitCarry
	FitLookahead
	FitNearest
	FitAverage
	FitLinear
)

var fitTypeNames = [...]string{
	FitNone:      "none",
	FitZero:      "zero",
	FitExplicit:  "explicit",
	FitCarry:     "carry",
	FitLookahead: "lookahead",
	FitNearest:   "nearest",
	FitAverage:   "average",
	FitLinear:    "linear",
}

func (f FitType) String() string {
	if int(f) < len(fitTypeNames) {
		return fitTypeNames[f]
	}
	return fmt.Sprintf("FitType(%d)", f)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FitType) UnmarshalText(b []byte) error {
	i, ok := lookup(fitTypeNames[:], string(b))
	if !ok {
		return fmt.Errorf("spec: unknown fit type %q", b)
	}
	*f = FitType(i)
	return nil
}

type endValueKind uint8

const (
	endUnset endValueKind = iota
	endNumber
	endNearest
)

// EndValue fills leading and trailing nulls a fit policy cannot resolve.
// The zero EndValue leaves them unfilled.
type EndValue struct {
	kind  endValueKind
	value float64
}

// EndNearest fills end values from whichever neighbour exists.
var EndNearest = EndValue{kind: endNearest}

// EndNumber fills end values with v.
func EndNumber(v float64) EndValue {
	return EndValue{kind: endNumber, value: v}
}

// IsSet reports whether an end value policy is configured.
func (e EndValue) IsSet() bool { return e.kind != endUnset }

// IsNearest reports whether the nearest neighbour should be used.
func (e EndValue) IsNearest() bool { return e.kind == endNearest }

// Number returns the numeric end value, if any.
func (e EndValue) Number() (float64, bool) {
	return e.value, e.kind == endNumber
}

// Fit configures the fit policy of a line or area series.
type Fit struct {
	Type FitType

	// Value is the fill value for FitExplicit.
	Value *float64

	EndValue EndValue
}

// Normalize resolves FitExplicit without a value to FitNone.
func (f Fit) Normalize() Fit {
	if f.Type == FitExplicit && f.Value == nil {
		f.Type = FitNone
	}
	return f
}
