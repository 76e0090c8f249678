package scale

import (
	"fmt"
	"strings"
)

// Type identifies how a domain maps onto pixels.
type Type uint8

const (
	// Linear is a continuous numeric scale.
	Linear Type = iota
	// Ordinal is a categorical band scale.
	Ordinal
	// Log is a continuous logarithmic scale.
	Log
	// Sqrt is a continuous square root scale.
	Sqrt
	// Time is a continuous scale over epoch milliseconds.
	Time
)

var typeNames = [...]string{
	Linear:  "linear",
	Ordinal: "ordinal",
	Log:     "log",
	Sqrt:    "sqrt",
	Time:    "time",
}

// String returns the lower-case type name.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// IsContinuous reports whether t is not Ordinal.
func (t Type) IsContinuous() bool { return t != Ordinal }

// ParseType parses a type name case-insensitively.
func ParseType(s string) (Type, error) {
	for i, n := range typeNames {
		if strings.EqualFold(s, n) {
			return Type(i), nil
		}
	}
	return Linear, fmt.Errorf("scale: unknown scale type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Alignment positions lines and points inside a histogram bar slot.
type Alignment uint8

const (
	// AlignStart aligns to the start of the bar slot.
	AlignStart Alignment = iota
	// AlignCenter aligns to the middle of the bar slot.
	AlignCenter
	// AlignEnd aligns to the end of the bar slot.
	AlignEnd
)

var alignmentNames = [...]string{
	AlignStart:  "start",
	AlignCenter: "center",
	AlignEnd:    "end",
}

// String returns the lower-case alignment name.
func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(b []byte) error {
	for i, n := range alignmentNames {
		if strings.EqualFold(string(b), n) {
			*a = Alignment(i)
			return nil
		}
	}
	return fmt.Errorf("scale: unknown alignment %q", b)
}
