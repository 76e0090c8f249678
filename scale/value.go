package scale

import (
	"cmp"
	"math"
	"strconv"
	"strings"
	"time"
)

type valueKind uint8

const (
	kindNull valueKind = iota
	kindNumber
	kindCategory
)

// Value is a single domain value: a number, a category string, or null.
// The zero Value is null. Values are comparable and can be used as map keys.
type Value struct {
	kind valueKind
	num  float64
	str  string
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// Category returns a categorical Value.
func Category(s string) Value {
	return Value{kind: kindCategory, str: s}
}

// Numbers converts a list of floats into Values.
func Numbers(fs ...float64) []Value {
	out := make([]Value, len(fs))
	for i, f := range fs {
		out[i] = Number(f)
	}
	return out
}

// Categories converts a list of strings into Values.
func Categories(ss ...string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Category(s)
	}
	return out
}

// ValueOf converts a raw datum field into a Value. Supported inputs are
// Go numeric types, strings, time.Time (as epoch milliseconds) and Value
// itself. It reports false for anything else, including NaN.
func ValueOf(x any) (Value, bool) {
	switch v := x.(type) {
	case Value:
		return v, !v.IsNull()
	case float64:
		if math.IsNaN(v) {
			return Value{}, false
		}
		return Number(v), true
	case float32:
		if math.IsNaN(float64(v)) {
			return Value{}, false
		}
		return Number(float64(v)), true
	case int:
		return Number(float64(v)), true
	case int8:
		return Number(float64(v)), true
	case int16:
		return Number(float64(v)), true
	case int32:
		return Number(float64(v)), true
	case int64:
		return Number(float64(v)), true
	case uint:
		return Number(float64(v)), true
	case uint8:
		return Number(float64(v)), true
	case uint16:
		return Number(float64(v)), true
	case uint32:
		return Number(float64(v)), true
	case uint64:
		return Number(float64(v)), true
	case string:
		return Category(v), true
	case time.Time:
		return Number(float64(v.UnixMilli())), true
	}
	return Value{}, false
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == kindNull }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.kind == kindNumber }

// IsCategory reports whether v holds a category string.
func (v Value) IsCategory() bool { return v.kind == kindCategory }

// Float returns the numeric value, or NaN when v is not a number.
func (v Value) Float() float64 {
	if v.kind != kindNumber {
		return math.NaN()
	}
	return v.num
}

// String formats v for keys and labels.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case kindCategory:
		return v.str
	}
	return "null"
}

// Raw returns the underlying Go value: float64, string or nil.
func (v Value) Raw() any {
	switch v.kind {
	case kindNumber:
		return v.num
	case kindCategory:
		return v.str
	}
	return nil
}

// Compare orders null before numbers and numbers before categories.
// Numbers compare numerically and categories lexically.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case kindNumber:
		return cmp.Compare(a.num, b.num)
	case kindCategory:
		return strings.Compare(a.str, b.str)
	}
	return 0
}
