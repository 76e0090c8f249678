package series

import (
	"math"
	"strconv"
	"strings"
)

// Number is an optional float64. The zero value is null.
type Number struct {
	Value float64
	Valid bool
}

// Null is the null Number.
var Null Number

// Num returns a valid Number.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Or returns the value, or def when n is null.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

// String formats n, printing "null" for the null value.
func (n Number) String() string {
	if !n.Valid {
		return "null"
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// castNumber converts a raw field into a Number. Nil and missing fields
// are null. It reports false for values that are present but not numeric.
func castNumber(x any) (Number, bool) {
	switch v := x.(type) {
	case nil:
		return Null, true
	case float64:
		if math.IsNaN(v) {
			return Null, false
		}
		return Num(v), true
	case float32:
		return castNumber(float64(v))
	case int:
		return Num(float64(v)), true
	case int8:
		return Num(float64(v)), true
	case int16:
		return Num(float64(v)), true
	case int32:
		return Num(float64(v)), true
	case int64:
		return Num(float64(v)), true
	case uint:
		return Num(float64(v)), true
	case uint8:
		return Num(float64(v)), true
	case uint16:
		return Num(float64(v)), true
	case uint32:
		return Num(float64(v)), true
	case uint64:
		return Num(float64(v)), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) {
			return Null, false
		}
		return Num(f), true
	}
	return Null, false
}
