package scale

import (
	"math"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve without a system zoneinfo
)

// maxTicks bounds tick generation for degenerate domains.
const maxTicks = 10000

type calendarUnit uint8

const (
	unitMillis calendarUnit = iota
	unitDay
	unitWeek
	unitMonth
	unitYear
)

type timeInterval struct {
	unit calendarUnit
	// step counts units, or milliseconds for unitMillis.
	step int
	ms   float64
}

const (
	msSecond = 1000.0
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
	msMonth  = 30 * msDay
	msYear   = 365 * msDay
)

var timeIntervals = []timeInterval{
	{unitMillis, 1 * msSecond, msSecond},
	{unitMillis, 5 * msSecond, 5 * msSecond},
	{unitMillis, 15 * msSecond, 15 * msSecond},
	{unitMillis, 30 * msSecond, 30 * msSecond},
	{unitMillis, msMinute, msMinute},
	{unitMillis, 5 * msMinute, 5 * msMinute},
	{unitMillis, 15 * msMinute, 15 * msMinute},
	{unitMillis, 30 * msMinute, 30 * msMinute},
	{unitMillis, msHour, msHour},
	{unitMillis, 3 * msHour, 3 * msHour},
	{unitMillis, 6 * msHour, 6 * msHour},
	{unitMillis, 12 * msHour, 12 * msHour},
	{unitDay, 1, msDay},
	{unitDay, 2, 2 * msDay},
	{unitWeek, 1, msWeek},
	{unitMonth, 1, msMonth},
	{unitMonth, 3, 3 * msMonth},
	{unitYear, 1, msYear},
}

// LoadTimeZone resolves an IANA zone name, "local", "utc" or a fixed
// offset of the form "utc+3" or "UTC-05:30". Unknown names resolve to UTC.
func LoadTimeZone(name string) *time.Location {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "", "utc", "z", "gmt":
		return time.UTC
	case "local":
		return time.Local
	}
	if rest, ok := strings.CutPrefix(lower, "utc"); ok {
		if offset, ok := parseOffset(rest); ok {
			return time.FixedZone(strings.ToUpper(name), offset)
		}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// parseOffset parses "+3", "-5", "+05:30" or "+0530" into seconds east
// of UTC.
func parseOffset(s string) (int, bool) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	s = strings.ReplaceAll(s[1:], ":", "")
	var hours, minutes int
	var err error
	switch {
	case len(s) <= 2:
		hours, err = strconv.Atoi(s)
	case len(s) == 4:
		if hours, err = strconv.Atoi(s[:2]); err == nil {
			minutes, err = strconv.Atoi(s[2:])
		}
	default:
		return 0, false
	}
	if err != nil || hours > 14 || minutes > 59 {
		return 0, false
	}
	return sign * (hours*3600 + minutes*60), true
}

// pickTimeInterval returns the calendar interval giving about count ticks
// over span milliseconds. It reports false when the span is below a
// second per tick.
func pickTimeInterval(span float64, count int) (timeInterval, bool) {
	target := span / float64(count)
	i := 0
	for i < len(timeIntervals) && timeIntervals[i].ms <= target {
		i++
	}
	switch i {
	case 0:
		return timeInterval{}, false
	case len(timeIntervals):
		years := niceStep(target / msYear)
		return timeInterval{unitYear, max(1, int(years)), years * msYear}, true
	}
	prev, next := timeIntervals[i-1], timeIntervals[i]
	if target/prev.ms < next.ms/target {
		return prev, true
	}
	return next, true
}

// niceStep rounds v to 1, 2 or 5 times a power of ten.
func niceStep(v float64) float64 {
	if v <= 0 {
		return 1
	}
	p := math.Pow(10, math.Floor(math.Log10(v)))
	switch f := v / p; {
	case f < 1.5:
		return p
	case f < 3.5:
		return 2 * p
	case f < 7.5:
		return 5 * p
	}
	return 10 * p
}

// timeTicks returns calendar aligned ticks in epoch milliseconds between
// lo and hi, both inclusive, aligned in loc. Sub-day ticks keep the UTC
// offset of lo so they stay evenly spaced across offset changes.
func timeTicks(lo, hi float64, count int, loc *time.Location) ([]float64, bool) {
	iv, ok := pickTimeInterval(hi-lo, count)
	if !ok {
		return nil, false
	}
	start := time.UnixMilli(int64(math.Floor(lo))).In(loc)

	var out []float64
	emit := func(t time.Time) bool {
		ms := float64(t.UnixMilli())
		if ms > hi || len(out) >= maxTicks {
			return false
		}
		if ms >= lo {
			out = append(out, ms)
		}
		return true
	}

	switch iv.unit {
	case unitMillis:
		_, offset := start.Zone()
		shift := float64(offset) * msSecond
		step := float64(iv.step)
		for v := math.Floor((lo+shift)/step)*step - shift; ; v += step {
			if !emit(time.UnixMilli(int64(v))) {
				break
			}
		}
	case unitDay:
		t := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		for ; ; t = t.AddDate(0, 0, 1) {
			if (t.Day()-1)%iv.step != 0 {
				continue
			}
			if !emit(t) {
				break
			}
		}
	case unitWeek:
		t := time.Date(start.Year(), start.Month(), start.Day()-int(start.Weekday()), 0, 0, 0, 0, loc)
		for ; emit(t); t = t.AddDate(0, 0, 7*iv.step) {
		}
	case unitMonth:
		m := int(start.Month()) - 1
		t := time.Date(start.Year(), time.Month(m-m%iv.step+1), 1, 0, 0, 0, 0, loc)
		for ; emit(t); t = t.AddDate(0, iv.step, 0) {
		}
	case unitYear:
		y := start.Year()
		y -= ((y % iv.step) + iv.step) % iv.step
		for t := time.Date(y, time.January, 1, 0, 0, 0, 0, loc); emit(t); t = t.AddDate(iv.step, 0, 0) {
		}
	}
	return out, true
}
