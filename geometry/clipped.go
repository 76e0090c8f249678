package geometry

import (
	"github.com/gogpu/ggchart/scale"
	"github.com/gogpu/ggchart/series"
)

// ClippedRanges returns the x pixel intervals of data drawn from fitted
// values. Each interval runs from the last real datum before a gap to the
// first real datum after it; a leading gap starts at the range start and a
// trailing gap ends at the range end. When no datum is real the whole
// range is clipped.
func ClippedRanges(data []series.Datum, xScale scale.Scale, xScaleOffset float64) []ClippedRange {
	rng := xScale.Range()
	allFilled := true
	for _, d := range data {
		if !d.IsFilled() {
			allFilled = false
			break
		}
	}
	if allFilled {
		return []ClippedRange{{rng[0], rng[1]}}
	}

	var out []ClippedRange
	var lastReal float64
	hasReal, inGap := false, false
	for _, d := range data {
		px, ok := xScale.Scale(d.X)
		if !ok {
			continue
		}
		x := px - xScaleOffset + xScale.Bandwidth()/2
		if d.IsFilled() {
			inGap = true
			continue
		}
		if inGap {
			start := rng[0]
			if hasReal {
				start = lastReal
			}
			out = append(out, ClippedRange{start, x})
			inGap = false
		}
		lastReal, hasReal = x, true
	}
	if inGap && hasReal {
		out = append(out, ClippedRange{lastReal, rng[1]})
	}
	return out
}
