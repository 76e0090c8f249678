package scale

import "math"

// LimitLogDomain moves domain bounds away from zero so a logarithmic scale
// can map them. A zero bound becomes 1 or -1 depending on the sign of the
// other bound. A domain crossing zero keeps its larger-magnitude side.
// A positive minLimit raises bounds that are closer to zero than the limit.
func LimitLogDomain(domain [2]float64, minLimit float64) [2]float64 {
	lo, hi := domain[0], domain[1]
	limit := math.Abs(minLimit)
	if limit > 0 {
		if lo > 0 && lo < limit {
			if hi > limit {
				return [2]float64{limit, hi}
			}
			return [2]float64{limit, limit}
		}
		if hi < 0 && hi > -limit {
			if lo < -limit {
				return [2]float64{lo, -limit}
			}
			return [2]float64{-limit, -limit}
		}
	}

	switch {
	case lo == 0:
		switch {
		case hi > 0:
			return [2]float64{1, hi}
		case hi < 0:
			return [2]float64{-1, hi}
		}
		return [2]float64{0, 0}
	case hi == 0:
		switch {
		case lo > 0:
			return [2]float64{lo, 1}
		case lo < 0:
			return [2]float64{lo, -1}
		}
		return [2]float64{0, 0}
	case lo < 0 && hi > 0:
		if math.Abs(hi)-math.Abs(lo) >= 0 {
			return [2]float64{1, hi}
		}
		return [2]float64{lo, -1}
	case lo > 0 && hi < 0:
		if math.Abs(lo)-math.Abs(hi) >= 0 {
			return [2]float64{lo, 1}
		}
		return [2]float64{-1, hi}
	}
	return domain
}
