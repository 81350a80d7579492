package vmath

import "math"

// Clamp bounds v to [lo, hi]; NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if v >= hi {
		return hi
	}
	if v >= lo {
		return v
	}
	return lo
}

// Approach moves cur toward target by frac of the remaining distance
// With frac in (0,1] the result never passes target
func Approach(cur, target, frac float64) float64 {
	return cur + (target-cur)*frac
}

// Finite returns v, or fallback when v is NaN or infinite
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
