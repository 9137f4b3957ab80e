package mathutil

import "math"

// Lerp moves a toward b by fraction t: a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
