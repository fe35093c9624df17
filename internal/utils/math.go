// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// ClampInt restricts v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves from toward to by a fixed fraction and snaps when close, so
// repeated per-frame lerps settle exactly on the target.
func Approach(from, to, t float64) float64 {
	v := Lerp(from, to, t)
	if d := v - to; d < 1e-3 && d > -1e-3 {
		return to
	}
	return v
}
