// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Wrap returns v modulo m in [0, m), also for negative v.
// m must be positive.
func Wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	// -tiny + m округляется до m во float64
	if r >= m {
		r = 0
	}
	return r
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves from toward to so that about 95% of the distance is
// covered after settle seconds, independent of the tick rate.
func Approach(from, to, dt, settle float64) float64 {
	if settle <= 0 {
		return to
	}
	k := 3 / settle // e^-3 ≈ 0.05
	return Lerp(from, to, 1-math.Exp(-k*dt))
}
