package utils

import "math"

// Easing functions for animation speed curves. All take a progress value
// t in [0, 1] and return the eased value in [0, 1].
//
// Reference: https://easings.net/

// EaseLinear returns t unchanged (uniform motion).
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic starts fast and ends slow.
// f(t) = 1 - (1-t)^3
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic starts slow, speeds up, ends slow.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad starts somewhat fast and ends slow; softer than cubic.
// f(t) = 1 - (1-t)^2
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp interpolates between a and b; t=0 returns a, t=1 returns b.
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
