package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns a + (b-a)*t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs avoids the float64 round trip through math.Abs call sites expect
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// WrapDegrees keeps an angle in [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}
