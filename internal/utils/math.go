// internal/utils/math.go
package utils

import "math"

const TwoPi = 2 * math.Pi

// NormalizeAngle brings an angle into the range [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// AngleInArc reports whether angle lies inside the arc starting at start
// and spanning width radians counterclockwise. Handles wrap-around at 0.
func AngleInArc(angle, start, width float64) bool {
	if width <= 0 {
		return false
	}
	if width >= TwoPi {
		return true
	}
	offset := NormalizeAngle(angle - start)
	return offset <= width
}

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
