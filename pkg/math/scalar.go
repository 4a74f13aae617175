package math

import "github.com/chewxy/math32"

// Pi as float32.
const Pi = math32.Pi

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / Pi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
