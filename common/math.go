package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dist returns the Euclidean distance between two points.
func Dist(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}
