// Package geometry holds the plane computations exported to hosts.
package geometry

import "math"

// Norm2D returns the Euclidean length of the vector (x, y), sqrt(x*x + y*y).
// Non-finite inputs follow IEEE 754 propagation; large finite inputs may
// overflow to +Inf.
func Norm2D(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
