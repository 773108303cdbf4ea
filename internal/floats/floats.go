// Package floats provides scalar float64 vector kernels.
// This is an internal package - external users should use the distance package.
package floats

import "math"

// Dot calculates the dot product of two slices.
// Assumes slices are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance.
// Assumes slices are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// Norm calculates the L2 norm of a slice.
func Norm(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Manhattan calculates the L1 distance.
// Assumes slices are the same length (caller's responsibility).
func Manhattan(a, b []float64) float64 {
	var distance float64
	for i := range a {
		distance += math.Abs(a[i] - b[i])
	}

	return distance
}

// Chebyshev calculates the L-infinity distance.
// Assumes slices are the same length (caller's responsibility).
func Chebyshev(a, b []float64) float64 {
	var distance float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > distance {
			distance = d
		}
	}

	return distance
}
