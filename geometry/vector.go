// Package geometry: flat-slice vector kernels.
//
// These helpers are the inner loops of every walk step and oracle query.
// They assume the caller has already validated lengths (programmer error
// otherwise) and never allocate unless documented.

package geometry

import "math"

// Eps is the shared boundary/containment tolerance.
// A point within Eps of a facet is treated as "on the boundary".
const Eps = 1e-9

// Dot returns the inner product of a and b.
// Precondition: len(a) == len(b). Complexity: O(d).
func Dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// Norm returns the Euclidean norm of a. Complexity: O(d).
func Norm(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Scale multiplies a by s in place. Complexity: O(d).
func Scale(a []float64, s float64) {
	for i := range a {
		a[i] *= s
	}
}

// AddScaled sets dst[i] += s * v[i] in place.
// Precondition: len(dst) == len(v). Complexity: O(d).
func AddScaled(dst []float64, s float64, v []float64) {
	for i := range v {
		dst[i] += s * v[i]
	}
}

// Sub returns a-b as a fresh slice. Complexity: O(d), one allocation.
func Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// Clone returns a fresh copy of a. Walk emissions clone so that emitted
// points never alias mutable walk state.
func Clone(a []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)

	return out
}

// Zeros returns a fresh zero vector of length d.
func Zeros(d int) []float64 {
	return make([]float64, d)
}

// IsFinite reports whether every entry of a is finite (no NaN, no ±Inf).
func IsFinite(a []float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
