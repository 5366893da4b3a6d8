// Package geometry: seeded random geometric primitives.
//
// Every routine takes the caller's *rand.Rand explicitly; no function in
// this file (or package) reads global random state. Chains own their RNG.

package geometry

import (
	"math"
	"math/rand"
)

// RandomDirection returns a uniformly distributed unit vector on S^{d-1},
// built from d independent Gaussians and normalized.
//
// The degenerate all-zeros draw (probability ~0, but possible with a
// pathological source) is retried rather than returned.
//
// Complexity: O(d) expected.
func RandomDirection(rng *rand.Rand, d int) []float64 {
	v := make([]float64, d)
	for {
		for i := 0; i < d; i++ {
			v[i] = rng.NormFloat64()
		}
		n := Norm(v)
		if n > 0 {
			Scale(v, 1/n)

			return v
		}
	}
}

// RandomInBall returns a uniformly distributed point in the closed ball of
// radius r centered at the origin: a uniform direction scaled by r·U^{1/d}.
//
// Complexity: O(d).
func RandomInBall(rng *rand.Rand, d int, r float64) []float64 {
	v := RandomDirection(rng, d)
	Scale(v, r*math.Pow(rng.Float64(), 1/float64(d)))

	return v
}

// UnitBallVolume returns the Lebesgue volume of the d-dimensional unit ball,
// π^{d/2} / Γ(d/2 + 1). Used as the known-volume anchor of the estimator.
func UnitBallVolume(d int) float64 {
	return math.Pow(math.Pi, float64(d)/2) / math.Gamma(float64(d)/2+1)
}
