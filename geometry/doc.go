// Package geometry provides the shared numeric substrate for polyvol:
// flat-slice vector kernels, seeded random directions, and affine maps.
//
// The geometry package provides:
//
//   - Hot-path vector kernels (Dot, Norm, AddScaled, …) over []float64.
//     Walk steps execute thousands of these per emitted sample; flat-slice
//     loops keep them allocation-free and deterministic.
//   - Uniform random directions on the sphere and uniform points in a ball,
//     always drawn from an explicit *rand.Rand (no ambient randomness).
//   - AffineMap: a validated linear-part + shift pair with a cached
//     determinant, used by rounding to move bodies toward isotropic
//     position and to map volumes back to original coordinates.
//
// Numeric policy:
//
//   - Eps (1e-9) is the single boundary/containment tolerance used across
//     packages; structural checks reject NaN/±Inf on ingestion.
//   - All routines are deterministic given the caller's RNG; none touch
//     global state.
//
// See the body, oracle and walk packages for the consumers.
package geometry
