// Package round estimates a representative ellipsoid for a convex body and
// affinely transforms the body toward isotropic position, which shortens
// the mixing time of every subsequent walk.
//
// The loop is bounded with an explicit termination predicate, never an
// unbounded fixed point: sample the current body, estimate the covariance
// ellipsoid, transform by its (volume-normalized) Cholesky factor, repeat
// until the ellipsoid's axis-length ratio falls under Threshold or
// MaxIterations is exhausted. Running out of iterations degrades to
// best-effort rounding - Result.Converged reports it, sampling proceeds.
//
// The cumulative affine map and its determinant (the "round value") ride
// along in Result so callers can always map estimates back to original
// coordinates with a single multiplicative correction. Each iteration's
// linear step is normalized to unit determinant - rounding reshapes, it
// never rescales - so a body that is already isotropic (a ball) reports
// both an axis ratio and a round value of ≈ 1.
package round
