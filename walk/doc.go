// Package walk implements the random-walk samplers that drive a point
// through a convex body via boundary-oracle queries.
//
// All walks share one state-machine shape: initialize at a strictly
// interior point, repeat {propose a move using the oracle; accept/reject
// or move directly}, and emit the current point every WalkLength internal
// steps. WalkLength is the mixing knob: larger values cut sample
// autocorrelation at proportional cost.
//
// Samplers:
//
//   - CDHR - coordinate-direction hit-and-run: random axis, uniform point
//     on the chord. No rejection; chord endpoints are exact boundary hits.
//   - RDHR - random-direction hit-and-run: uniform sphere direction,
//     uniform point on the chord.
//   - BallWalk - uniform proposal in a delta-ball, accepted iff inside the
//     body (membership test only, no chord query); a rejection re-emits
//     the current point, preserving the stationary distribution.
//   - BilliardWalk - travel a random-length segment, reflecting off the
//     boundary (oracle normal) up to a reflection cap; cheaper
//     decorrelation per emitted sample at higher per-step oracle cost.
//   - HMC - discretized Hamiltonian dynamics under a linear potential
//     c·x/T with elastic boundary reflections: Boltzmann-distributed
//     samples rather than uniform ones. Exceeding the reflection cap
//     rejects the move, same policy as the ball walk.
//
// Numeric policy shared by all walks: every oracle query runs against the
// current (possibly rounded) representation; all randomness comes from the
// chain's explicitly owned *rand.Rand (see rng.go), so runs are
// reproducible by seed; a drift check every CheckInterval steps re-snaps a
// point that floating-point error pushed outside, instead of silently
// renormalizing each step.
//
// Degenerate oracle outcomes (tangent directions) are resampled locally up
// to a fixed budget and never surface to the caller.
package walk
