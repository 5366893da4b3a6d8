// Package volume implements the telescoping multi-phase volume estimator.
//
// Strategy (sequence of balls): anchor the target body K on a small ball
// B(c, r₀) around a deep interior point, bridge it to K through the nested
// intersections Kᵢ = K ∩ B(c, r₀·2^{i/d}), and estimate each adjacent
// ratio vol(Kᵢ₋₁)/vol(Kᵢ) as the fraction of uniform samples from Kᵢ that
// also satisfy Kᵢ₋₁'s membership predicate. The product of the anchor
// volume and the inverse ratios is the volume estimate:
//
//	vol(K) = vol(B(r₀)) · anchorFrac · Π 1/ratioᵢ  [· rounding det]
//
// The anchor fraction is measured by direct rejection draws in B(r₀), so
// the estimate stays unbiased even when the inscribed-ball estimate
// slightly overshoots K.
//
// Every phase is an independent chain: its own walker, its own derived
// RNG stream, no shared mutable state. Phases run on separate goroutines
// and a single coordinator multiplies the ratios after the join. Repeats
// (independent full estimates, averaged) parallelize the same way.
//
// A NaN/Inf or zero phase ratio is retried once on a fresh stream and then
// aborts the run with ErrNonFiniteRatio - it never contaminates the
// product. Cancellation is context-based between phases; inside a phase
// the walk budget itself bounds the work.
package volume
