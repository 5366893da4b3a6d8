package volume

import "errors"

// Sentinel errors for the estimator. Match with errors.Is.
var (
	// ErrBadOptions is returned for invalid configuration, including
	// pairing Estimate or SampleUniform with WalkHMC.
	ErrBadOptions = errors.New("volume: invalid options")

	// ErrNonFiniteRatio is returned when a phase ratio is zero, NaN or
	// Inf even after its one retry on a fresh stream: the telescoping
	// product would be contaminated.
	ErrNonFiniteRatio = errors.New("volume: non-finite phase ratio")

	// ErrNoAnchor is returned when the anchor ball cannot be built or
	// produces no hits inside the body.
	ErrNoAnchor = errors.New("volume: anchor ball misses the body")
)
