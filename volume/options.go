// Package volume: configuration surface, flow-style option struct with
// documented defaults.

package volume

import "math"

// WalkType selects the sampler driving each estimator phase.
type WalkType int

const (
	// WalkCDHR is coordinate-direction hit-and-run (default).
	WalkCDHR WalkType = iota
	// WalkRDHR is random-direction hit-and-run.
	WalkRDHR
	// WalkBall is the ball walk.
	WalkBall
	// WalkBilliard is the billiard walk.
	WalkBilliard
	// WalkHMC is the reflective Hamiltonian walk. It samples the
	// Boltzmann distribution, not the uniform one, so it is valid for
	// SampleBoltzmann but rejected by Estimate.
	WalkHMC
)

// DEFAULTS - single source of truth for the estimator.
const (
	// DefaultSamples is the per-phase sample count.
	DefaultSamples = 1000

	// DefaultWalkLength is the per-sample internal step count.
	DefaultWalkLength = 10

	// maxPhases caps the bridging chain length; reaching it means the
	// body is pathologically scaled relative to its inscribed ball.
	maxPhases = 200

	// probeDirections is the number of extra random directions (beyond
	// the coordinate axes) probed for the inscribed-radius estimate.
	probeDirections = 16
)

// Options configures Estimate / SampleUniform / SampleBoltzmann.
//   - Walk: sampler type (WalkCDHR default).
//   - WalkLength: internal steps per sample; 0 ⇒ DefaultWalkLength.
//   - Samples: samples per phase; 0 ⇒ DefaultSamples.
//   - Rounding: run ellipsoid rounding before estimating.
//   - Delta: ball-walk radius, 0 ⇒ auto.
//   - Seed: master seed; 0 ⇒ package default, reproducible.
//   - Repeats: independent estimates averaged in parallel; 0 ⇒ 1.
//   - Diagnostics: retain per-phase ratios in Result.
//   - Bias, Temperature: Boltzmann parameters for SampleBoltzmann.
type Options struct {
	Walk        WalkType
	WalkLength  int
	Samples     int
	Rounding    bool
	Delta       float64
	Seed        int64
	Repeats     int
	Diagnostics bool
	Bias        []float64
	Temperature float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Walk:       WalkCDHR,
		WalkLength: DefaultWalkLength,
		Samples:    DefaultSamples,
	}
}

// Validate rejects nonsensical values.
func (o Options) Validate() error {
	if o.Walk < WalkCDHR || o.Walk > WalkHMC {
		return ErrBadOptions
	}
	if o.WalkLength < 0 || o.Samples < 0 || o.Repeats < 0 {
		return ErrBadOptions
	}
	if o.Delta < 0 || math.IsNaN(o.Delta) || math.IsInf(o.Delta, 0) {
		return ErrBadOptions
	}
	if o.Temperature < 0 || math.IsNaN(o.Temperature) {
		return ErrBadOptions
	}

	return nil
}

func (o Options) normalized() Options {
	if o.WalkLength == 0 {
		o.WalkLength = DefaultWalkLength
	}
	if o.Samples == 0 {
		o.Samples = DefaultSamples
	}
	if o.Repeats == 0 {
		o.Repeats = 1
	}

	return o
}
