// Package walk: sampler configuration with documented defaults.
// Plain option struct in the flow/tsp style: DefaultOptions is the single
// source of truth for zero-value behavior, Validate rejects nonsense before
// any chain starts.

package walk

import "math"

// DEFAULTS - single source of truth for sampler behavior.
const (
	// DefaultWalkLength is the number of internal steps per emitted sample.
	DefaultWalkLength = 10

	// DefaultCheckInterval is the drift-detection cadence: a membership
	// test runs every this many internal steps and re-snaps on failure.
	DefaultCheckInterval = 64

	// DefaultMaxReflections caps boundary bounces per billiard/HMC move,
	// scaled by dimension at Init (cap = DefaultMaxReflections·d).
	DefaultMaxReflections = 10

	// DefaultHMCSteps is the leapfrog step count per Hamiltonian move.
	DefaultHMCSteps = 10

	// DefaultTemperature is the Boltzmann temperature when none is set.
	DefaultTemperature = 1.0

	// directionBudget bounds retries on degenerate (tangent) directions.
	directionBudget = 100
)

// Options configures a sampler chain.
//   - WalkLength: internal steps per emitted sample (≥ 1).
//   - Seed: RNG seed; 0 means the package default (reproducible).
//   - Delta: ball-walk radius; 0 means auto-estimate 4r̂/√d from probed
//     boundary distances at the start point.
//   - Tau: billiard mean segment length; 0 means auto-estimate from the
//     mean probed chord.
//   - MaxReflections: bounce cap per move; 0 means DefaultMaxReflections·d.
//   - CheckInterval: drift-check cadence; 0 means DefaultCheckInterval.
//   - Bias, Temperature: the HMC potential c·x/T; nil Bias means the first
//     coordinate axis, Temperature 0 means DefaultTemperature.
//   - HMCSteps: leapfrog steps per move; 0 means DefaultHMCSteps.
type Options struct {
	WalkLength     int
	Seed           int64
	Delta          float64
	Tau            float64
	MaxReflections int
	CheckInterval  int
	Bias           []float64
	Temperature    float64
	HMCSteps       int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		WalkLength:  DefaultWalkLength,
		Temperature: DefaultTemperature,
	}
}

// Validate rejects nonsensical values. Zero means "use the default" for
// every tunable, so only explicit negatives and non-finite reals fail.
func (o Options) Validate() error {
	if o.WalkLength < 0 || o.MaxReflections < 0 || o.CheckInterval < 0 || o.HMCSteps < 0 {
		return ErrBadOptions
	}
	if o.Delta < 0 || o.Tau < 0 || o.Temperature < 0 {
		return ErrBadOptions
	}
	for _, v := range []float64{o.Delta, o.Tau, o.Temperature} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadOptions
		}
	}

	return nil
}

// normalized fills zero fields with their documented defaults.
func (o Options) normalized(dim int) Options {
	if o.WalkLength == 0 {
		o.WalkLength = DefaultWalkLength
	}
	if o.CheckInterval == 0 {
		o.CheckInterval = DefaultCheckInterval
	}
	if o.MaxReflections == 0 {
		o.MaxReflections = DefaultMaxReflections * dim
	}
	if o.Temperature == 0 {
		o.Temperature = DefaultTemperature
	}
	if o.HMCSteps == 0 {
		o.HMCSteps = DefaultHMCSteps
	}

	return o
}
