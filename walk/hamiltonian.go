package walk

import (
	"math"
	"math/rand"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// HMC is the reflective Hamiltonian walk: discretized Hamiltonian dynamics
// under the linear potential U(x) = c·x/T, with elastic reflections off
// the boundary whenever a leapfrog drift would exit. The stationary law is
// the Boltzmann distribution e^{−c·x/T} restricted to the body, not the
// uniform one. A fixed leapfrog step count and a reflection cap bound
// every move; exceeding the cap rejects the move and the prior point is
// re-emitted, the same policy as the ball walk's rejection.
type HMC struct {
	chain
	bias []float64 // unit potential direction c
	temp float64
	eta  float64 // leapfrog step size
}

// NewHMC validates opts and returns an uninitialized walker.
// Options.Bias defaults to the first coordinate axis; Options.Temperature
// to DefaultTemperature. The step size is auto-scaled at Init from the
// probed boundary distances.
func NewHMC(opts Options) (*HMC, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Bias != nil && !geometry.IsFinite(opts.Bias) {
		return nil, ErrBadOptions
	}

	return &HMC{chain: chain{opts: opts}}, nil
}

// Init binds the walker and fixes the potential direction and step size.
// The bias length is rejected before any chain state is populated, so a
// failed Init leaves the walker uninitialized.
func (w *HMC) Init(b body.Body, start []float64, rng *rand.Rand) error {
	if b != nil && w.chain.opts.Bias != nil && len(w.chain.opts.Bias) != b.Dim() {
		return ErrBadOptions
	}
	if err := w.chain.init(b, start, rng, w.chain.opts); err != nil {
		return err
	}

	d := b.Dim()
	if w.opts.Bias == nil {
		w.bias = make([]float64, d)
		w.bias[0] = 1
	} else {
		w.bias = geometry.Clone(w.opts.Bias)
		if n := geometry.Norm(w.bias); n > 0 {
			geometry.Scale(w.bias, 1/n)
		} else {
			w.bias[0] = 1
		}
	}
	w.temp = w.opts.Temperature

	r, err := minBoundaryDistance(&w.chain)
	if err != nil {
		return err
	}
	w.eta = r / math.Sqrt(float64(d))

	return nil
}

// Step runs one Hamiltonian move: momentum refresh, HMCSteps leapfrog
// iterations with reflective drifts, and commit (or rejection on a
// reflection-budget overrun).
func (w *HMC) Step() error {
	if !w.initialized() {
		return ErrNotInitialized
	}
	d := w.bdy.Dim()

	mom := make([]float64, d)
	for i := range mom {
		mom[i] = w.rng.NormFloat64()
	}
	pos := geometry.Clone(w.cur)
	budget := w.opts.MaxReflections

	for step := 0; step < w.opts.HMCSteps; step++ {
		// Half kick: ∇U = c/T is constant for the linear potential.
		geometry.AddScaled(mom, -w.eta/(2*w.temp), w.bias)

		ok := w.drift(pos, mom, &budget)
		if !ok {
			// Reflection budget exceeded: reject, keep the prior point.
			w.afterStep()

			return nil
		}

		geometry.AddScaled(mom, -w.eta/(2*w.temp), w.bias)
	}

	w.cur = pos
	w.lastDir = mom
	w.afterStep()

	return nil
}

// drift advances pos by eta·mom with elastic boundary reflections,
// updating mom's direction on each bounce. Returns false when the bounce
// budget runs out or the oracle degenerates mid-drift.
func (w *HMC) drift(pos, mom []float64, budget *int) bool {
	speed := geometry.Norm(mom)
	if speed == 0 {
		return true
	}
	dir := geometry.Clone(mom)
	geometry.Scale(dir, 1/speed)
	remaining := w.eta * speed

	for *budget > 0 {
		hit, err := w.orc.Chord(pos, dir)
		if err != nil {
			return false
		}
		if hit.TPlus >= remaining {
			geometry.AddScaled(pos, remaining, dir)
			// Write the possibly reflected direction back into momentum.
			for i := range mom {
				mom[i] = dir[i] * speed
			}

			return true
		}

		geometry.AddScaled(pos, hit.TPlus*(1-insetFactor), dir)
		remaining -= hit.TPlus
		*budget--

		bpt := geometry.Clone(pos)
		geometry.AddScaled(bpt, hit.TPlus*insetFactor, dir)
		n, err := w.orc.Normal(bpt)
		if err != nil {
			return false
		}
		geometry.AddScaled(dir, -2*geometry.Dot(dir, n), n)
	}

	return false
}
