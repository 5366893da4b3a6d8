package walk

import (
	"math/rand"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// CDHR is coordinate-direction hit-and-run: pick a random coordinate axis,
// query the chord through the current point along it, move to a uniform
// point on that chord. Every proposal is accepted; the chord endpoints are
// exact boundary hits. The cheapest walk per step for halfspace bodies.
type CDHR struct {
	chain
	dir []float64
}

// NewCDHR validates opts and returns an uninitialized walker.
func NewCDHR(opts Options) (*CDHR, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &CDHR{chain: chain{opts: opts}}, nil
}

// Init binds the walker to a body and a strictly interior start point.
func (w *CDHR) Init(b body.Body, start []float64, rng *rand.Rand) error {
	if err := w.chain.init(b, start, rng, w.chain.opts); err != nil {
		return err
	}
	w.dir = make([]float64, b.Dim())

	return nil
}

// Step advances one internal hit-and-run step.
func (w *CDHR) Step() error {
	if !w.initialized() {
		return ErrNotInitialized
	}
	d := w.bdy.Dim()
	axis := w.rng.Intn(d)
	for i := range w.dir {
		w.dir[i] = 0
	}
	w.dir[axis] = 1

	hit, err := w.chord(w.dir, func(dir []float64) {
		// A tangent axis means the body is flat along it at this point;
		// try another axis.
		dir[axis] = 0
		axis = w.rng.Intn(d)
		dir[axis] = 1
	})
	if err != nil {
		return err
	}

	t := hit.TMinus + w.rng.Float64()*(hit.TPlus-hit.TMinus)
	w.cur[axis] += t
	w.lastDir = w.dir
	w.afterStep()

	return nil
}

// RDHR is random-direction hit-and-run: a uniform direction on the sphere,
// then a uniform point on the resulting chord.
type RDHR struct {
	chain
}

// NewRDHR validates opts and returns an uninitialized walker.
func NewRDHR(opts Options) (*RDHR, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &RDHR{chain: chain{opts: opts}}, nil
}

// Init binds the walker to a body and a strictly interior start point.
func (w *RDHR) Init(b body.Body, start []float64, rng *rand.Rand) error {
	return w.chain.init(b, start, rng, w.chain.opts)
}

// Step advances one internal hit-and-run step.
func (w *RDHR) Step() error {
	if !w.initialized() {
		return ErrNotInitialized
	}
	dir := geometry.RandomDirection(w.rng, w.bdy.Dim())

	hit, err := w.chord(dir, func(d []float64) {
		copy(d, geometry.RandomDirection(w.rng, len(d)))
	})
	if err != nil {
		return err
	}

	t := hit.TMinus + w.rng.Float64()*(hit.TPlus-hit.TMinus)
	geometry.AddScaled(w.cur, t, dir)
	w.lastDir = dir
	w.afterStep()

	return nil
}
