package walk

import (
	"math"
	"math/rand"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// BallWalk proposes a uniform point in a delta-ball around the current
// point and accepts iff the proposal is inside the body - a membership
// test only, never a chord query. A rejection re-emits the current point;
// counting rejected steps is what preserves the uniform stationary
// distribution.
type BallWalk struct {
	chain
	delta float64
}

// NewBallWalk validates opts and returns an uninitialized walker.
// Options.Delta == 0 auto-estimates the radius at Init as 4r̂/√d, with r̂
// the smallest probed boundary distance from the start point.
func NewBallWalk(opts Options) (*BallWalk, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &BallWalk{chain: chain{opts: opts}}, nil
}

// Init binds the walker and fixes delta for the lifetime of the chain.
func (w *BallWalk) Init(b body.Body, start []float64, rng *rand.Rand) error {
	if err := w.chain.init(b, start, rng, w.chain.opts); err != nil {
		return err
	}
	w.delta = w.opts.Delta
	if w.delta == 0 {
		r, err := minBoundaryDistance(&w.chain)
		if err != nil {
			return err
		}
		w.delta = 4 * r / math.Sqrt(float64(b.Dim()))
	}

	return nil
}

// Delta returns the effective proposal radius.
func (w *BallWalk) Delta() float64 { return w.delta }

// Step proposes and accepts/rejects one move.
func (w *BallWalk) Step() error {
	if !w.initialized() {
		return ErrNotInitialized
	}
	prop := geometry.Clone(w.cur)
	offset := geometry.RandomInBall(w.rng, w.bdy.Dim(), w.delta)
	geometry.AddScaled(prop, 1, offset)

	if w.bdy.Contains(prop) {
		w.cur = prop
		w.lastDir = offset
	}
	// On rejection the current point stands and is re-emitted by Sample;
	// the step still counts.
	w.afterStep()

	return nil
}

// minBoundaryDistance probes the coordinate axes from the current point
// and returns the smallest one-sided chord parameter: a cheap lower-bound
// proxy for the local inscribed radius, used by auto-tuned step sizes.
func minBoundaryDistance(c *chain) (float64, error) {
	d := c.bdy.Dim()
	dir := make([]float64, d)
	r := math.Inf(1)
	for i := 0; i < d; i++ {
		for j := range dir {
			dir[j] = 0
		}
		dir[i] = 1
		hit, err := c.orc.Chord(c.cur, dir)
		if err != nil {
			continue
		}
		if hit.TPlus < r {
			r = hit.TPlus
		}
		if -hit.TMinus < r {
			r = -hit.TMinus
		}
	}
	if math.IsInf(r, 1) {
		return 0, ErrDirectionBudget
	}

	return r, nil
}
