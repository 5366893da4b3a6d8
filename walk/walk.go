package walk

import (
	"errors"
	"math/rand"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
	"github.com/polyvol/polyvol/oracle"
)

// Walker is the common sampler contract. One Walker instance is one chain:
// it owns its current point, its oracle (with any per-chain workspace) and
// its RNG, and must not be shared across goroutines.
type Walker interface {
	// Init binds the walker to a body, a strictly interior start point and
	// a chain RNG (nil means a fresh RNG from the walker's Seed option).
	Init(b body.Body, start []float64, rng *rand.Rand) error

	// Step advances the chain by one internal step.
	Step() error

	// Point returns the current point. The slice is the walker's own
	// state; callers must clone before keeping it (Sample does).
	Point() []float64
}

// Sample runs w for n emissions, walkLength internal steps apart, and
// returns the emitted points. The walker must be initialized.
func Sample(w Walker, n, walkLength int) ([][]float64, error) {
	if walkLength < 1 {
		walkLength = DefaultWalkLength
	}
	out := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < walkLength; j++ {
			if err := w.Step(); err != nil {
				return nil, err
			}
		}
		out = append(out, geometry.Clone(w.Point()))
	}

	return out, nil
}

// chain is the state shared by every walker: current point, drift
// detection and direction-resample bookkeeping.
type chain struct {
	bdy     body.Body
	orc     *oracle.Oracle
	cur     []float64
	rng     *rand.Rand
	opts    Options
	steps   int
	lastDir []float64
}

func (c *chain) init(b body.Body, start []float64, rng *rand.Rand, opts Options) error {
	if b == nil || len(start) != b.Dim() {
		return ErrInfeasibleStart
	}
	if !b.StrictlyInside(start, 0) {
		return ErrInfeasibleStart
	}
	orc, err := oracle.New(b)
	if err != nil {
		return err
	}
	if rng == nil {
		rng = NewRNG(opts.Seed)
	}
	c.bdy = b
	c.orc = orc
	c.cur = geometry.Clone(start)
	c.rng = rng
	c.opts = opts.normalized(b.Dim())
	c.steps = 0
	c.lastDir = nil

	return nil
}

func (c *chain) initialized() bool { return c.cur != nil }

// chord queries the oracle, resampling the direction on degenerate
// (tangent) outcomes up to the fixed budget. sample regenerates the
// direction in place between attempts.
func (c *chain) chord(dir []float64, resample func([]float64)) (oracle.Hit, error) {
	for attempt := 0; attempt < directionBudget; attempt++ {
		hit, err := c.orc.Chord(c.cur, dir)
		if err == nil {
			return hit, nil
		}
		if !errors.Is(err, oracle.ErrNoIntersection) || resample == nil {
			return oracle.Hit{}, err
		}
		resample(dir)
	}

	return oracle.Hit{}, ErrDirectionBudget
}

// afterStep runs the drift check every CheckInterval steps: a point pushed
// outside by accumulated floating-point error is re-snapped along the last
// move direction instead of silently renormalized.
func (c *chain) afterStep() {
	c.steps++
	if c.steps%c.opts.CheckInterval != 0 {
		return
	}
	if c.bdy.Contains(c.cur) {
		return
	}
	c.resnap()
}

// resnap walks backward along the last direction in doubling steps until
// the point re-enters the body; a chain whose history cannot be rewound
// falls back to the body's interior seed.
func (c *chain) resnap() {
	dir := c.lastDir
	if dir != nil {
		cand := geometry.Clone(c.cur)
		for s := geometry.Eps; s < 1e6; s *= 2 {
			geometry.AddScaled(cand, -s, dir)
			if c.bdy.Contains(cand) && c.bdy.StrictlyInside(cand, 0) {
				c.cur = cand

				return
			}
		}
	}
	c.cur = c.bdy.InteriorPoint()
}

// Point returns the chain's current point.
func (c *chain) Point() []float64 { return c.cur }
