package volume

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
	"github.com/polyvol/polyvol/oracle"
	"github.com/polyvol/polyvol/round"
	"github.com/polyvol/polyvol/walk"
)

// Result reports one volume estimate.
//   - Volume: the estimate (mean over Repeats).
//   - Anchor: measured vol(K∩B(r₀)) / vol(B(r₀)) of the first repeat;
//     populated only with Options.Diagnostics.
//   - Ratios: the per-phase shrink ratios of the first repeat; populated
//     only with Options.Diagnostics.
//   - Phases: the bridging chain length of the first repeat.
//   - Rounding: the rounding pass diagnostics, nil when Rounding is off.
type Result struct {
	Volume   float64
	Anchor   float64
	Ratios   []float64
	Phases   int
	Rounding *round.Result
}

// Estimate computes vol(b) with the telescoping sequence-of-balls scheme
// described in the package documentation. It rejects WalkHMC: the
// Hamiltonian sampler targets the Boltzmann distribution and would bias
// every phase ratio; use SampleBoltzmann for that regime.
func Estimate(ctx context.Context, b body.Body, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if opts.Walk == WalkHMC {
		return Result{}, ErrBadOptions
	}
	opts = opts.normalized()

	res := Result{}
	master := walk.NewRNG(opts.Seed)

	if opts.Rounding {
		rounded, rr, err := roundBody(ctx, b, opts, master)
		if err != nil {
			return Result{}, err
		}
		b = rounded
		res.Rounding = rr
	}

	// Derive every repeat stream up front: DeriveRNG consumes the base
	// RNG and must not be called concurrently.
	streams := make([]*rand.Rand, opts.Repeats)
	for i := range streams {
		streams[i] = walk.DeriveRNG(master, uint64(i))
	}

	vols := make([]float64, opts.Repeats)
	diags := make([]phaseDiag, opts.Repeats)
	errs := make([]error, opts.Repeats)

	var wg sync.WaitGroup
	for i := 0; i < opts.Repeats; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vols[i], diags[i], errs[i] = singleEstimate(ctx, b, opts, streams[i])
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return Result{}, err
		}
	}

	var sum float64
	for _, v := range vols {
		sum += v
	}
	res.Volume = sum / float64(opts.Repeats)
	res.Phases = diags[0].phases
	if opts.Diagnostics {
		res.Anchor = diags[0].anchor
		res.Ratios = diags[0].ratios
	}
	if res.Rounding != nil {
		res.Volume *= res.Rounding.Det
	}

	return res, nil
}

// roundBody runs the rounding pass with a derived seed. The rounding
// determinant is folded into the final volume by the caller.
func roundBody(ctx context.Context, b body.Body, opts Options, master *rand.Rand) (body.Body, *round.Result, error) {
	ro := round.DefaultOptions()
	ro.WalkLength = opts.WalkLength
	ro.Seed = walk.DeriveRNG(master, 0).Int63()
	rounded, rr, err := round.Round(ctx, b, ro)
	if err != nil {
		return nil, nil, err
	}

	return rounded, &rr, nil
}

// phaseDiag carries the per-repeat diagnostics back to the coordinator.
type phaseDiag struct {
	anchor float64
	ratios []float64
	phases int
}

// singleEstimate runs one full bridging chain with its own RNG stream.
func singleEstimate(ctx context.Context, b body.Body, opts Options, rng *rand.Rand) (float64, phaseDiag, error) {
	if err := ctx.Err(); err != nil {
		return 0, phaseDiag{}, err
	}
	d := b.Dim()

	c, r0, err := anchorBall(b, rng)
	if err != nil {
		return 0, phaseDiag{}, err
	}
	frac, err := anchorFraction(b, c, r0, opts.Samples, rng)
	if err != nil {
		return 0, phaseDiag{}, err
	}

	outer, err := outerRadius(b, c, rng)
	if err != nil {
		return 0, phaseDiag{}, err
	}
	m := 0
	if outer > r0 {
		m = int(math.Ceil(float64(d) * math.Log2(outer/r0)))
	}
	if m > maxPhases {
		m = maxPhases
	}

	diag := phaseDiag{anchor: frac, phases: m}
	vol := math.Pow(r0, float64(d)) * geometry.UnitBallVolume(d) * frac
	if m == 0 {
		return vol, diag, nil
	}

	// Derive two streams per phase before launching: the second backs
	// the single retry allowed on a degenerate ratio.
	type phaseStreams struct{ run, retry *rand.Rand }
	streams := make([]phaseStreams, m)
	for i := range streams {
		streams[i] = phaseStreams{
			run:   walk.DeriveRNG(rng, uint64(2*i+1)),
			retry: walk.DeriveRNG(rng, uint64(2*i+2)),
		}
	}

	ratios := make([]float64, m)
	errs := make([]error, m)
	var wg sync.WaitGroup
	for i := 1; i <= m; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i-1] = err

				return
			}
			rIn := r0 * math.Pow(2, float64(i-1)/float64(d))
			var rOut float64
			if i < m {
				rOut = r0 * math.Pow(2, float64(i)/float64(d))
			}
			r, err := phaseRatio(b, c, rIn, rOut, opts, streams[i-1].run)
			if err == nil && badRatio(r) {
				r, err = phaseRatio(b, c, rIn, rOut, opts, streams[i-1].retry)
			}
			if err == nil && badRatio(r) {
				err = ErrNonFiniteRatio
			}
			ratios[i-1], errs[i-1] = r, err
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return 0, phaseDiag{}, err
		}
	}

	for _, r := range ratios {
		vol /= r
	}
	diag.ratios = ratios

	return vol, diag, nil
}

func badRatio(r float64) bool {
	return r == 0 || math.IsNaN(r) || math.IsInf(r, 0)
}

// phaseRatio samples the phase body K∩B(c,rOut) (rOut==0 means K itself,
// the top phase) and returns the fraction of samples landing inside the
// previous body K∩B(c,rIn).
func phaseRatio(b body.Body, c []float64, rIn, rOut float64, opts Options, rng *rand.Rand) (float64, error) {
	phase := b
	if rOut > 0 {
		ball, err := body.NewBall(c, rOut)
		if err != nil {
			return 0, err
		}
		phase, err = body.NewIntersection(b, ball)
		if err != nil {
			return 0, err
		}
	}

	w, err := newWalker(opts)
	if err != nil {
		return 0, err
	}
	if err := w.Init(phase, geometry.Clone(c), rng); err != nil {
		return 0, err
	}

	hits := 0
	for s := 0; s < opts.Samples; s++ {
		for j := 0; j < opts.WalkLength; j++ {
			if err := w.Step(); err != nil {
				return 0, err
			}
		}
		if geometry.Norm(geometry.Sub(w.Point(), c)) <= rIn {
			hits++
		}
	}

	return float64(hits) / float64(opts.Samples), nil
}

// anchorBall picks the anchor center and radius. H-polytopes get their
// exact Chebyshev ball; every other representation gets the interior
// seed and the minimum probed boundary distance.
func anchorBall(b body.Body, rng *rand.Rand) ([]float64, float64, error) {
	if h, ok := b.(*body.HPolytope); ok {
		c, r, err := h.ChebyshevBall()
		if err != nil {
			return nil, 0, err
		}

		return c, r, nil
	}

	c := b.InteriorPoint()
	orc, err := oracle.New(b)
	if err != nil {
		return nil, 0, err
	}
	r := math.Inf(1)
	err = probeChords(orc, c, b.Dim(), rng, func(hit oracle.Hit) {
		if hit.TPlus < r {
			r = hit.TPlus
		}
		if -hit.TMinus < r {
			r = -hit.TMinus
		}
	})
	if err != nil {
		return nil, 0, err
	}
	if !(r > 0) || math.IsInf(r, 1) {
		return nil, 0, ErrNoAnchor
	}

	return c, r, nil
}

// anchorFraction estimates vol(K∩B(c,r)) / vol(B(c,r)) by direct
// rejection draws in the ball. Unlike the chain phases this needs no
// mixing argument, so an overestimated anchor radius only costs
// efficiency, never correctness. A radius so wrong that no draw lands
// in K is reported as ErrNoAnchor.
func anchorFraction(b body.Body, c []float64, r float64, samples int, rng *rand.Rand) (float64, error) {
	d := b.Dim()
	hits := 0
	x := make([]float64, d)
	for s := 0; s < samples; s++ {
		u := geometry.RandomInBall(rng, d, r)
		copy(x, c)
		geometry.AddScaled(x, 1, u)
		if b.Contains(x) {
			hits++
		}
	}
	if hits == 0 {
		return 0, ErrNoAnchor
	}

	return float64(hits) / float64(samples), nil
}

// outerRadius probes chords from c along the coordinate axes and a batch
// of random directions and returns the largest reach, with a small
// safety margin. An underestimate only lengthens the top phase ratio;
// the telescoping product stays exact because the top body is K itself.
func outerRadius(b body.Body, c []float64, rng *rand.Rand) (float64, error) {
	orc, err := oracle.New(b)
	if err != nil {
		return 0, err
	}
	r := 0.0
	err = probeChords(orc, c, b.Dim(), rng, func(hit oracle.Hit) {
		if hit.TPlus > r {
			r = hit.TPlus
		}
		if -hit.TMinus > r {
			r = -hit.TMinus
		}
	})
	if err != nil {
		return 0, err
	}

	return r * 1.1, nil
}

// probeChords visits the d coordinate axes plus probeDirections random
// unit directions and reports each chord to visit. Tangent directions
// are skipped rather than fatal.
func probeChords(orc *oracle.Oracle, c []float64, d int, rng *rand.Rand, visit func(oracle.Hit)) error {
	dir := make([]float64, d)
	probe := func() error {
		hit, err := orc.Chord(c, dir)
		if err != nil {
			if errors.Is(err, oracle.ErrNoIntersection) {
				return nil
			}

			return err
		}
		visit(hit)

		return nil
	}

	for i := 0; i < d; i++ {
		for j := range dir {
			dir[j] = 0
		}
		dir[i] = 1
		if err := probe(); err != nil {
			return err
		}
	}
	for i := 0; i < probeDirections; i++ {
		copy(dir, geometry.RandomDirection(rng, d))
		if err := probe(); err != nil {
			return err
		}
	}

	return nil
}

// newWalker builds the sampler selected by the options. Chain seeding is
// always by explicit RNG at Init, so the walk Seed field stays zero.
func newWalker(o Options) (walk.Walker, error) {
	wo := walk.DefaultOptions()
	wo.WalkLength = o.WalkLength
	wo.Delta = o.Delta
	if o.Bias != nil {
		wo.Bias = geometry.Clone(o.Bias)
	}
	if o.Temperature > 0 {
		wo.Temperature = o.Temperature
	}

	switch o.Walk {
	case WalkCDHR:
		return walk.NewCDHR(wo)
	case WalkRDHR:
		return walk.NewRDHR(wo)
	case WalkBall:
		return walk.NewBallWalk(wo)
	case WalkBilliard:
		return walk.NewBilliardWalk(wo)
	case WalkHMC:
		return walk.NewHMC(wo)
	default:
		return nil, ErrBadOptions
	}
}

// SampleUniform draws n approximately uniform points from b with the
// configured walk. WalkHMC is rejected for the same reason Estimate
// rejects it.
func SampleUniform(ctx context.Context, b body.Body, n int, opts Options) ([][]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Walk == WalkHMC {
		return nil, ErrBadOptions
	}

	return sampleChain(ctx, b, n, opts.normalized())
}

// SampleBoltzmann draws n points from the Boltzmann distribution
// exp(-Bias·x/Temperature) restricted to b, via the reflective
// Hamiltonian walk. The Walk field is ignored.
func SampleBoltzmann(ctx context.Context, b body.Body, n int, opts Options) ([][]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.Walk = WalkHMC

	return sampleChain(ctx, b, n, opts.normalized())
}

func sampleChain(ctx context.Context, b body.Body, n int, opts Options) ([][]float64, error) {
	w, err := newWalker(opts)
	if err != nil {
		return nil, err
	}
	rng := walk.NewRNG(opts.Seed)
	if err := w.Init(b, b.InteriorPoint(), rng); err != nil {
		return nil, err
	}

	out := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := 0; j < opts.WalkLength; j++ {
			if err := w.Step(); err != nil {
				return nil, err
			}
		}
		out = append(out, geometry.Clone(w.Point()))
	}

	return out, nil
}
