package round

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
	"github.com/polyvol/polyvol/walk"
)

// DEFAULTS - single source of truth for the rounding loop.
const (
	// DefaultThreshold is the axis-ratio convergence bound.
	DefaultThreshold = 1.2

	// DefaultMaxIterations caps the sample→estimate→transform loop.
	DefaultMaxIterations = 10

	// DefaultSamplesPerDim scales the per-iteration sample count by the
	// dimension; covariance estimates need n ≫ d.
	DefaultSamplesPerDim = 100

	// DefaultWalkLength is the hit-and-run walk length used internally.
	DefaultWalkLength = 8
)

// ErrBadOptions is returned for negative or non-finite tunables.
var ErrBadOptions = errors.New("round: invalid options")

// ErrDegenerate is returned when the sampled covariance is not positive
// definite even at the first iteration - the body is flat (or numerically
// flat) along some direction and cannot be rounded.
var ErrDegenerate = errors.New("round: degenerate sample covariance")

// Options configures Round. Zero values mean the documented defaults.
type Options struct {
	Threshold     float64 // axis-ratio convergence bound (> 1)
	MaxIterations int
	Samples       int // per iteration; 0 ⇒ DefaultSamplesPerDim·d
	WalkLength    int
	Seed          int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
		WalkLength:    DefaultWalkLength,
	}
}

// Validate rejects nonsensical values.
func (o Options) Validate() error {
	if o.MaxIterations < 0 || o.Samples < 0 || o.WalkLength < 0 {
		return ErrBadOptions
	}
	if o.Threshold != 0 && (o.Threshold <= 1 || math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0)) {
		return ErrBadOptions
	}

	return nil
}

func (o Options) normalized(dim int) Options {
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Samples == 0 {
		o.Samples = DefaultSamplesPerDim * dim
	}
	if o.WalkLength == 0 {
		o.WalkLength = DefaultWalkLength
	}

	return o
}

// Result reports one rounding pass.
//   - Map: the cumulative affine map from rounded to original coordinates.
//   - Det: its determinant, the round value: original-space volume =
//     rounded-space volume × Det.
//   - AxisRatio: the last measured max/min axis-length ratio diagnostic.
//   - Converged: whether AxisRatio fell under Threshold within the budget;
//     false is a quality degradation, not a failure.
type Result struct {
	Map        *geometry.AffineMap
	Det        float64
	AxisRatio  float64
	Iterations int
	Converged  bool
}

// Round drives b toward isotropic position. It returns the transformed
// body (b itself when the first estimate already satisfies the threshold)
// together with the pass diagnostics. The input body is never mutated.
func Round(ctx context.Context, b body.Body, opts Options) (body.Body, Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, Result{}, err
	}
	d := b.Dim()
	opts = opts.normalized(d)

	total, err := geometry.IdentityMap(d)
	if err != nil {
		return nil, Result{}, err
	}
	res := Result{Map: total, Det: 1, AxisRatio: math.Inf(1)}
	cur := b
	rng := walk.NewRNG(opts.Seed)

	for it := 0; it < opts.MaxIterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, Result{}, err
		}
		res.Iterations = it + 1

		ell, err := sampleEllipsoid(cur, opts, walk.DeriveRNG(rng, uint64(it)))
		if err != nil {
			return nil, Result{}, err
		}
		res.AxisRatio = ell.AxisRatio()
		if res.AxisRatio < opts.Threshold {
			res.Converged = true

			break
		}

		step, err := ell.normalizedCholeskyMap()
		if err != nil {
			if it == 0 {
				return nil, Result{}, err
			}
			// Later-iteration degeneracy: accept best effort.
			break
		}
		next, err := cur.Transform(step)
		if err != nil {
			return nil, Result{}, err
		}
		cur = next
		total, err = total.Compose(step)
		if err != nil {
			return nil, Result{}, err
		}
	}

	res.Map = total
	res.Det = math.Abs(total.Det())

	return cur, res, nil
}

// Ellipsoid is a center plus positive-definite shape matrix, the
// covariance-based representative of a body's mass distribution.
type Ellipsoid struct {
	center []float64
	shape  *mat.SymDense
}

// EstimateEllipsoid fits the sample mean and covariance of a point cloud.
// Requires more points than dimensions.
func EstimateEllipsoid(points [][]float64) (*Ellipsoid, error) {
	if len(points) == 0 {
		return nil, ErrDegenerate
	}
	d := len(points[0])
	if len(points) <= d {
		return nil, ErrDegenerate
	}
	n := len(points)
	flat := mat.NewDense(n, d, nil)
	center := make([]float64, d)
	for i, p := range points {
		for j := 0; j < d; j++ {
			flat.Set(i, j, p[j])
			center[j] += p[j] / float64(n)
		}
	}
	shape := mat.NewSymDense(d, nil)
	stat.CovarianceMatrix(shape, flat, nil)

	return &Ellipsoid{center: center, shape: shape}, nil
}

// Center returns a copy of the ellipsoid center.
func (e *Ellipsoid) Center() []float64 { return geometry.Clone(e.center) }

// Shape returns the positive-semidefinite shape matrix (no copy; treat as
// read-only).
func (e *Ellipsoid) Shape() *mat.SymDense { return e.shape }

// AxisRatio returns √(λmax/λmin) of the shape matrix - the conditioning
// diagnostic the rounding loop converges on. +Inf for a degenerate shape.
func (e *Ellipsoid) AxisRatio() float64 {
	var es mat.EigenSym
	if !es.Factorize(e.shape, false) {
		return math.Inf(1)
	}
	vals := es.Values(nil)
	lo, hi := vals[0], vals[len(vals)-1]
	if lo <= 0 {
		return math.Inf(1)
	}

	return math.Sqrt(hi / lo)
}

// normalizedCholeskyMap returns the affine map x = L̂·y + center with L̂
// the unit-determinant multiple of the covariance Cholesky factor:
// transforming by it whitens the shape without rescaling volume.
func (e *Ellipsoid) normalizedCholeskyMap() (*geometry.AffineMap, error) {
	d := len(e.center)
	var ch mat.Cholesky
	if !ch.Factorize(e.shape) {
		return nil, ErrDegenerate
	}
	var l mat.TriDense
	ch.LTo(&l)

	det := 1.0
	for i := 0; i < d; i++ {
		det *= l.At(i, i)
	}
	if det <= 0 {
		return nil, ErrDegenerate
	}
	scale := 1 / math.Pow(det, 1/float64(d))

	lin := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			lin.Set(i, j, l.At(i, j)*scale)
		}
	}

	return geometry.NewAffineMap(lin, e.center)
}

// sampleEllipsoid draws one hit-and-run cloud from b and fits it.
func sampleEllipsoid(b body.Body, opts Options, rng *rand.Rand) (*Ellipsoid, error) {
	w, err := walk.NewCDHR(walk.Options{WalkLength: opts.WalkLength})
	if err != nil {
		return nil, err
	}
	if err := w.Init(b, b.InteriorPoint(), rng); err != nil {
		return nil, err
	}
	pts, err := walk.Sample(w, opts.Samples, opts.WalkLength)
	if err != nil {
		return nil, err
	}

	return EstimateEllipsoid(pts)
}
