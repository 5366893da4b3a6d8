// Package walk_test validates the sampler family: containment of every
// emitted point, seeded reproducibility, infeasible-seed rejection, and
// the hit-and-run distributional check against a known marginal.
package walk_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
	"github.com/polyvol/polyvol/walk"
)

func TestCDHR_StaysInsideCube(t *testing.T) {
	c := body.Cube(5)
	w, err := walk.NewCDHR(walk.Options{Seed: 7, WalkLength: 3})
	require.NoError(t, err)
	require.NoError(t, w.Init(c, c.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 500, 3)
	require.NoError(t, err)
	require.Len(t, pts, 500)
	for _, p := range pts {
		require.True(t, c.Contains(p))
	}
}

func TestRDHR_StaysInsideSimplex(t *testing.T) {
	s := body.StandardSimplex(4)
	w, err := walk.NewRDHR(walk.Options{Seed: 3})
	require.NoError(t, err)
	require.NoError(t, w.Init(s, s.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 300, 5)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, s.Contains(p))
	}
}

func TestWalk_InfeasibleStart(t *testing.T) {
	c := body.Cube(3)
	w, err := walk.NewCDHR(walk.DefaultOptions())
	require.NoError(t, err)
	err = w.Init(c, []float64{2, 0, 0}, nil)
	require.True(t, errors.Is(err, walk.ErrInfeasibleStart))

	// Boundary point is not strictly interior either.
	err = w.Init(c, []float64{1, 0, 0}, nil)
	require.True(t, errors.Is(err, walk.ErrInfeasibleStart))
}

func TestWalk_StepBeforeInit(t *testing.T) {
	w, err := walk.NewRDHR(walk.DefaultOptions())
	require.NoError(t, err)
	require.True(t, errors.Is(w.Step(), walk.ErrNotInitialized))
}

func TestWalk_SeededReproducibility(t *testing.T) {
	c := body.Cube(4)
	run := func() [][]float64 {
		w, err := walk.NewRDHR(walk.Options{Seed: 99})
		require.NoError(t, err)
		require.NoError(t, w.Init(c, c.InteriorPoint(), nil))
		pts, err := walk.Sample(w, 50, 4)
		require.NoError(t, err)

		return pts
	}
	require.Equal(t, run(), run())
}

// TestCDHR_SimplexMarginalKS is the distribution check: uniform samples on
// the standard 2-simplex have first-coordinate CDF F(x) = 1 − (1−x)².
// The Kolmogorov–Smirnov distance of the empirical CDF must be small for a
// long seeded chain.
func TestCDHR_SimplexMarginalKS(t *testing.T) {
	s := body.StandardSimplex(2)
	w, err := walk.NewCDHR(walk.Options{Seed: 1234})
	require.NoError(t, err)
	require.NoError(t, w.Init(s, s.InteriorPoint(), nil))

	const n = 20000
	pts, err := walk.Sample(w, n, 5)
	require.NoError(t, err)

	xs := make([]float64, n)
	for i, p := range pts {
		xs[i] = p[0]
	}
	sort.Float64s(xs)

	var ks float64
	for i, x := range xs {
		f := 1 - (1-x)*(1-x)
		emp := float64(i+1) / n
		if d := math.Abs(emp - f); d > ks {
			ks = d
		}
	}
	require.Less(t, ks, 0.05, "KS distance %v too large for uniform marginal", ks)
}

func TestBallWalk_AutoDeltaAndContainment(t *testing.T) {
	c := body.Cube(4)
	w, err := walk.NewBallWalk(walk.Options{Seed: 5})
	require.NoError(t, err)
	require.NoError(t, w.Init(c, c.InteriorPoint(), nil))
	require.Greater(t, w.Delta(), 0.0)

	pts, err := walk.Sample(w, 400, 2)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, c.Contains(p))
	}
}

func TestBallWalk_ExplicitDelta(t *testing.T) {
	c := body.Cube(2)
	w, err := walk.NewBallWalk(walk.Options{Seed: 5, Delta: 0.25})
	require.NoError(t, err)
	require.NoError(t, w.Init(c, c.InteriorPoint(), nil))
	require.InDelta(t, 0.25, w.Delta(), 1e-12)
}

func TestBilliardWalk_CubeContainment(t *testing.T) {
	c := body.Cube(3)
	w, err := walk.NewBilliardWalk(walk.Options{Seed: 21})
	require.NoError(t, err)
	require.NoError(t, w.Init(c, c.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 200, 2)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, c.Contains(p))
	}
}

func TestBilliardWalk_BallContainment(t *testing.T) {
	b, err := body.NewBall([]float64{0, 0, 0}, 1.5)
	require.NoError(t, err)
	w, err := walk.NewBilliardWalk(walk.Options{Seed: 22})
	require.NoError(t, err)
	require.NoError(t, w.Init(b, b.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 200, 2)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, b.Contains(p))
	}
}

// TestBilliardWalk_ZonotopeContainment covers reflection off LP-derived
// facet normals: the unit square written as a zonotope must accept the
// billiard walk and keep every emission inside.
func TestBilliardWalk_ZonotopeContainment(t *testing.T) {
	z, err := body.NewZonotope([]float64{0, 0}, mat.NewDense(2, 2, []float64{
		1, 0, 0, 1,
	}))
	require.NoError(t, err)
	w, err := walk.NewBilliardWalk(walk.Options{Seed: 23})
	require.NoError(t, err)
	require.NoError(t, w.Init(z, z.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 100, 2)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, z.Contains(p))
	}
}

// TestBilliardWalk_VPolytopeContainment does the same over a vertex body.
func TestBilliardWalk_VPolytopeContainment(t *testing.T) {
	v, err := body.NewVPolytope(mat.NewDense(3, 2, []float64{0, 0, 1, 0, 0, 1}))
	require.NoError(t, err)
	w, err := walk.NewBilliardWalk(walk.Options{Seed: 24})
	require.NoError(t, err)
	require.NoError(t, w.Init(v, v.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 100, 2)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, v.Contains(p))
	}
}

// TestHMC_BiasLengthRejectedBeforeInit pins the Init ordering: a bias of
// the wrong length must fail before any chain state is populated, so a
// subsequent Step still reports the walker as uninitialized.
func TestHMC_BiasLengthRejectedBeforeInit(t *testing.T) {
	c := body.Cube(3)
	w, err := walk.NewHMC(walk.Options{Bias: []float64{1, 0}})
	require.NoError(t, err)

	err = w.Init(c, c.InteriorPoint(), nil)
	require.True(t, errors.Is(err, walk.ErrBadOptions))
	require.True(t, errors.Is(w.Step(), walk.ErrNotInitialized))
}

func TestHMC_CubeContainment(t *testing.T) {
	c := body.Cube(3)
	w, err := walk.NewHMC(walk.Options{Seed: 31})
	require.NoError(t, err)
	require.NoError(t, w.Init(c, c.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 200, 2)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, c.Contains(p))
	}
}

// TestHMC_BoltzmannBias checks the qualitative Boltzmann property: with a
// low temperature and the potential c·x/T along +x₁, mass concentrates at
// small x₁.
func TestHMC_BoltzmannBias(t *testing.T) {
	c := body.Cube(2)
	w, err := walk.NewHMC(walk.Options{
		Seed:           41,
		Bias:           []float64{1, 0},
		Temperature:    0.2,
		MaxReflections: 500,
		HMCSteps:       5,
	})
	require.NoError(t, err)
	require.NoError(t, w.Init(c, c.InteriorPoint(), nil))

	pts, err := walk.Sample(w, 2000, 3)
	require.NoError(t, err)
	var mean float64
	for _, p := range pts {
		mean += p[0] / float64(len(pts))
	}
	require.Less(t, mean, -0.2, "Boltzmann bias should pull x₁ down, mean=%v", mean)
}

func TestOptions_Validate(t *testing.T) {
	bad := walk.Options{WalkLength: -1}
	require.True(t, errors.Is(bad.Validate(), walk.ErrBadOptions))

	bad = walk.Options{Delta: math.NaN()}
	require.True(t, errors.Is(bad.Validate(), walk.ErrBadOptions))

	require.NoError(t, walk.DefaultOptions().Validate())
}

func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base := walk.NewRNG(17)
	a := walk.DeriveRNG(base, 0)
	b := walk.DeriveRNG(base, 1)

	// Streams must differ from each other.
	va := geometry.RandomDirection(a, 3)
	vb := geometry.RandomDirection(b, 3)
	require.NotEqual(t, va, vb)

	// And the derivation must be reproducible from the same parent state.
	base2 := walk.NewRNG(17)
	a2 := walk.DeriveRNG(base2, 0)
	require.Equal(t, va, geometry.RandomDirection(a2, 3))
}
