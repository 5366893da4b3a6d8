package volume_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
	"github.com/polyvol/polyvol/volume"
)

// TestEstimate_Ball checks the degenerate one-phase chain on a body that
// is its own anchor ball: every draw is a hit and the estimate collapses
// to the closed-form ball volume.
func TestEstimate_Ball(t *testing.T) {
	for _, wt := range []volume.WalkType{volume.WalkCDHR, volume.WalkBall, volume.WalkBilliard} {
		b, err := body.NewBall([]float64{0, 0, 0}, 1)
		require.NoError(t, err)

		opts := volume.DefaultOptions()
		opts.Walk = wt
		opts.Samples = 200
		res, err := volume.Estimate(context.Background(), b, opts)
		require.NoError(t, err)
		require.InDelta(t, b.Volume(), res.Volume, 1e-6)
	}
}

func TestEstimate_UnitSquare(t *testing.T) {
	b := body.Cube(2) // [-1,1]^2, volume 4

	opts := volume.DefaultOptions()
	opts.Samples = 2000
	opts.WalkLength = 8
	opts.Diagnostics = true
	res, err := volume.Estimate(context.Background(), b, opts)
	require.NoError(t, err)

	require.InDelta(t, 4.0, res.Volume, 0.8)
	require.Len(t, res.Ratios, res.Phases)
	// The anchor ball is the inscribed Chebyshev ball, fully inside.
	require.InDelta(t, 1.0, res.Anchor, 1e-12)
	for _, r := range res.Ratios {
		require.Greater(t, r, 0.0)
		require.LessOrEqual(t, r, 1.0)
	}
}

// TestEstimate_UnitSquareBallWalk runs the ball walk, with its auto-scaled
// delta, through the full telescoping chain including the intersection
// phase bodies.
func TestEstimate_UnitSquareBallWalk(t *testing.T) {
	b := body.Cube(2)

	opts := volume.DefaultOptions()
	opts.Walk = volume.WalkBall
	opts.Samples = 3000
	opts.Seed = 7
	res, err := volume.Estimate(context.Background(), b, opts)
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Volume, 0.8)
}

func TestEstimate_Cube3D(t *testing.T) {
	b := body.Cube(3) // volume 8

	opts := volume.DefaultOptions()
	opts.Samples = 2000
	opts.Repeats = 2
	res, err := volume.Estimate(context.Background(), b, opts)
	require.NoError(t, err)
	require.InDelta(t, 8.0, res.Volume, 2.0)
}

func TestEstimate_RoundingFoldsBack(t *testing.T) {
	// Elongated box [-5,5]x[-1,1], volume 20. Rounding reshapes it with a
	// unit-determinant map, so the folded-back estimate is unchanged in
	// expectation.
	a := mat.NewDense(4, 2, []float64{
		1, 0,
		-1, 0,
		0, 1,
		0, -1,
	})
	b, err := body.NewHPolytope(a, []float64{5, 5, 1, 1})
	require.NoError(t, err)

	opts := volume.DefaultOptions()
	opts.Samples = 2000
	opts.Rounding = true
	res, err := volume.Estimate(context.Background(), b, opts)
	require.NoError(t, err)
	require.NotNil(t, res.Rounding)
	require.InDelta(t, 20.0, res.Volume, 5.0)
}

func TestEstimate_SeedReproducible(t *testing.T) {
	b := body.Cube(2)

	opts := volume.DefaultOptions()
	opts.Samples = 300
	opts.Seed = 42
	a1, err := volume.Estimate(context.Background(), b, opts)
	require.NoError(t, err)
	a2, err := volume.Estimate(context.Background(), b, opts)
	require.NoError(t, err)
	require.Equal(t, a1.Volume, a2.Volume)

	opts.Seed = 43
	a3, err := volume.Estimate(context.Background(), b, opts)
	require.NoError(t, err)
	require.NotEqual(t, a1.Volume, a3.Volume)
}

func TestEstimate_RejectsHMCAndBadOptions(t *testing.T) {
	b := body.Cube(2)

	opts := volume.DefaultOptions()
	opts.Walk = volume.WalkHMC
	_, err := volume.Estimate(context.Background(), b, opts)
	require.ErrorIs(t, err, volume.ErrBadOptions)

	opts = volume.DefaultOptions()
	opts.Samples = -1
	_, err = volume.Estimate(context.Background(), b, opts)
	require.ErrorIs(t, err, volume.ErrBadOptions)

	opts = volume.DefaultOptions()
	opts.Delta = math.NaN()
	_, err = volume.Estimate(context.Background(), b, opts)
	require.ErrorIs(t, err, volume.ErrBadOptions)
}

func TestEstimate_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := volume.Estimate(ctx, body.Cube(2), volume.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSampleUniform_StaysInside(t *testing.T) {
	b := body.StandardSimplex(3)

	opts := volume.DefaultOptions()
	opts.Walk = volume.WalkRDHR
	pts, err := volume.SampleUniform(context.Background(), b, 100, opts)
	require.NoError(t, err)
	require.Len(t, pts, 100)
	for _, p := range pts {
		require.True(t, b.Contains(p))
	}

	opts.Walk = volume.WalkHMC
	_, err = volume.SampleUniform(context.Background(), b, 10, opts)
	require.ErrorIs(t, err, volume.ErrBadOptions)
}

func TestSampleBoltzmann_StaysInside(t *testing.T) {
	b := body.Cube(2)

	opts := volume.DefaultOptions()
	opts.Bias = []float64{1, 0}
	opts.Temperature = 0.5
	pts, err := volume.SampleBoltzmann(context.Background(), b, 50, opts)
	require.NoError(t, err)
	require.Len(t, pts, 50)
	for _, p := range pts {
		require.True(t, b.Contains(p))
		require.True(t, geometry.IsFinite(p))
	}
}
