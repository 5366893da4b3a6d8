// Package round_test validates the rounding loop: idempotence on isotropic
// bodies, conditioning improvement on elongated ones, and the bounded
// best-effort termination contract.
package round_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
	"github.com/polyvol/polyvol/round"
)

func TestRound_BallIsIdempotent(t *testing.T) {
	// An isotropic body must converge immediately: axis ratio ≈ 1 and a
	// round value of ≈ 1 (exactly 1 here - no transform is applied).
	b, err := body.NewBall([]float64{0, 0, 0}, 1)
	require.NoError(t, err)

	_, res, err := round.Round(context.Background(), b, round.Options{
		Seed:    17,
		Samples: 2000,
	})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.Less(t, res.AxisRatio, round.DefaultThreshold)
	require.InDelta(t, 1.0, res.Det, 1e-9)
}

func TestRound_CubeIsNearIsotropic(t *testing.T) {
	c := body.Cube(3)
	rounded, res, err := round.Round(context.Background(), c, round.Options{
		Seed:    5,
		Samples: 2000,
	})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.NotNil(t, rounded)
}

func TestRound_ElongatedBoxImproves(t *testing.T) {
	// [-10,10] × [-1,1] × [-1,1]: axis ratio ≈ 10 before rounding.
	a := mat.NewDense(6, 3, []float64{
		1, 0, 0,
		-1, 0, 0,
		0, 1, 0,
		0, -1, 0,
		0, 0, 1,
		0, 0, -1,
	})
	box, err := body.NewHPolytope(a, []float64{10, 10, 1, 1, 1, 1})
	require.NoError(t, err)

	rounded, res, err := round.Round(context.Background(), box, round.Options{
		Seed:    23,
		Samples: 3000,
	})
	require.NoError(t, err)
	require.True(t, res.Converged, "axis ratio still %v after %d iterations", res.AxisRatio, res.Iterations)
	require.Less(t, res.AxisRatio, round.DefaultThreshold)

	// Volume-preserving steps: round value stays 1 and the rounded body's
	// volume equals the original's (2·20·2·2 = 80 per unit determinant).
	require.InDelta(t, 1.0, res.Det, 1e-9)

	// The map must reproduce original-space points from rounded ones.
	inner := rounded.InteriorPoint()
	back := res.Map.Forward(inner)
	require.True(t, box.Contains(back))
}

func TestRound_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := round.Round(ctx, body.Cube(2), round.DefaultOptions())
	require.True(t, errors.Is(err, context.Canceled))
}

func TestRound_OptionValidation(t *testing.T) {
	_, _, err := round.Round(context.Background(), body.Cube(2), round.Options{Threshold: 0.5})
	require.True(t, errors.Is(err, round.ErrBadOptions))
}

func TestEstimateEllipsoid_GaussianCloud(t *testing.T) {
	// An isotropic Gaussian cloud must fit an ellipsoid with axis ratio
	// near 1 and center near the origin.
	rng := rand.New(rand.NewSource(2))
	pts := make([][]float64, 5000)
	for i := range pts {
		p := make([]float64, 3)
		for j := range p {
			p[j] = rng.NormFloat64()
		}
		pts[i] = p
	}
	ell, err := round.EstimateEllipsoid(pts)
	require.NoError(t, err)
	require.Less(t, ell.AxisRatio(), 1.15)
	require.Less(t, geometry.Norm(ell.Center()), 0.1)
}

func TestEstimateEllipsoid_TooFewPoints(t *testing.T) {
	_, err := round.EstimateEllipsoid([][]float64{{1, 2, 3}})
	require.True(t, errors.Is(err, round.ErrDegenerate))
}
