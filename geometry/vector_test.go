// Package geometry_test validates the vector kernels and random primitives:
// exactness of the flat-slice loops, determinism under a fixed seed, and the
// sphere/ball samplers' basic distributional invariants.
package geometry_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyvol/polyvol/geometry"
)

func TestDot_Basic(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, -5, 6}
	require.InDelta(t, 12.0, geometry.Dot(a, b), 1e-12)
}

func TestNorm_Pythagorean(t *testing.T) {
	require.InDelta(t, 5.0, geometry.Norm([]float64{3, 4}), 1e-12)
}

func TestAddScaled_InPlace(t *testing.T) {
	dst := []float64{1, 1}
	geometry.AddScaled(dst, 2, []float64{3, -1})
	require.Equal(t, []float64{7, -1}, dst)
}

func TestSub_FreshSlice(t *testing.T) {
	a := []float64{5, 5}
	b := []float64{2, 3}
	out := geometry.Sub(a, b)
	require.Equal(t, []float64{3, 2}, out)
	// inputs untouched
	require.Equal(t, []float64{5, 5}, a)
}

func TestClone_NoAlias(t *testing.T) {
	a := []float64{1, 2}
	c := geometry.Clone(a)
	c[0] = 99
	require.Equal(t, 1.0, a[0])
}

func TestIsFinite(t *testing.T) {
	require.True(t, geometry.IsFinite([]float64{0, -1, 1e300}))
	require.False(t, geometry.IsFinite([]float64{0, math.NaN()}))
	require.False(t, geometry.IsFinite([]float64{math.Inf(1)}))
}

func TestRandomDirection_UnitNormAndDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v := geometry.RandomDirection(rng, 7)
		require.InDelta(t, 1.0, geometry.Norm(v), 1e-9)
	}

	// Same seed ⇒ identical stream.
	a := geometry.RandomDirection(rand.New(rand.NewSource(7)), 4)
	b := geometry.RandomDirection(rand.New(rand.NewSource(7)), 4)
	require.Equal(t, a, b)
}

func TestRandomInBall_WithinRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const r = 2.5
	for i := 0; i < 500; i++ {
		p := geometry.RandomInBall(rng, 5, r)
		require.LessOrEqual(t, geometry.Norm(p), r+1e-12)
	}
}

func TestRandomInBall_MeanNearCenter(t *testing.T) {
	// The empirical mean of uniform ball samples concentrates at the origin.
	rng := rand.New(rand.NewSource(3))
	const n = 20000
	d := 3
	mean := make([]float64, d)
	for i := 0; i < n; i++ {
		p := geometry.RandomInBall(rng, d, 1)
		geometry.AddScaled(mean, 1.0/n, p)
	}
	require.Less(t, geometry.Norm(mean), 0.02)
}

func TestUnitBallVolume_ClosedForms(t *testing.T) {
	require.InDelta(t, math.Pi, geometry.UnitBallVolume(2), 1e-12)
	require.InDelta(t, 4.0/3.0*math.Pi, geometry.UnitBallVolume(3), 1e-12)
	require.InDelta(t, 2.0, geometry.UnitBallVolume(1), 1e-12)
}
