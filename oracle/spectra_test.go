package oracle_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
	"github.com/polyvol/polyvol/oracle"
)

func diskLMI(t *testing.T) *body.Spectrahedron {
	t.Helper()
	s, err := body.NewSpectrahedron([]*mat.SymDense{
		mat.NewSymDense(2, []float64{1, 0, 0, 1}),
		mat.NewSymDense(2, []float64{1, 0, 0, -1}),
		mat.NewSymDense(2, []float64{0, 1, 1, 0}),
	})
	require.NoError(t, err)

	return s
}

func TestSpectraOracle_DiskChord(t *testing.T) {
	// The LMI disk has radius 1: from the origin every chord is [-1, 1].
	s := diskLMI(t)
	o, err := oracle.New(s)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 40; i++ {
		v := geometry.RandomDirection(rng, 2)
		hit, err := o.Chord([]float64{0, 0}, v)
		require.NoError(t, err)
		require.InDelta(t, 1.0, hit.TPlus, 1e-9)
		require.InDelta(t, -1.0, hit.TMinus, 1e-9)
	}
}

func TestSpectraOracle_DiskChordOffCenter(t *testing.T) {
	s := diskLMI(t)
	o, err := oracle.New(s)
	require.NoError(t, err)

	// From (0.5, 0) along +x: exits at x=1 (t=0.5) and x=-1 (t=-1.5).
	hit, err := o.Chord([]float64{0.5, 0}, []float64{1, 0})
	require.NoError(t, err)
	require.InDelta(t, 0.5, hit.TPlus, 1e-9)
	require.InDelta(t, -1.5, hit.TMinus, 1e-9)
}

// TestSpectraOracle_DiagonalAgreesWithH is the diagonal-LMI cross-check:
// a halfspace system embedded as diag(b − A·x) must yield the same chords
// as the halfspace scan, up to eigensolve tolerance.
func TestSpectraOracle_DiagonalAgreesWithH(t *testing.T) {
	for _, h := range []*body.HPolytope{body.Cube(3), body.StandardSimplex(3)} {
		s, err := body.DiagonalFromHPolytope(h)
		require.NoError(t, err)

		oh, err := oracle.New(h)
		require.NoError(t, err)
		os, err := oracle.New(s)
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(12))
		seed := h.InteriorPoint()
		for i := 0; i < 50; i++ {
			p := geometry.Clone(seed)
			geometry.AddScaled(p, 0.05, geometry.RandomDirection(rng, 3))
			if !h.StrictlyInside(p, 1e-9) {
				p = geometry.Clone(seed)
			}
			v := geometry.RandomDirection(rng, 3)

			hh, err := oh.Chord(p, v)
			require.NoError(t, err)
			hs, err := os.Chord(p, v)
			require.NoError(t, err)
			require.InDelta(t, hh.TPlus, hs.TPlus, 1e-7)
			require.InDelta(t, hh.TMinus, hs.TMinus, 1e-7)
		}
	}
}

func TestSpectraOracle_DiskNormalIsRadial(t *testing.T) {
	s := diskLMI(t)
	o, err := oracle.New(s)
	require.NoError(t, err)

	x := []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}
	n, err := o.Normal(x)
	require.NoError(t, err)
	// Outward normal of the disk at x is x itself.
	require.InDelta(t, x[0], n[0], 1e-6)
	require.InDelta(t, x[1], n[1], 1e-6)
}

func TestSpectraOracle_InteriorPointRequired(t *testing.T) {
	s := diskLMI(t)
	o, err := oracle.New(s)
	require.NoError(t, err)

	// From a point outside the disk M(p) is indefinite: the Cholesky
	// reduction cannot run and the query reports ill-conditioning.
	_, err = o.Chord([]float64{2, 0}, []float64{1, 0})
	require.Error(t, err)
}
