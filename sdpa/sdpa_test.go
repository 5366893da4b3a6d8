package sdpa_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/sdpa"
)

// diskLMI is the unit disk as a spectrahedron:
// M(x) = I + x1*diag(1,-1) + x2*offdiag(1).
func diskLMI(t *testing.T) *body.Spectrahedron {
	t.Helper()
	mats := []*mat.SymDense{
		mat.NewSymDense(2, []float64{1, 0, 0, 1}),
		mat.NewSymDense(2, []float64{1, 0, 0, -1}),
		mat.NewSymDense(2, []float64{0, 1, 1, 0}),
	}
	s, err := body.NewSpectrahedron(mats)
	require.NoError(t, err)

	return s
}

func TestWrite_Golden(t *testing.T) {
	var sb strings.Builder
	err := sdpa.Write(&sb, diskLMI(t), []float64{1, 0.5})
	require.NoError(t, err)

	want := strings.Join([]string{
		"2",
		"1",
		"2",
		"1 0.5",
		"0 1 1 1 -1",
		"0 1 2 2 -1",
		"1 1 1 1 1",
		"1 1 2 2 -1",
		"2 1 1 2 1",
		"",
	}, "\n")
	require.Equal(t, want, sb.String())
}

func TestWrite_Errors(t *testing.T) {
	var sb strings.Builder

	err := sdpa.Write(&sb, nil, []float64{1})
	require.ErrorIs(t, err, sdpa.ErrNilBody)

	err = sdpa.Write(&sb, diskLMI(t), []float64{1})
	require.ErrorIs(t, err, sdpa.ErrObjectiveDim)

	err = sdpa.Write(&sb, diskLMI(t), []float64{1, 2, 3})
	require.ErrorIs(t, err, sdpa.ErrObjectiveDim)
}
