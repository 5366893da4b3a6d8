package sdpa

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrNilBody is returned for a nil spectrahedron.
	ErrNilBody = errors.New("sdpa: nil spectrahedron")

	// ErrObjectiveDim is returned when the objective length does not
	// match the body dimension or carries non-finite entries.
	ErrObjectiveDim = errors.New("sdpa: objective does not match body dimension")
)

// Write serializes s and the objective direction to the SDPA sparse
// format described in the package documentation. Output is buffered; a
// single flush error surfaces at the end.
func Write(w io.Writer, s *body.Spectrahedron, objective []float64) error {
	if s == nil {
		return ErrNilBody
	}
	if len(objective) != s.Dim() || !geometry.IsFinite(objective) {
		return ErrObjectiveDim
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", s.Dim())
	fmt.Fprintf(bw, "1\n")
	fmt.Fprintf(bw, "%d\n", s.Order())

	for i, c := range objective {
		if i > 0 {
			fmt.Fprintf(bw, " ")
		}
		fmt.Fprintf(bw, "%v", c)
	}
	fmt.Fprintf(bw, "\n")

	// Matrix 0 is F0 = -A0; matrices 1..d are the A_i verbatim.
	for idx := 0; idx <= s.Dim(); idx++ {
		sign := 1.0
		if idx == 0 {
			sign = -1.0
		}
		writeMatrix(bw, idx, s.MatrixView(idx), sign)
	}

	return bw.Flush()
}

// writeMatrix emits the nonzero upper-triangle entries of m, scaled by
// sign, with 1-based indices.
func writeMatrix(bw *bufio.Writer, idx int, m *mat.SymDense, sign float64) {
	k := m.SymmetricDim()
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			v := sign * m.At(i, j)
			if v == 0 {
				continue
			}
			fmt.Fprintf(bw, "%d 1 %d %d %v\n", idx, i+1, j+1, v)
		}
	}
}
