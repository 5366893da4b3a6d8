package sdpa_test

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/sdpa"
)

// ExampleWrite exports the unit disk, written as the LMI
// I + x1*diag(1,-1) + x2*offdiag(1) ⪰ 0, with objective (0, 1).
func ExampleWrite() {
	mats := []*mat.SymDense{
		mat.NewSymDense(2, []float64{1, 0, 0, 1}),
		mat.NewSymDense(2, []float64{1, 0, 0, -1}),
		mat.NewSymDense(2, []float64{0, 1, 1, 0}),
	}
	s, err := body.NewSpectrahedron(mats)
	if err != nil {
		fmt.Println(err)

		return
	}

	_ = sdpa.Write(os.Stdout, s, []float64{0, 1})
	// Output:
	// 2
	// 1
	// 2
	// 0 1
	// 0 1 1 1 -1
	// 0 1 2 2 -1
	// 1 1 1 1 1
	// 1 1 2 2 -1
	// 2 1 1 2 1
}
