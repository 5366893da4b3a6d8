// SPDX-License-Identifier: MIT

package oracle

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// specImpl answers ray queries for {x : M(x) ⪰ 0}. Along the line
// x(t) = p + t·v the pencil is M(p) + t·B with B = Σ vᵢAᵢ, and the boundary
// roots are the t where that matrix turns singular. With p interior,
// M(p) = L·Lᵀ is positive definite, so
//
//	det(M(p) + t·B) = 0  ⇔  det(I + t·S) = 0,  S = L⁻¹·B·L⁻ᵀ,
//
// and the roots are t = −1/μ over the nonzero eigenvalues μ of the
// symmetric S: the generalized eigenproblem on (M(p), B) reduced to an
// ordinary one. The smallest positive root comes from the most negative μ,
// the largest negative root from the most positive μ.
type specImpl struct {
	s *body.Spectrahedron

	// Working state for the chain that owns this oracle: the Cholesky
	// factor of M(p) is reused across direction queries from the same
	// reference point and rebuilt when the point moves.
	refPoint []float64
	chol     mat.Cholesky
	mWork    *mat.SymDense
	bWork    *mat.SymDense
}

// eigZeroTol treats |μ| below this as a zero eigenvalue of S: the direction
// does not cross the boundary on that eigenvector's side.
const eigZeroTol = 1e-12

func newSpectraImpl(s *body.Spectrahedron) *specImpl {
	k := s.Order()

	return &specImpl{
		s:     s,
		mWork: mat.NewSymDense(k, nil),
		bWork: mat.NewSymDense(k, nil),
	}
}

// refresh rebuilds the Cholesky factor of M(p) when the reference point
// changed since the last query.
func (o *specImpl) refresh(p []float64) error {
	if o.refPoint != nil && samePoint(o.refPoint, p) {
		return nil
	}
	o.s.EvalTo(o.mWork, p)
	if !o.chol.Factorize(o.mWork) {
		// M(p) not positive definite: p is not strictly interior, or the
		// pencil is too ill-conditioned to factor.
		return ErrIllConditioned
	}
	o.refPoint = geometry.Clone(p)

	return nil
}

func samePoint(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func (o *specImpl) extent(p, v []float64) (float64, float64, error) {
	if err := o.refresh(p); err != nil {
		return 0, 0, err
	}
	k := o.s.Order()
	o.s.PencilTo(o.bWork, v)

	// S = L⁻¹·B·L⁻ᵀ in two triangular solves, then symmetrized to absorb
	// round-off before the eigensolve.
	var l mat.TriDense
	o.chol.LTo(&l)
	var y mat.Dense
	if err := y.Solve(&l, o.bWork); err != nil {
		return 0, 0, ErrIllConditioned
	}
	var z mat.Dense
	if err := z.Solve(&l, y.T()); err != nil {
		return 0, 0, ErrIllConditioned
	}
	s := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			s.SetSym(i, j, 0.5*(z.At(i, j)+z.At(j, i)))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(s, false) {
		return 0, 0, ErrIllConditioned
	}
	vals := es.Values(nil) // ascending
	muMin := vals[0]
	muMax := vals[k-1]

	tp := math.Inf(1)
	if muMin < -eigZeroTol {
		tp = -1 / muMin
	}
	tm := math.Inf(-1)
	if muMax > eigZeroTol {
		tm = -1 / muMax
	}

	return tp, tm, nil
}

// normal returns the outward unit normal at boundary point x: with u the
// null eigenvector of M(x), the boundary function λmin(M(·)) has gradient
// components uᵀAᵢu, and the outward normal points against it.
func (o *specImpl) normal(x []float64) ([]float64, error) {
	k := o.s.Order()
	m := mat.NewSymDense(k, nil)
	o.s.EvalTo(m, x)

	var es mat.EigenSym
	if !es.Factorize(m, true) {
		return nil, ErrIllConditioned
	}
	vals := es.Values(nil)
	if math.Abs(vals[0]) > 1e-6 {
		return nil, ErrNotOnBoundary
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	u := make([]float64, k)
	for i := 0; i < k; i++ {
		u[i] = vecs.At(i, 0) // eigenvector of the smallest eigenvalue
	}

	d := o.s.Dim()
	n := make([]float64, d)
	for i := 0; i < d; i++ {
		n[i] = -quadForm(o.s.MatrixView(i+1), u)
	}
	nn := geometry.Norm(n)
	if nn == 0 {
		return nil, ErrIllConditioned
	}
	geometry.Scale(n, 1/nn)

	return n, nil
}

// quadForm computes uᵀ·A·u for symmetric A.
func quadForm(a *mat.SymDense, u []float64) float64 {
	k := len(u)
	var s float64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			s += u[i] * a.At(i, j) * u[j]
		}
	}

	return s
}
