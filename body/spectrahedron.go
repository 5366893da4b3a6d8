// SPDX-License-Identifier: MIT

package body

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/geometry"
)

// Spectrahedron is the LMI body {x : M(x) = A₀ + Σ xᵢAᵢ ⪰ 0} with symmetric
// k×k blocks. The boundary is exactly the set of x where M(x) is singular.
type Spectrahedron struct {
	mats     []*mat.SymDense // A₀..A_d, all order k
	d, k     int
	interior []float64 // strictly interior seed; origin when unset
}

// NewSpectrahedron validates the pencil A₀..A_d and uses the origin as the
// interior seed (the common normalization M(0) = A₀ ≻ 0).
//
// Validation (in order):
//  1. at least A₀ and one Aᵢ (ErrEmptyBody).
//  2. every block square of the same order (ErrNonSquare /
//     ErrDimensionMismatch).
//  3. finite entries (ErrNaNInf).
func NewSpectrahedron(mats []*mat.SymDense) (*Spectrahedron, error) {
	if len(mats) < 2 {
		return nil, ErrEmptyBody
	}
	k := mats[0].SymmetricDim()
	if k == 0 {
		return nil, ErrNonSquare
	}
	cp := make([]*mat.SymDense, len(mats))
	for idx, a := range mats {
		if a.SymmetricDim() != k {
			return nil, ErrDimensionMismatch
		}
		for i := 0; i < k; i++ {
			for j := i; j < k; j++ {
				if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, ErrNaNInf
				}
			}
		}
		c := mat.NewSymDense(k, nil)
		c.CopySym(a)
		cp[idx] = c
	}
	d := len(mats) - 1

	return &Spectrahedron{mats: cp, d: d, k: k, interior: make([]float64, d)}, nil
}

// NewSpectrahedronAt is NewSpectrahedron with an explicit interior seed,
// for pencils not normalized around the origin. The seed must be strictly
// interior (ErrInfeasible otherwise).
func NewSpectrahedronAt(mats []*mat.SymDense, interior []float64) (*Spectrahedron, error) {
	s, err := NewSpectrahedron(mats)
	if err != nil {
		return nil, err
	}
	if len(interior) != s.d {
		return nil, ErrDimensionMismatch
	}
	if !s.StrictlyInside(interior, 0) {
		return nil, ErrInfeasible
	}
	s.interior = geometry.Clone(interior)

	return s, nil
}

// DiagonalFromHPolytope embeds {A·x ≤ b} as the diagonal LMI
// M(x) = diag(b − A·x) ⪰ 0. The two representations describe the same set,
// which makes this the cross-check bridge between the halfspace and LMI
// boundary oracles.
func DiagonalFromHPolytope(h *HPolytope) (*Spectrahedron, error) {
	m := h.NumConstraints()
	d := h.Dim()
	mats := make([]*mat.SymDense, d+1)
	a0 := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		a0.SetSym(i, i, h.Offset(i))
	}
	mats[0] = a0
	for j := 0; j < d; j++ {
		aj := mat.NewSymDense(m, nil)
		for i := 0; i < m; i++ {
			aj.SetSym(i, i, -h.RowView(i)[j])
		}
		mats[j+1] = aj
	}
	s, err := NewSpectrahedron(mats)
	if err != nil {
		return nil, err
	}
	s.interior = h.InteriorPoint()

	return s, nil
}

// Dim returns the number of variables d.
func (s *Spectrahedron) Dim() int { return s.d }

// Order returns the block order k.
func (s *Spectrahedron) Order() int { return s.k }

// MatrixView returns Aᵢ (i in 0..d) without copying. Read-only by contract.
func (s *Spectrahedron) MatrixView(i int) *mat.SymDense { return s.mats[i] }

// EvalTo writes M(x) = A₀ + Σ xᵢAᵢ into dst. Complexity: O(d·k²).
func (s *Spectrahedron) EvalTo(dst *mat.SymDense, x []float64) {
	for i := 0; i < s.k; i++ {
		for j := i; j < s.k; j++ {
			v := s.mats[0].At(i, j)
			for l := 0; l < s.d; l++ {
				v += x[l] * s.mats[l+1].At(i, j)
			}
			dst.SetSym(i, j, v)
		}
	}
}

// PencilTo writes the direction pencil B(v) = Σ vᵢAᵢ (no A₀ term) into dst.
func (s *Spectrahedron) PencilTo(dst *mat.SymDense, v []float64) {
	for i := 0; i < s.k; i++ {
		for j := i; j < s.k; j++ {
			var w float64
			for l := 0; l < s.d; l++ {
				w += v[l] * s.mats[l+1].At(i, j)
			}
			dst.SetSym(i, j, w)
		}
	}
}

// minEig returns the smallest eigenvalue of M(x), or -Inf when the
// eigensolve fails to converge (conservatively outside).
func (s *Spectrahedron) minEig(x []float64) float64 {
	m := mat.NewSymDense(s.k, nil)
	s.EvalTo(m, x)
	var es mat.EigenSym
	if !es.Factorize(m, false) {
		return math.Inf(-1)
	}

	return es.Values(nil)[0]
}

// Contains reports M(x) ⪰ 0 within geometry.Eps.
func (s *Spectrahedron) Contains(x []float64) bool {
	if len(x) != s.d {
		return false
	}

	return s.minEig(x) >= -geometry.Eps
}

// StrictlyInside reports that the smallest eigenvalue of M(x) clears margin.
func (s *Spectrahedron) StrictlyInside(x []float64, margin float64) bool {
	if len(x) != s.d {
		return false
	}
	if margin <= 0 {
		margin = geometry.Eps
	}

	return s.minEig(x) > margin
}

// InteriorPoint returns the stored interior seed.
func (s *Spectrahedron) InteriorPoint() []float64 { return geometry.Clone(s.interior) }

// Transform rewrites the pencil for x = L·y + shift:
//
//	A₀' = A₀ + Σ shiftᵢ Aᵢ,   Aⱼ' = Σᵢ L_ij Aᵢ.
func (s *Spectrahedron) Transform(t *geometry.AffineMap) (Body, error) {
	if t.Dim() != s.d {
		return nil, ErrDimensionMismatch
	}
	lin := t.Linear()
	shift := t.Shift()
	mats := make([]*mat.SymDense, s.d+1)

	a0 := mat.NewSymDense(s.k, nil)
	s.EvalTo(a0, shift)
	mats[0] = a0

	for j := 0; j < s.d; j++ {
		col := make([]float64, s.d)
		for i := 0; i < s.d; i++ {
			col[i] = lin.At(i, j)
		}
		aj := mat.NewSymDense(s.k, nil)
		s.PencilTo(aj, col)
		mats[j+1] = aj
	}

	interior, err := t.Solve(s.interior)
	if err != nil {
		return nil, err
	}

	return &Spectrahedron{mats: mats, d: s.d, k: s.k, interior: interior}, nil
}
