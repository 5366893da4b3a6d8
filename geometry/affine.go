// Package geometry: affine maps x = L·y + shift.
//
// AffineMap is the carrier of the rounding transform: its determinant is the
// "round value" that maps sampled-space volumes back to original-space
// volumes. Construction validates shape and invertibility once; the
// determinant is cached so repeated reads are O(1).

package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AffineMap represents the invertible affine map y ↦ L·y + shift.
// Immutable after construction; Compose returns a fresh map.
type AffineMap struct {
	lin   *mat.Dense // d×d linear part, full rank
	shift []float64  // length d translation
	det   float64    // cached det(L), finite and non-zero
}

// NewAffineMap validates and wraps the linear part and shift.
//
// Validation (in order):
//  1. lin must be square with order d ≥ 1 (ErrBadShape).
//  2. len(shift) must equal d (ErrDimensionMismatch).
//  3. all entries must be finite (ErrNaNInf).
//  4. det(lin) must be finite and non-zero (ErrSingularMap).
//
// The input matrix and slice are copied; callers may reuse them.
func NewAffineMap(lin *mat.Dense, shift []float64) (*AffineMap, error) {
	r, c := lin.Dims()
	if r != c || r < 1 {
		return nil, ErrBadShape
	}
	if len(shift) != r {
		return nil, ErrDimensionMismatch
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := lin.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
	}
	if !IsFinite(shift) {
		return nil, ErrNaNInf
	}
	det := mat.Det(lin)
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, ErrSingularMap
	}

	m := &AffineMap{
		lin:   mat.DenseCopyOf(lin),
		shift: Clone(shift),
		det:   det,
	}

	return m, nil
}

// IdentityMap returns the identity affine map in dimension d.
func IdentityMap(d int) (*AffineMap, error) {
	if d < 1 {
		return nil, ErrBadShape
	}
	lin := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		lin.Set(i, i, 1)
	}

	return &AffineMap{lin: lin, shift: make([]float64, d), det: 1}, nil
}

// Dim returns the map's dimension d.
func (m *AffineMap) Dim() int {
	r, _ := m.lin.Dims()

	return r
}

// Det returns det(L), the map's volume scaling factor ("round value").
func (m *AffineMap) Det() float64 { return m.det }

// Linear returns a copy of the linear part L.
func (m *AffineMap) Linear() *mat.Dense { return mat.DenseCopyOf(m.lin) }

// Shift returns a copy of the translation vector.
func (m *AffineMap) Shift() []float64 { return Clone(m.shift) }

// Forward maps y to x = L·y + shift. Returns a fresh slice.
// Precondition: len(y) == Dim(). Complexity: O(d²).
func (m *AffineMap) Forward(y []float64) []float64 {
	d := m.Dim()
	x := make([]float64, d)
	for i := 0; i < d; i++ {
		s := m.shift[i]
		for j := 0; j < d; j++ {
			s += m.lin.At(i, j) * y[j]
		}
		x[i] = s
	}

	return x
}

// Solve maps x back to y = L⁻¹·(x - shift). Returns a fresh slice.
// The dense solve is exact up to the factorization's conditioning; the map
// was checked invertible at construction, so failure here means the system
// is numerically (not structurally) singular.
func (m *AffineMap) Solve(x []float64) ([]float64, error) {
	d := m.Dim()
	rhs := mat.NewVecDense(d, Sub(x, m.shift))
	var y mat.VecDense
	if err := y.SolveVec(m.lin, rhs); err != nil {
		return nil, ErrSingularMap
	}
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = y.AtVec(i)
	}

	return out, nil
}

// SolveLinear solves L·u = v for u, ignoring the shift. Used to pull
// direction-like quantities (zonotope generators) back through the map.
func (m *AffineMap) SolveLinear(v []float64) ([]float64, error) {
	d := m.Dim()
	rhs := mat.NewVecDense(d, Clone(v))
	var u mat.VecDense
	if err := u.SolveVec(m.lin, rhs); err != nil {
		return nil, ErrSingularMap
	}
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = u.AtVec(i)
	}

	return out, nil
}

// Compose returns the map equivalent to applying inner first, then m:
// (m ∘ inner)(y) = m.Forward(inner.Forward(y)).
//
// The rounding loop composes each iteration's step map onto the cumulative
// map this way, so the final Det is the product of all step determinants.
func (m *AffineMap) Compose(inner *AffineMap) (*AffineMap, error) {
	if m.Dim() != inner.Dim() {
		return nil, ErrDimensionMismatch
	}
	var lin mat.Dense
	lin.Mul(m.lin, inner.lin)
	shift := m.Forward(inner.shift)

	return &AffineMap{
		lin:   &lin,
		shift: shift,
		det:   m.det * inner.det,
	}, nil
}
