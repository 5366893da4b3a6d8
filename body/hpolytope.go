// SPDX-License-Identifier: MIT

package body

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/polyvol/polyvol/geometry"
)

// HPolytope is the halfspace representation {x : A·x ≤ b}.
// Rows of A are stored as flat slices so membership and oracle scans run
// without per-query matrix indexing.
type HPolytope struct {
	rows [][]float64 // m rows of length d
	off  []float64   // m offsets (the vector b)
	d    int

	// chebyshev cache: the LP runs once even when many chains share the
	// body concurrently.
	chebOnce   sync.Once
	chebCenter []float64
	chebRadius float64
	chebErr    error
}

// NewHPolytope validates and copies the description {x : A·x ≤ b}.
//
// Validation (in order):
//  1. A must be non-empty (ErrEmptyBody).
//  2. len(b) must equal the row count of A (ErrDimensionMismatch).
//  3. every entry of A and b must be finite (ErrNaNInf).
func NewHPolytope(a mat.Matrix, b []float64) (*HPolytope, error) {
	m, d := a.Dims()
	if m == 0 || d == 0 {
		return nil, ErrEmptyBody
	}
	if len(b) != m {
		return nil, ErrDimensionMismatch
	}
	rows := make([][]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			v := a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			row[j] = v
		}
		rows[i] = row
	}
	if !geometry.IsFinite(b) {
		return nil, ErrNaNInf
	}

	return &HPolytope{rows: rows, off: geometry.Clone(b), d: d}, nil
}

// Cube returns the hypercube [-1,1]^d as an HPolytope (volume 2^d).
func Cube(d int) *HPolytope {
	rows := make([][]float64, 0, 2*d)
	off := make([]float64, 0, 2*d)
	for i := 0; i < d; i++ {
		hi := make([]float64, d)
		hi[i] = 1
		lo := make([]float64, d)
		lo[i] = -1
		rows = append(rows, hi, lo)
		off = append(off, 1, 1)
	}

	return &HPolytope{rows: rows, off: off, d: d}
}

// UnitCube returns [0,1]^d as an HPolytope (volume 1).
func UnitCube(d int) *HPolytope {
	rows := make([][]float64, 0, 2*d)
	off := make([]float64, 0, 2*d)
	for i := 0; i < d; i++ {
		hi := make([]float64, d)
		hi[i] = 1
		lo := make([]float64, d)
		lo[i] = -1
		rows = append(rows, hi, lo)
		off = append(off, 1, 0)
	}

	return &HPolytope{rows: rows, off: off, d: d}
}

// StandardSimplex returns {x : x ≥ 0, Σxᵢ ≤ 1} (volume 1/d!).
func StandardSimplex(d int) *HPolytope {
	rows := make([][]float64, 0, d+1)
	off := make([]float64, 0, d+1)
	for i := 0; i < d; i++ {
		lo := make([]float64, d)
		lo[i] = -1
		rows = append(rows, lo)
		off = append(off, 0)
	}
	sum := make([]float64, d)
	for i := range sum {
		sum[i] = 1
	}
	rows = append(rows, sum)
	off = append(off, 1)

	return &HPolytope{rows: rows, off: off, d: d}
}

// Dim returns the ambient dimension.
func (h *HPolytope) Dim() int { return h.d }

// NumConstraints returns the number of halfspaces m.
func (h *HPolytope) NumConstraints() int { return len(h.rows) }

// RowView returns row i of A without copying. Read-only by contract.
func (h *HPolytope) RowView(i int) []float64 { return h.rows[i] }

// Offset returns bᵢ.
func (h *HPolytope) Offset(i int) float64 { return h.off[i] }

// Contains reports A·x ≤ b within geometry.Eps, componentwise.
// Complexity: O(m·d).
func (h *HPolytope) Contains(x []float64) bool {
	for i, row := range h.rows {
		if geometry.Dot(row, x) > h.off[i]+geometry.Eps {
			return false
		}
	}

	return true
}

// StrictlyInside reports aᵢ·x + margin·‖aᵢ‖ ≤ bᵢ for every constraint, i.e.
// x keeps Euclidean distance at least margin from every facet hyperplane.
func (h *HPolytope) StrictlyInside(x []float64, margin float64) bool {
	if margin <= 0 {
		margin = geometry.Eps
	}
	for i, row := range h.rows {
		if geometry.Dot(row, x)+margin*geometry.Norm(row) > h.off[i] {
			return false
		}
	}

	return true
}

// InteriorPoint returns the Chebyshev center (deepest interior point).
// The underlying LP runs once; repeated calls return the cached center.
// A polytope with empty interior yields the zero vector; callers that need
// the failure distinction should use ChebyshevBall directly.
func (h *HPolytope) InteriorPoint() []float64 {
	c, _, err := h.ChebyshevBall()
	if err != nil {
		return geometry.Zeros(h.d)
	}

	return geometry.Clone(c)
}

// ChebyshevBall returns the center and radius of the largest inscribed ball,
// solved as the LP
//
//	max r  s.t.  aᵢ·x + r·‖aᵢ‖ ≤ bᵢ,  r ≥ 0,
//
// in simplex standard form (x split into positive parts, slack per row).
//
// Errors:
//   - ErrInfeasible when the polytope has empty interior.
//   - a wrapped lp error when the region is unbounded or the solve fails.
func (h *HPolytope) ChebyshevBall() ([]float64, float64, error) {
	h.chebOnce.Do(func() {
		h.chebCenter, h.chebRadius, h.chebErr = h.solveChebyshev()
	})

	return h.chebCenter, h.chebRadius, h.chebErr
}

func (h *HPolytope) solveChebyshev() ([]float64, float64, error) {
	m := len(h.rows)
	d := h.d
	// Columns: x⁺ (d), x⁻ (d), r, slack (m).
	n := 2*d + 1 + m
	a := mat.NewDense(m, n, nil)
	for i, row := range h.rows {
		for j := 0; j < d; j++ {
			a.Set(i, j, row[j])
			a.Set(i, d+j, -row[j])
		}
		a.Set(i, 2*d, geometry.Norm(row))
		a.Set(i, 2*d+1+i, 1)
	}
	c := make([]float64, n)
	c[2*d] = -1 // maximize r

	_, x, err := lp.Simplex(c, a, geometry.Clone(h.off), 1e-10, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return nil, 0, ErrInfeasible
	case err != nil:
		return nil, 0, fmt.Errorf("body: chebyshev ball: %w", err)
	}

	center := make([]float64, d)
	for j := 0; j < d; j++ {
		center[j] = x[j] - x[d+j]
	}
	r := x[2*d]
	if r <= 0 {
		return nil, 0, ErrInfeasible
	}

	return center, r, nil
}

// Transform returns the polytope in coordinates y where x = L·y + shift:
// A' = A·L and b' = b − A·shift. Complexity: O(m·d²).
func (h *HPolytope) Transform(t *geometry.AffineMap) (Body, error) {
	if t.Dim() != h.d {
		return nil, ErrDimensionMismatch
	}
	lin := t.Linear()
	shift := t.Shift()
	rows := make([][]float64, len(h.rows))
	off := make([]float64, len(h.rows))
	for i, row := range h.rows {
		nr := make([]float64, h.d)
		for j := 0; j < h.d; j++ {
			var s float64
			for k := 0; k < h.d; k++ {
				s += row[k] * lin.At(k, j)
			}
			nr[j] = s
		}
		rows[i] = nr
		off[i] = h.off[i] - geometry.Dot(row, shift)
	}

	return &HPolytope{rows: rows, off: off, d: h.d}, nil
}
