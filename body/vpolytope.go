// SPDX-License-Identifier: MIT

package body

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/polyvol/polyvol/geometry"
)

// VPolytope is the vertex representation conv{v₁,…,vₙ}.
// Assumed non-empty and full-dimensional (affinely spanning R^d); the walks
// and the estimator rely on a non-empty interior.
type VPolytope struct {
	vert [][]float64 // n vertices of length d
	d    int
}

// NewVPolytope validates and copies the vertex set (one vertex per row).
func NewVPolytope(v mat.Matrix) (*VPolytope, error) {
	n, d := v.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyBody
	}
	vert := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			x := v.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrNaNInf
			}
			row[j] = x
		}
		vert[i] = row
	}

	return &VPolytope{vert: vert, d: d}, nil
}

// Dim returns the ambient dimension.
func (p *VPolytope) Dim() int { return p.d }

// NumVertices returns the vertex count n.
func (p *VPolytope) NumVertices() int { return len(p.vert) }

// VertexView returns vertex i without copying. Read-only by contract.
func (p *VPolytope) VertexView(i int) []float64 { return p.vert[i] }

// Contains solves the convex-combination feasibility program
//
//	∃ λ ≥ 0 :  Σ λⱼ vⱼ = x,  Σ λⱼ = 1,
//
// via simplex phase one (zero objective). LP infeasibility means x is
// outside the hull; any other solver failure is conservatively treated as
// outside as well, never panicking mid-walk.
func (p *VPolytope) Contains(x []float64) bool {
	if len(x) != p.d {
		return false
	}
	n := len(p.vert)
	a := mat.NewDense(p.d+1, n, nil)
	for j, v := range p.vert {
		for i := 0; i < p.d; i++ {
			a.Set(i, j, v[i])
		}
		a.Set(p.d, j, 1)
	}
	b := make([]float64, p.d+1)
	copy(b, x)
	b[p.d] = 1
	c := make([]float64, n)

	_, _, err := lp.Simplex(c, a, b, 1e-10, nil)

	return err == nil
}

// StrictlyInside probes the 2d axis neighbors x ± margin·eᵢ; all of them
// inside the hull certifies an interior margin without a quadratic program.
func (p *VPolytope) StrictlyInside(x []float64, margin float64) bool {
	if margin <= 0 {
		margin = geometry.Eps
	}
	probe := geometry.Clone(x)
	for i := 0; i < p.d; i++ {
		probe[i] = x[i] + margin
		if !p.Contains(probe) {
			return false
		}
		probe[i] = x[i] - margin
		if !p.Contains(probe) {
			return false
		}
		probe[i] = x[i]
	}

	return true
}

// InteriorPoint returns the vertex centroid, interior whenever the hull is
// full-dimensional.
func (p *VPolytope) InteriorPoint() []float64 {
	c := make([]float64, p.d)
	for _, v := range p.vert {
		geometry.AddScaled(c, 1/float64(len(p.vert)), v)
	}

	return c
}

// Transform maps every vertex through the inverse map: v'ⱼ = L⁻¹(vⱼ − shift).
func (p *VPolytope) Transform(t *geometry.AffineMap) (Body, error) {
	if t.Dim() != p.d {
		return nil, ErrDimensionMismatch
	}
	vert := make([][]float64, len(p.vert))
	for i, v := range p.vert {
		nv, err := t.Solve(v)
		if err != nil {
			return nil, err
		}
		vert[i] = nv
	}

	return &VPolytope{vert: vert, d: p.d}, nil
}
