// SPDX-License-Identifier: MIT

package body

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/polyvol/polyvol/geometry"
)

// Zonotope is the Minkowski sum c + Σ zᵢ gᵢ with z ∈ [-1,1]^m.
// Full dimensionality assumes at least d generators spanning R^d; the
// constructor does not enforce spanning (it would cost a rank factorization
// per load), mirroring how the generator count invariant is stated.
type Zonotope struct {
	center []float64
	gens   [][]float64 // m generators of length d
	d      int
}

// NewZonotope validates and copies the center and generator rows.
func NewZonotope(center []float64, gens mat.Matrix) (*Zonotope, error) {
	m, d := gens.Dims()
	if m == 0 || d == 0 {
		return nil, ErrEmptyBody
	}
	if len(center) != d {
		return nil, ErrDimensionMismatch
	}
	if !geometry.IsFinite(center) {
		return nil, ErrNaNInf
	}
	g := make([][]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			v := gens.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			row[j] = v
		}
		g[i] = row
	}

	return &Zonotope{center: geometry.Clone(center), gens: g, d: d}, nil
}

// Dim returns the ambient dimension.
func (z *Zonotope) Dim() int { return z.d }

// NumGenerators returns the generator count m.
func (z *Zonotope) NumGenerators() int { return len(z.gens) }

// GeneratorView returns generator i without copying. Read-only by contract.
func (z *Zonotope) GeneratorView(i int) []float64 { return z.gens[i] }

// Center returns a copy of the center point.
func (z *Zonotope) Center() []float64 { return geometry.Clone(z.center) }

// Contains solves the box-coefficient feasibility program. Substituting
// u = z + 1 ∈ [0,2] turns the box into standard-form bounds:
//
//	Σ uᵢ gᵢ = x − c + Σ gᵢ,   uᵢ + sᵢ = 2,   u, s ≥ 0.
//
// Infeasibility ⇒ outside; other solver failures are treated as outside.
func (z *Zonotope) Contains(x []float64) bool {
	if len(x) != z.d {
		return false
	}
	m := len(z.gens)
	// Columns: u (m), slack s (m). Rows: d equality + m bound rows.
	a := mat.NewDense(z.d+m, 2*m, nil)
	b := make([]float64, z.d+m)
	for i := 0; i < z.d; i++ {
		b[i] = x[i] - z.center[i]
	}
	for j, g := range z.gens {
		for i := 0; i < z.d; i++ {
			a.Set(i, j, g[i])
			b[i] += g[i]
		}
		a.Set(z.d+j, j, 1)
		a.Set(z.d+j, m+j, 1)
		b[z.d+j] = 2
	}
	c := make([]float64, 2*m)

	_, _, err := lp.Simplex(c, a, b, 1e-10, nil)

	return err == nil
}

// StrictlyInside probes the 2d axis neighbors, same policy as VPolytope.
func (z *Zonotope) StrictlyInside(x []float64, margin float64) bool {
	if margin <= 0 {
		margin = geometry.Eps
	}
	probe := geometry.Clone(x)
	for i := 0; i < z.d; i++ {
		probe[i] = x[i] + margin
		if !z.Contains(probe) {
			return false
		}
		probe[i] = x[i] - margin
		if !z.Contains(probe) {
			return false
		}
		probe[i] = x[i]
	}

	return true
}

// InteriorPoint returns the center (the symmetry point of the zonotope).
func (z *Zonotope) InteriorPoint() []float64 { return geometry.Clone(z.center) }

// Transform pulls the center through the inverse affine map and each
// generator through the inverse linear part.
func (z *Zonotope) Transform(t *geometry.AffineMap) (Body, error) {
	if t.Dim() != z.d {
		return nil, ErrDimensionMismatch
	}
	nc, err := t.Solve(z.center)
	if err != nil {
		return nil, err
	}
	gens := make([][]float64, len(z.gens))
	for i, g := range z.gens {
		ng, gerr := t.SolveLinear(g)
		if gerr != nil {
			return nil, gerr
		}
		gens[i] = ng
	}

	return &Zonotope{center: nc, gens: gens, d: z.d}, nil
}
