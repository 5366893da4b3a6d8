// SPDX-License-Identifier: MIT

package oracle

import (
	"gonum.org/v1/gonum/mat"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// zImpl answers ray queries for c + Σ zᵢgᵢ, z ∈ [-1,1]^m, by the same
// extent LP as the vertex oracle, over shifted box coefficients u = z + 1:
//
//	max/min t  s.t.  Σ uⱼ gⱼ − t·v = p − c + Σ gⱼ,  uⱼ + sⱼ = 2,  u, s ≥ 0.
type zImpl struct {
	z *body.Zonotope
}

func (o *zImpl) extent(p, v []float64) (float64, float64, error) {
	d := o.z.Dim()
	m := o.z.NumGenerators()
	// Columns: u (m), slack s (m), t⁺, t⁻. Rows: d equality + m bounds.
	a := mat.NewDense(d+m, 2*m+2, nil)
	b := make([]float64, d+m)
	center := o.z.Center()
	for i := 0; i < d; i++ {
		b[i] = p[i] - center[i]
	}
	for j := 0; j < m; j++ {
		g := o.z.GeneratorView(j)
		for i := 0; i < d; i++ {
			a.Set(i, j, g[i])
			b[i] += g[i]
		}
		a.Set(d+j, j, 1)
		a.Set(d+j, m+j, 1)
		b[d+j] = 2
	}
	for i := 0; i < d; i++ {
		a.Set(i, 2*m, -v[i])
		a.Set(i, 2*m+1, v[i])
	}

	tp, err := solveExtent(a, b, 2*m, true)
	if err != nil {
		return 0, 0, err
	}
	tm, err := solveExtent(a, b, 2*m, false)
	if err != nil {
		return 0, 0, err
	}

	return tp, tm, nil
}

// normal recovers the facet normal at a boundary point x from the polar
// gauge program with the center shifted to the origin: the support
// function of Z−c is Σ|n·gᵢ|, so
//
//	max (x−c)·n  s.t.  Σ aᵢ ≤ 1,  aᵢ ≥ ±n·gᵢ,
//
// attains 1 exactly on the boundary with the facet normal as optimizer.
func (o *zImpl) normal(x []float64) ([]float64, error) {
	d := o.z.Dim()
	m := o.z.NumGenerators()
	y := geometry.Sub(x, o.z.Center())

	// Columns: n⁺ (d), n⁻ (d), a (m), surplus s (m), surplus s' (m), w.
	// Rows: a ≥ n·g and a ≥ −n·g per generator, then Σa + w = 1.
	a := mat.NewDense(2*m+1, 2*d+3*m+1, nil)
	b := make([]float64, 2*m+1)
	for j := 0; j < m; j++ {
		g := o.z.GeneratorView(j)
		for i := 0; i < d; i++ {
			a.Set(j, i, -g[i])
			a.Set(j, d+i, g[i])
			a.Set(m+j, i, g[i])
			a.Set(m+j, d+i, -g[i])
		}
		a.Set(j, 2*d+j, 1)
		a.Set(j, 2*d+m+j, -1)
		a.Set(m+j, 2*d+j, 1)
		a.Set(m+j, 2*d+2*m+j, -1)
		a.Set(2*m, 2*d+j, 1)
	}
	a.Set(2*m, 2*d+3*m, 1)
	b[2*m] = 1

	return solveGaugeNormal(a, b, y)
}
