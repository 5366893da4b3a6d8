// SPDX-License-Identifier: MIT

package oracle

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// vImpl answers ray queries for conv{v₁,…,vₙ} by maximizing (then
// minimizing) the line parameter over the convex-combination program
//
//	max/min t  s.t.  Σ λⱼ vⱼ = p + t·v,  Σ λⱼ = 1,  λ ≥ 0,
//
// in simplex standard form with t split into a positive difference.
// This is the V-representation dual of the halfspace row scan.
type vImpl struct {
	p *body.VPolytope
}

func (o *vImpl) extent(p, v []float64) (float64, float64, error) {
	d := o.p.Dim()
	n := o.p.NumVertices()
	// Columns: λ (n), t⁺, t⁻ with t = t⁺ − t⁻.
	a := mat.NewDense(d+1, n+2, nil)
	for j := 0; j < n; j++ {
		vert := o.p.VertexView(j)
		for i := 0; i < d; i++ {
			a.Set(i, j, vert[i])
		}
		a.Set(d, j, 1)
	}
	for i := 0; i < d; i++ {
		a.Set(i, n, -v[i])
		a.Set(i, n+1, v[i])
	}
	b := make([]float64, d+1)
	copy(b, p)
	b[d] = 1

	tp, err := solveExtent(a, b, n, true)
	if err != nil {
		return 0, 0, err
	}
	tm, err := solveExtent(a, b, n, false)
	if err != nil {
		return 0, 0, err
	}

	return tp, tm, nil
}

// solveExtent runs the simplex for one side of the chord. maximize selects
// the t⁺ direction of optimization.
func solveExtent(a *mat.Dense, b []float64, tCol int, maximize bool) (float64, error) {
	_, cols := a.Dims()
	c := make([]float64, cols)
	if maximize {
		c[tCol] = -1
		c[tCol+1] = 1
	} else {
		c[tCol] = 1
		c[tCol+1] = -1
	}
	_, x, err := lp.Simplex(c, a, append([]float64(nil), b...), 1e-10, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return 0, ErrNoIntersection
	case errors.Is(err, lp.ErrUnbounded):
		return 0, ErrNoIntersection
	case err != nil:
		return 0, ErrIllConditioned
	}

	return x[tCol] - x[tCol+1], nil
}

// normal recovers the facet normal at a boundary point x from the polar
// gauge program: with the centroid q shifted to the origin,
//
//	max (x−q)·n  s.t.  n·(vⱼ−q) ≤ 1 for every vertex,
//
// attains 1 exactly when x lies on the boundary, and the optimal basic
// solution is the normal of the supporting facet (a vertex of the polar
// body). The hyperplane n·y = 1 keeps the origin strictly inside, so the
// orientation is outward by construction.
func (o *vImpl) normal(x []float64) ([]float64, error) {
	d := o.p.Dim()
	n := o.p.NumVertices()
	q := o.p.InteriorPoint()
	y := geometry.Sub(x, q)

	// Columns: n⁺ (d), n⁻ (d), slack per vertex.
	a := mat.NewDense(n, 2*d+n, nil)
	b := make([]float64, n)
	for j := 0; j < n; j++ {
		vert := o.p.VertexView(j)
		for i := 0; i < d; i++ {
			a.Set(j, i, vert[i]-q[i])
			a.Set(j, d+i, q[i]-vert[i])
		}
		a.Set(j, 2*d+j, 1)
		b[j] = 1
	}

	return solveGaugeNormal(a, b, y)
}

// solveGaugeNormal runs the polar gauge LP (variables n⁺, n⁻ in the first
// 2d columns, objective max y·n) and converts the optimum into a unit
// outward normal. A gauge value short of 1 means the query point is
// interior to the body, not on a facet.
func solveGaugeNormal(a *mat.Dense, b, y []float64) ([]float64, error) {
	d := len(y)
	_, cols := a.Dims()
	c := make([]float64, cols)
	for i := 0; i < d; i++ {
		c[i] = -y[i]
		c[d+i] = y[i]
	}
	_, sol, err := lp.Simplex(c, a, append([]float64(nil), b...), 1e-10, nil)
	if err != nil {
		return nil, ErrIllConditioned
	}

	out := make([]float64, d)
	var gauge float64
	for i := 0; i < d; i++ {
		out[i] = sol[i] - sol[d+i]
		gauge += out[i] * y[i]
	}
	if gauge < 1-1e-6 {
		return nil, ErrNotOnBoundary
	}
	geometry.Scale(out, 1/geometry.Norm(out))

	return out, nil
}
