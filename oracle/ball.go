// SPDX-License-Identifier: MIT

package oracle

import (
	"math"

	"github.com/polyvol/polyvol/body"
	"github.com/polyvol/polyvol/geometry"
)

// ballImpl answers ray queries for ‖x − c‖ ≤ r with the chord quadratic
// ‖w + t·v‖² = r², w = p − c.
type ballImpl struct {
	b *body.Ball
}

func (o *ballImpl) extent(p, v []float64) (float64, float64, error) {
	w := geometry.Sub(p, o.b.Center())
	a := geometry.Dot(v, v)
	if a == 0 {
		return 0, 0, ErrNoIntersection
	}
	bq := 2 * geometry.Dot(w, v)
	cq := geometry.Dot(w, w) - o.b.Radius()*o.b.Radius()
	disc := bq*bq - 4*a*cq
	if disc <= 0 {
		// p outside or exactly on the sphere with a tangent direction.
		return 0, 0, ErrNoIntersection
	}
	s := math.Sqrt(disc)

	return (-bq + s) / (2 * a), (-bq - s) / (2 * a), nil
}

func (o *ballImpl) normal(x []float64) ([]float64, error) {
	w := geometry.Sub(x, o.b.Center())
	n := geometry.Norm(w)
	if math.Abs(n-o.b.Radius()) > 1e-6 {
		return nil, ErrNotOnBoundary
	}
	geometry.Scale(w, 1/n)

	return w, nil
}

// intersectImpl composes a body oracle with a ball oracle: the chord of
// K ∩ B is the min/max composition of the operand chords. An unbounded
// side of the inner body is legal here; the ball always bounds it.
type intersectImpl struct {
	inner queryable
	ball  *ballImpl
}

func (o *intersectImpl) extent(p, v []float64) (float64, float64, error) {
	itp, itm, err := o.inner.extent(p, v)
	if err != nil {
		return 0, 0, err
	}
	btp, btm, err := o.ball.extent(p, v)
	if err != nil {
		return 0, 0, err
	}

	return math.Min(itp, btp), math.Max(itm, btm), nil
}

// normal picks the operand whose boundary the point actually sits on; when
// both are tight (a corner of the intersection), the ball wins — either
// normal is a valid support direction there.
func (o *intersectImpl) normal(x []float64) ([]float64, error) {
	if n, err := o.ball.normal(x); err == nil {
		return n, nil
	}

	return o.inner.normal(x)
}
