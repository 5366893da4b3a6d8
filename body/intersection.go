// SPDX-License-Identifier: MIT

package body

import "github.com/polyvol/polyvol/geometry"

// Intersection is K ∩ B for a convex body K and a ball B — the phase body
// of the sequence-of-balls estimator. It is a thin composite: every query
// delegates to both operands.
type Intersection struct {
	inner Body
	ball  *Ball
}

// NewIntersection validates matching dimensions and wraps the pair.
// The estimator constructs these with the ball centered at the (recentred)
// interior point, so the ball center doubles as the interior seed.
func NewIntersection(inner Body, ball *Ball) (*Intersection, error) {
	if inner == nil || ball == nil {
		return nil, ErrEmptyBody
	}
	if inner.Dim() != ball.Dim() {
		return nil, ErrDimensionMismatch
	}

	return &Intersection{inner: inner, ball: ball}, nil
}

// Dim returns the ambient dimension.
func (c *Intersection) Dim() int { return c.ball.Dim() }

// Inner returns the wrapped body K.
func (c *Intersection) Inner() Body { return c.inner }

// Ball returns the wrapped ball B.
func (c *Intersection) Ball() *Ball { return c.ball }

// Contains reports membership in both operands.
func (c *Intersection) Contains(x []float64) bool {
	return c.ball.Contains(x) && c.inner.Contains(x)
}

// StrictlyInside requires the margin against both operands.
func (c *Intersection) StrictlyInside(x []float64, margin float64) bool {
	return c.ball.StrictlyInside(x, margin) && c.inner.StrictlyInside(x, margin)
}

// InteriorPoint returns the ball center when it lies inside K, otherwise
// K's own interior point (valid while it also lies in the ball, which the
// estimator's construction guarantees).
func (c *Intersection) InteriorPoint() []float64 {
	if center := c.ball.Center(); c.inner.Contains(center) {
		return center
	}

	return c.inner.InteriorPoint()
}

// Transform is unsupported for the same reason as Ball.Transform.
func (c *Intersection) Transform(*geometry.AffineMap) (Body, error) {
	return nil, ErrUnsupportedTransform
}
