// SPDX-License-Identifier: MIT

package body

import (
	"math"

	"github.com/polyvol/polyvol/geometry"
)

// Ball is the closed Euclidean ball {x : ‖x − c‖ ≤ r}. It anchors the
// telescoping estimator with its closed-form volume.
type Ball struct {
	center []float64
	radius float64
}

// NewBall validates the center and positive radius.
func NewBall(center []float64, radius float64) (*Ball, error) {
	if len(center) == 0 {
		return nil, ErrEmptyBody
	}
	if !geometry.IsFinite(center) {
		return nil, ErrNaNInf
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, ErrBadRadius
	}

	return &Ball{center: geometry.Clone(center), radius: radius}, nil
}

// Dim returns the ambient dimension.
func (b *Ball) Dim() int { return len(b.center) }

// Radius returns r.
func (b *Ball) Radius() float64 { return b.radius }

// Center returns a copy of c.
func (b *Ball) Center() []float64 { return geometry.Clone(b.center) }

// Volume returns the closed-form Lebesgue volume r^d · vol(B_d).
func (b *Ball) Volume() float64 {
	return math.Pow(b.radius, float64(b.Dim())) * geometry.UnitBallVolume(b.Dim())
}

// Contains reports ‖x − c‖ ≤ r within geometry.Eps.
func (b *Ball) Contains(x []float64) bool {
	if len(x) != len(b.center) {
		return false
	}

	return geometry.Norm(geometry.Sub(x, b.center)) <= b.radius+geometry.Eps
}

// StrictlyInside reports ‖x − c‖ ≤ r − margin.
func (b *Ball) StrictlyInside(x []float64, margin float64) bool {
	if margin <= 0 {
		margin = geometry.Eps
	}

	return geometry.Norm(geometry.Sub(x, b.center)) < b.radius-margin
}

// InteriorPoint returns the center.
func (b *Ball) InteriorPoint() []float64 { return geometry.Clone(b.center) }

// Transform is unsupported: the affine image of a ball is an ellipsoid,
// which this representation cannot express.
func (b *Ball) Transform(*geometry.AffineMap) (Body, error) {
	return nil, ErrUnsupportedTransform
}
