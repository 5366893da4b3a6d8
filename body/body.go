// SPDX-License-Identifier: MIT

package body

import "github.com/polyvol/polyvol/geometry"

// Body is the capability interface shared by every convex-body
// representation. One concrete implementation exists per representation;
// none inherits from another. Boundary-ray queries are answered by the
// oracle package on top of this contract.
type Body interface {
	// Dim returns the ambient dimension d.
	Dim() int

	// Contains reports whether x lies in the body, boundary included,
	// within the shared geometry.Eps tolerance.
	Contains(x []float64) bool

	// StrictlyInside reports whether x lies in the interior with at least
	// the given margin to every constraint. Used to vet walk seeds; a
	// non-positive margin degrades to a strict-inequality test at Eps.
	StrictlyInside(x []float64, margin float64) bool

	// InteriorPoint returns a cheap strictly-interior seed point.
	// The slice is fresh; callers own it.
	InteriorPoint() []float64

	// Transform returns a new body in coordinates y where x = m.Forward(y).
	// The receiver is never mutated. Representations that cannot express
	// the image return ErrUnsupportedTransform.
	Transform(m *geometry.AffineMap) (Body, error)
}
