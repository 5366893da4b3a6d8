// SPDX-License-Identifier: MIT
// Package oracle: sentinel error set. Walks and the estimator match these
// via errors.Is; none of them is fatal to a sampling run by itself.

package oracle

import "errors"

var (
	// ErrNoIntersection signals a direction with no strictly positive or
	// strictly negative boundary root (tangent direction, or a pencil whose
	// spectrum has no sign change). Walks recover by resampling the
	// direction; this never surfaces to the estimator's caller.
	ErrNoIntersection = errors.New("oracle: no boundary intersection along direction")

	// ErrIllConditioned signals a numerical failure in the spectrahedron
	// eigensolve. The estimator retries the offending query with a
	// perturbed direction instead of propagating NaNs.
	ErrIllConditioned = errors.New("oracle: ill-conditioned boundary solve")

	// ErrUnsupportedBody is returned by New for a body type without an
	// oracle implementation.
	ErrUnsupportedBody = errors.New("oracle: unsupported body representation")

	// ErrNotOnBoundary is returned by Normal when the query point is not
	// within tolerance of the boundary.
	ErrNotOnBoundary = errors.New("oracle: point not on boundary")
)
