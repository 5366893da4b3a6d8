// SPDX-License-Identifier: MIT
// Package body: sentinel error set (unified, consistent).
// Constructors MUST return these sentinels and tests MUST check them via
// errors.Is. No constructor panics on user-triggered error conditions.

package body

import "errors"

var (
	// ErrDimensionMismatch indicates inconsistent dimensions in a body
	// description (e.g. len(b) != rows(A), or a pencil matrix whose order
	// differs from its siblings).
	ErrDimensionMismatch = errors.New("body: dimension mismatch")

	// ErrEmptyBody is returned when a description carries no constraints,
	// vertices or generators at all.
	ErrEmptyBody = errors.New("body: empty description")

	// ErrNonSquare signals that an LMI block is not square.
	ErrNonSquare = errors.New("body: LMI matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value in a body description.
	ErrNaNInf = errors.New("body: NaN or Inf encountered")

	// ErrBadRadius is returned for a ball with non-positive radius.
	ErrBadRadius = errors.New("body: radius must be positive")

	// ErrUnsupportedTransform signals that a representation cannot express
	// the image of a general affine map (e.g. a ball maps to an ellipsoid).
	ErrUnsupportedTransform = errors.New("body: transform not representable")

	// ErrInfeasible is returned when an interior-point solve concludes the
	// body has empty interior.
	ErrInfeasible = errors.New("body: empty interior")
)
