// Package geometry: sentinel error set.
// All constructors and validators MUST return these sentinels; callers match
// them via errors.Is. Panics are reserved for programmer errors in private
// helpers.

package geometry

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a shift vector whose length differs from the linear part's order.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrBadShape is returned when a requested shape is invalid (e.g. d <= 0).
	ErrBadShape = errors.New("geometry: invalid shape")

	// ErrSingularMap signals that an affine map's linear part is singular
	// (zero or non-finite determinant) and therefore not invertible.
	ErrSingularMap = errors.New("geometry: singular affine map")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("geometry: NaN or Inf encountered")
)
