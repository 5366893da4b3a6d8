// SPDX-License-Identifier: MIT

// Package oracle answers boundary-ray queries for convex bodies: where does
// the line p + t·v exit the body in each direction, and what is the outward
// normal at the exit point.
//
// The oracle package provides:
//
//   - Oracle: the public query surface. Chord returns the two scalars
//     t⁻ < 0 < t⁺ with p + t·v exactly on the boundary; Normal returns the
//     outward unit normal at a boundary point (needed by reflection walks).
//   - One implementation per representation, selected by New at
//     construction time; none inherits from another:
//   - halfspace: closed-form scan over the constraint rows, ties broken
//     by lowest constraint index;
//   - vertex / zonotope: a simplex LP maximizing the line parameter over
//     the convex-combination (resp. box-coefficient) program; normals
//     come from a second LP over the polar body, whose optimal basic
//     solution is the supporting facet normal at the query point;
//   - spectrahedron: a generalized eigenvalue problem on the pencil
//     (M(p), B(v)), reduced to an ordinary symmetric eigenproblem through
//     the Cholesky factor of M(p) — never root-finding on the
//     determinant, which is unstable beyond a few dimensions;
//   - ball and body∩ball: closed-form quadratic and min/max composition.
//
// Degenerate directions (tangent to the boundary, or a pencil with no real
// root on the required side) yield ErrNoIntersection; the calling walk
// resamples its direction. An eigensolve that fails to converge yields
// ErrIllConditioned, which the estimator treats as warning-grade.
//
// The spectrahedron oracle keeps per-walk working state: the Cholesky
// factor of M(p) at the sampler's current point, reused while the reference
// point is unchanged and rebuilt when it moves. Oracles are therefore owned
// by a single chain; bodies themselves stay shared and read-only.
package oracle
