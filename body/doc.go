// SPDX-License-Identifier: MIT

// Package body defines the convex-body representations sampled by polyvol.
//
// The body package provides:
//
//   - HPolytope: intersection of halfspaces A·x ≤ b, with a Chebyshev-ball
//     solver for interior seeding.
//   - VPolytope: convex hull of a finite vertex set (membership via LP).
//   - Zonotope: Minkowski sum of segments around a center (membership via LP).
//   - Spectrahedron: feasible set of a linear matrix inequality
//     A₀ + Σ xᵢAᵢ ⪰ 0 (membership via the smallest eigenvalue).
//   - Ball and Intersection (body ∩ ball): the estimator's known-volume
//     anchor and its telescoping phase bodies.
//
// Contract shared by all representations:
//
//   - Construction validates dimensions up front and returns sentinel errors;
//     a malformed description is never discovered mid-walk.
//   - Bodies are read-only after construction. Transform produces a NEW body
//     in transformed coordinates and never mutates the receiver, so results
//     can always be mapped back to original coordinates.
//   - InteriorPoint returns a cheap strictly-interior seed for walks.
//
// The boundary geometry (chord endpoints, outward normals) lives in the
// oracle package; body only answers membership and structural queries.
package body
