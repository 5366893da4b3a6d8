// Package polyvol estimates the volume of high-dimensional convex bodies
// by Monte-Carlo sampling: polytopes, zonotopes and spectrahedra, with
// the geometric machinery to walk, round and measure them.
//
// 🚀 What is polyvol?
//
//	A deterministic, seedable library that brings together:
//		• Body representations: H/V-polytopes, zonotopes, LMI spectrahedra, balls
//		• Boundary oracles: exact chord endpoints & outward normals per representation
//		• Random walks: coordinate/random-direction hit-and-run, ball, billiard, HMC
//		• Rounding: iterative ellipsoid rounding into near-isotropic position
//		• Volume: telescoping sequence-of-balls estimator with parallel phases
//		• Export: SDPA sparse text writer for spectrahedra
//
// ✨ Why choose polyvol?
//
//   - Reproducible – every chain is seeded, parallel streams are derived,
//     same seed means the same estimate on every platform
//   - Honest errors – sentinel errors matched with errors.Is, no panics on
//     user input
//   - Pure Go – gonum for linear algebra, no cgo
//   - Composable – bodies, oracles and walks are independent building blocks
//
// Everything is organized under seven subpackages:
//
//	geometry/ — vector kernels, sphere/ball sampling, affine maps
//	body/     — convex body representations and membership tests
//	oracle/   — chord and normal queries on body boundaries
//	walk/     — the samplers: CDHR, RDHR, ball, billiard, reflective HMC
//	round/    — ellipsoid rounding
//	volume/   — the telescoping estimator and sampling entry points
//	sdpa/     — SDPA sparse format export
//
// Start with volume.Estimate for a one-call answer, or compose a walk and
// an oracle directly for custom pipelines.
//
//	go get github.com/polyvol/polyvol
package polyvol
