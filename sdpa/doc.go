// Package sdpa exports spectrahedra to the SDPA sparse text format, the
// lingua franca of semidefinite-programming solvers.
//
// The exchange problem is
//
//	maximize  c·x   subject to   x₁F₁ + … + x_dF_d − F₀ ⪰ 0,
//
// while a Spectrahedron stores the pencil M(x) = A₀ + Σ xᵢAᵢ ⪰ 0. The two
// line up with F₀ = −A₀ and Fᵢ = Aᵢ, and Write applies that sign flip so
// that a solver optimizing the emitted file optimizes over the body.
//
// The layout emitted by Write is
//
//	<d>                 number of variables
//	1                   number of blocks
//	<k>                 block size
//	<c₁ … c_d>          objective coefficients
//	<mat> <blk> <i> <j> <val>   one line per nonzero upper-triangle entry
//
// with matrices numbered 0 (F₀) through d and 1-based row/column indices.
// This is a pure writer: parsing solver output is out of scope.
package sdpa
