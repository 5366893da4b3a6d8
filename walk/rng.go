// Package walk - RNG utilities shared by all samplers.
//
// This file centralizes deterministic random generation for every chain.
//
// Goals:
//   - Determinism: same seed ⇒ identical sample streams across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere in the samplers.
//   - Independence: parallel chains draw from derived substreams, never
//     from a shared *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each chain owns its own RNG;
//     use DeriveRNG to split independent streams for parallel repeats.
package walk

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep default runs reproducible.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for one chain.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, so sibling chains are
// decorrelated even for adjacent stream ids.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic stream for chain `stream`
// from a base RNG. If base==nil, defaultSeed is the parent. base.Int63()
// is consumed once so that reusing a stream id by mistake still yields
// distinct children.
//
// Call during chain setup, not in sampling loops.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
