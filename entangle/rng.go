// SPDX-License-Identifier: MIT
// File: rng.go
// Role: Deterministic random streams for link evolution.
// Determinism:
//   - Same seed ⇒ identical stream. seed==0 maps to DefaultSeed.
//   - TrialSource(seed, i) depends only on (seed, i), never on call order.

package entangle

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

var _ Source = (*rand.Rand)(nil)

// NewSource returns a deterministic stream for seed.
//
// Complexity: O(1).
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// TrialSource returns the independent stream of trial i within a run seeded
// with seed.
//
// Complexity: O(1).
func TrialSource(seed int64, trial int) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(trial))))
}

// deriveSeed mixes a parent seed and a stream identifier with the
// SplitMix64 finalizer, so neighbouring trial indices give unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
