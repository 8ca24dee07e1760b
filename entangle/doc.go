// SPDX-License-Identifier: MIT
// Package entangle advances the link state of a quantum network by one
// timestep.
//
// Each Engine.Step draws one uniform value per edge, ages entangled links,
// decoheres those that reached their threshold Qc, and then attempts fresh
// entanglement on every link that is not entangled (including one that
// decohered in the same step). When nodes are included, node-held
// resources are aged and decohered the same way, and the used paths of
// earlier routing successes are aged and dropped once they outlive the
// threshold of their destination.
//
// Randomness is injected through Source. NewSource and TrialSource build
// reproducible math/rand streams: TrialSource derives an independent
// stream per trial from a run seed, so trials may execute in any order or
// in parallel with identical results.
//
// Determinism:
//
//   - Edges are visited in canonical (From, To) order and nodes in ID
//     order, so a given Source replays exactly the same evolution.
//
// Concurrency:
//
//   - An Engine and its Source belong to one trial. *rand.Rand is not safe
//     for concurrent use; derive one stream per goroutine.
package entangle
