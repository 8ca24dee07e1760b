// SPDX-License-Identifier: MIT
// Package dijkstra provides Dijkstra's shortest-path algorithm on quantum
// network topologies (core.Graph) with fibre length as the edge weight.
//
// Overview:
//
//   - Dijkstra computes the minimum-length distance from one source node to
//     every reachable node in O((V + E) log V) time.
//   - ShortestPath returns the ordered node IDs of one shortest src→dst path;
//     routing strategies use it to pick the channel that will be fused.
//   - HasPath answers reachability, used by the greedy routing step to decide
//     whether a user is already connected to the source.
//
// Determinism:
//
//   - Ties between equal-length paths are broken by node ID through the heap
//     order, and neighbours are relaxed in sorted order. Repeated calls on the
//     same graph always return the same path.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight,
//     ErrBadMaxDistance, ErrNoPath.
//
// Example:
//
//	path, err := dijkstra.ShortestPath(g, "A", "D")
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // not connected yet
//	}
package dijkstra
