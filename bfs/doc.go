// SPDX-License-Identifier: MIT
// Package bfs implements breadth-first traversal of quantum network graphs.
//
// BFS visits nodes level by level from a start node and records visit
// order, hop depth and the BFS-tree parent of each reached node.
// Neighbours are expanded in sorted ID order, so the traversal is fully
// deterministic for a given graph.
//
// ConnectedComponent and Components build on BFS; the connected-component
// routing strategy uses them on the entangled subgraph to find which users
// already share a path with the source.
//
// Options:
//
//   - WithContext: cancellation.
//   - WithOnVisit: per-node hook; an error aborts the traversal.
//   - WithMaxDepth: hop limit (0 means unlimited, negative is rejected).
//   - WithFilterNeighbor: skip selected links.
//
// Complexity: O(V + E) time and O(V) memory.
package bfs
