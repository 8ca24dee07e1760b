// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search on an undirected *core.Graph,
// with cycle detection and a tree test built on it.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, with pre-/post-order hooks, cancellation via
//     context.Context, neighbour filtering and forest traversal.
//   - DetectCycle: returns one simple cycle if the graph has any, found by
//     vertex colouring (White, Gray, Black) and back-edge detection.
//   - IsTree: reports whether a graph is connected and acyclic, the shape
//     every Steiner tree and every fusion plan must have.
//
// Complexity:
//
//   - DFS, DetectCycle, IsTree: Time O(V+E), Memory O(V)
//
// Determinism: neighbours are visited in sorted order, so Order and the
// reported cycle are reproducible.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node ID not in graph
//   - context.Canceled        DFS cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
