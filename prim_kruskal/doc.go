// SPDX-License-Identifier: MIT
// Package prim_kruskal computes minimum spanning trees of quantum network
// graphs, weighted by fibre length.
//
// Algorithms:
//
//   - Kruskal: sort edges, union-find. Deterministic tie-breaking over the
//     canonical edge order.
//   - Prim: heap-based growth from a root node.
//   - DenseMST: O(n²) Prim over a complete distance matrix; the Steiner tree
//     approximation uses it on the metric closure of the terminals.
//
// Compute dispatches between Kruskal and Prim through functional options.
//
// Errors: ErrInvalidGraph, ErrEmptyRoot, ErrDisconnected, ErrDimensionMismatch.
package prim_kruskal
