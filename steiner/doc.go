// SPDX-License-Identifier: MIT
// Package steiner approximates minimum Steiner trees on quantum network graphs.
//
// ApproxTree implements the Kou–Markowsky–Berman construction:
//
//  1. Dijkstra from every terminal gives the metric closure over terminals.
//  2. A minimum spanning tree of that closure (prim_kruskal.DenseMST).
//  3. Each closure edge is expanded back into its shortest path in the graph.
//  4. A minimum spanning tree of the union of those paths (prim_kruskal.Kruskal).
//  5. Non-terminal leaves are pruned until every leaf is a terminal.
//
// The result weighs at most 2(1 − 1/ℓ) times the optimum, where ℓ is the
// number of leaves of an optimal tree. Terminals are sorted first and every
// sub-step breaks ties by node ID, so the tree is identical for identical
// input regardless of the terminal order given by the caller.
//
// Errors:
//
//	ErrNoTerminals   - empty terminal set.
//	ErrDisconnected  - some terminals do not share a connected component.
//	core.ErrNodeNotFound - a terminal is absent from the graph.
package steiner
