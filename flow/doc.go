// SPDX-License-Identifier: MIT
// Package flow computes maximum flows between two nodes of an undirected
// quantum network.
//
// The algorithm is Edmonds–Karp: breadth-first search for the shortest
// augmenting path in a residual-capacity map, repeated until the sink is
// unreachable. Every undirected edge contributes its capacity in both
// directions.
//
// Two capacity models are provided:
//
//   - UnitCapacity (default): the max flow is the number of edge-disjoint
//     paths between source and sink, i.e. how many independent routes a
//     multipath protocol can draw on.
//   - PEdgeCapacity: each link contributes its per-timestep success
//     probability, giving an upper bound on the expected number of Bell
//     pairs that can be routed per timestep.
//
// Complexity: O(V · E²) time, O(V + E) memory.
//
// Determinism: neighbours are scanned in sorted order, so the sequence of
// augmenting paths, and thus any reported residual, is reproducible.
package flow
