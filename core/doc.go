// SPDX-License-Identifier: MIT
// Package core provides the in-memory quantum network topology used by the
// simulator: typed node and edge records, constant-time adjacency, derived
// subgraphs, and the bulk setters that parameterise links.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - Edges are identified by their canonical endpoint pair (EdgeKey).
//   - Edge.Length (km) is the shortest-path weight.
//   - Edge.PEdge is the per-timestep entanglement success probability.
//   - Node.Qc / Edge.Qc are decoherence thresholds in timesteps.
//
// Link state (Entangled, Age) is reset per trial with ResetState; usage
// statistics (UsageCount, UsageFraction) accumulate over one protocol run
// and are reset with ResetUsage.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, opts ...NodeOption) error                 // O(1)
//	RemoveNode(id string) error                                  // O(deg(v))
//	RemoveNodes(minUsage float64, excluded []string) int         // O(V + E)
//
//	// Edge lifecycle
//	AddEdge(u, v string, length float64, opts ...EdgeOption) error // O(1)
//	RemoveEdge(u, v string) error                                 // O(1)
//
//	// Query
//	Nodes() []string, NodeList() []*Node, Edges() []*Edge        // sorted
//	Neighbors(id), NeighborIDs(id), Degree(id)
//
//	// Derived topologies (independent copies)
//	Clone(), CloneEmpty(), Subgraph(pred), EntangledSubgraph(), InducedSubgraph(keep)
//
//	// Parameters and state
//	SetUniformPEdge, SetUniformQc, SetPEdgeWithLoss, SetLength, SetEdgeLength
//	ResetState, ResetUsage, UpdateUsage, CheckState
//
// Shortest paths, connected components and Steiner trees live in the
// dijkstra, bfs and steiner packages and operate on *Graph.
package core
