// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views (derived topologies with copied records).
// Determinism:
//   - Preserves node IDs and edge attributes verbatim.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// Subgraph returns a new Graph holding copies of every node of g and of the
// edges for which pred returns true. The input graph is not mutated, and
// mutating the result never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Subgraph(pred func(*Edge) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := g.cloneNodesLocked(nil)
	g.copyEdgesLocked(out, pred)

	return out
}

// EntangledSubgraph returns the subgraph of currently entangled edges over
// the full node set.
func (g *Graph) EntangledSubgraph() *Graph {
	return g.Subgraph(func(e *Edge) bool { return e.Entangled })
}

// InducedSubgraph returns a new Graph induced by keep: only nodes v with
// keep[v] == true and the edges whose endpoints are both kept.
//
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := g.cloneNodesLocked(keep)
	g.copyEdgesLocked(out, func(*Edge) bool { return true })

	return out
}
