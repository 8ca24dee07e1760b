// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones carry every node and edge record by value; no pointer is shared
//     with the source, so trials may mutate a clone freely.
// Concurrency:
//   - Read lock on the source for the duration of the snapshot.

package core

// CloneEmpty returns a new Graph with copies of every node record but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneNodesLocked(nil)
}

// Clone returns a deep copy of the Graph: nodes, edges and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.Subgraph(func(*Edge) bool { return true })
}

// cloneNodesLocked copies node records, optionally restricted to keep.
// Caller holds at least the read lock.
func (g *Graph) cloneNodesLocked(keep map[string]bool) *Graph {
	out := NewGraph()
	for id, n := range g.nodes {
		if keep != nil && !keep[id] {
			continue
		}
		cp := *n
		out.nodes[id] = &cp
		out.adjacency[id] = make(map[string]*Edge)
	}

	return out
}

// copyEdgesLocked copies every edge of g accepted by pred whose endpoints
// both exist in out. Caller holds at least the read lock on g.
func (g *Graph) copyEdgesLocked(out *Graph, pred func(*Edge) bool) {
	for _, e := range g.edges {
		if _, ok := out.nodes[e.From]; !ok {
			continue
		}
		if _, ok := out.nodes[e.To]; !ok {
			continue
		}
		if !pred(e) {
			continue
		}
		cp := *e
		out.insertEdgeLocked(&cp)
	}
}
