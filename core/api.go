// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over the graph catalogs.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount         int
	EdgeCount         int
	EntangledNodes    int
	EntangledEdges    int
	TotalLength       float64
	MeanPEdge         float64
	MeanUsageFraction float64
}

// Stats produces a deterministic, read-only snapshot of catalog sizes and
// link-state counters.
//
// Complexity:
//   - Time O(V+E), Space O(1).
//
// Notes:
//   - Means are zero for an empty catalog.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
	for _, n := range g.nodes {
		if n.Entangled {
			stats.EntangledNodes++
		}
		stats.MeanUsageFraction += n.UsageFraction
	}
	for _, e := range g.edges {
		if e.Entangled {
			stats.EntangledEdges++
		}
		stats.TotalLength += e.Length
		stats.MeanPEdge += e.PEdge
	}
	if stats.NodeCount > 0 {
		stats.MeanUsageFraction /= float64(stats.NodeCount)
	}
	if stats.EdgeCount > 0 {
		stats.MeanPEdge /= float64(stats.EdgeCount)
	}

	return &stats
}
