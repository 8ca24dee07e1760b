// SPDX-License-Identifier: MIT
// File: greedy.go
// Role: Shortest-path greedy routing (source to each destination in turn).
// Determinism:
//   - Destinations are served in user order; paths come from dijkstra's
//     ID-tie-broken search.

package routing

import (
	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/dijkstra"
)

// ShortestPathGreedy shares a Bell pair between the source and every
// destination in turn over the currently entangled links. It is the
// strategy of both the multipath-greedy protocol and the star protocol
// (which first reduces the topology with BuildStar).
type ShortestPathGreedy struct{}

var _ Strategy = ShortestPathGreedy{}

// Name implements Strategy.
func (ShortestPathGreedy) Name() string { return "shortest-path-greedy" }

// Attempt implements Strategy.
//
// For each destination not yet holding a Bell pair, the shortest entangled
// path from the source is consumed: its links are removed from entangled
// and reset on g, the destination node becomes entangled with Age 0, and a
// UsedPath naming the interior nodes is appended. Success means every
// destination holds a Bell pair.
func (ShortestPathGreedy) Attempt(g *core.Graph, entangled *core.Graph, users []string, usedPaths []UsedPath, _ bool) ([]UsedPath, bool) {
	if len(users) < 2 {
		return usedPaths, false
	}
	source := users[0]
	for _, dest := range users[1:] {
		node, ok := g.Node(dest)
		if !ok || node.Entangled {
			continue
		}
		path, err := dijkstra.ShortestPath(entangled, source, dest)
		if err != nil {
			continue // no progress for dest this timestep
		}
		consume(g, entangled, path)
		node.Entangled, node.Age = true, 0
		usedPaths = append(usedPaths, UsedPath{
			Nodes:       append([]string(nil), path[1:len(path)-1]...),
			EdgeCount:   len(path) - 1,
			Destination: dest,
		})
	}

	return usedPaths, allEntangled(g, users[1:])
}

// consume removes the links of path from entangled and clears their state on g.
func consume(g, entangled *core.Graph, path []string) {
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		_ = entangled.RemoveEdge(u, v)
		if e, ok := g.Edge(u, v); ok {
			e.Entangled, e.Age = false, 0
		}
	}
}

func allEntangled(g *core.Graph, ids []string) bool {
	for _, id := range ids {
		n, ok := g.Node(id)
		if !ok || !n.Entangled {
			return false
		}
	}

	return true
}
