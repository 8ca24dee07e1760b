// SPDX-License-Identifier: MIT
// File: component.go
// Role: Connected components on top of BFS.

package bfs

import (
	"sort"

	"github.com/katalvlaran/qnetsim/core"
)

// ConnectedComponent returns the IDs of every node reachable from start,
// start included, sorted ascending.
func ConnectedComponent(g *core.Graph, start string) ([]string, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	ids := append([]string(nil), res.Order...)
	sort.Strings(ids)

	return ids, nil
}

// Components partitions g into connected components. Each component is
// sorted, and components are ordered by their smallest ID.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.NodeCount())
	var out [][]string
	for _, id := range g.Nodes() {
		if seen[id] {
			continue
		}
		comp, err := ConnectedComponent(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range comp {
			seen[v] = true
		}
		out = append(out, comp)
	}

	return out, nil
}
