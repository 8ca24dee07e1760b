// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"

	"github.com/katalvlaran/qnetsim/core"
)

// DetectCycle reports whether the undirected graph g contains a cycle and
// returns the first one found, closed (first node repeated at the end).
// Components are scanned in sorted node order.
func DetectCycle(g *core.Graph) (bool, []string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	state := make(map[string]int, g.NodeCount())
	var path []string
	for _, v := range g.Nodes() {
		if state[v] != White {
			continue
		}
		cycle, err := visit(g, v, "", state, &path)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycle: %w", err)
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}

// visit colours id Gray, descends into White neighbours and returns the
// cycle closed by the first back edge to a Gray node other than the parent.
func visit(g *core.Graph, id, parent string, state map[string]int, path *[]string) ([]string, error) {
	state[id] = Gray
	*path = append(*path, id)

	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}
	for _, nbr := range nbrs {
		if nbr == parent {
			continue
		}
		switch state[nbr] {
		case White:
			cycle, err := visit(g, nbr, id, state, path)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			idx := indexOf(*path, nbr)
			cycle := append([]string(nil), (*path)[idx:]...)
			return append(cycle, nbr), nil
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil, nil
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// IsTree reports whether g is non-empty, connected and acyclic.
func IsTree(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.NodeCount() == 0 {
		return false, nil
	}
	if g.EdgeCount() != g.NodeCount()-1 {
		return false, nil
	}
	res, err := DFS(g, g.Nodes()[0])
	if err != nil {
		return false, err
	}

	return len(res.Visited) == g.NodeCount(), nil
}
