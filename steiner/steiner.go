// SPDX-License-Identifier: MIT
// File: steiner.go
// Role: Kou–Markowsky–Berman Steiner tree approximation.
// Determinism:
//   - Terminals are deduplicated and sorted before use.
// Concurrency:
//   - Read-only on the input graph; the returned tree is a fresh instance.

package steiner

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/dijkstra"
	"github.com/katalvlaran/qnetsim/prim_kruskal"
)

// Sentinel errors for Steiner tree construction.
var (
	// ErrNoTerminals indicates an empty terminal set.
	ErrNoTerminals = errors.New("steiner: no terminals")

	// ErrDisconnected indicates that the terminals are not mutually reachable.
	ErrDisconnected = errors.New("steiner: terminals are not connected")
)

// ApproxTree returns an approximate minimum Steiner tree of g spanning the
// given terminals, weighted by Edge.Length. The tree holds copies of the
// node and edge records of g; mutating it never affects g.
//
// A single terminal yields a one-node tree without edges.
//
// Complexity: O(T·(V + E) log V + T² + E log E) for T terminals.
func ApproxTree(g *core.Graph, terminals []string) (*core.Graph, error) {
	terms := dedupSorted(terminals)
	if len(terms) == 0 {
		return nil, ErrNoTerminals
	}
	for _, t := range terms {
		if !g.HasNode(t) {
			return nil, fmt.Errorf("terminal %q: %w", t, core.ErrNodeNotFound)
		}
	}
	if len(terms) == 1 {
		return g.InducedSubgraph(map[string]bool{terms[0]: true}), nil
	}

	// 1) Metric closure: shortest-path distances and predecessor trees.
	n := len(terms)
	dist := make([][]float64, n)
	prevs := make([]map[string]string, n)
	for i, src := range terms {
		d, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
		if err != nil {
			return nil, err
		}
		prevs[i] = prev
		dist[i] = make([]float64, n)
		for j, dst := range terms {
			dist[i][j] = d[dst]
			if math.IsInf(d[dst], 1) {
				return nil, fmt.Errorf("%s to %s: %w", src, dst, ErrDisconnected)
			}
		}
	}

	// 2) MST of the closure.
	parents, err := prim_kruskal.DenseMST(dist)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisconnected, err)
	}

	// 3) Expand closure edges into graph paths.
	keepNodes := make(map[string]bool)
	keepEdges := make(map[core.EdgeKey]bool)
	for v, p := range parents {
		if p < 0 {
			continue
		}
		path := walkBack(prevs[p], terms[p], terms[v])
		for i, id := range path {
			keepNodes[id] = true
			if i > 0 {
				keepEdges[core.MakeEdgeKey(path[i-1], id)] = true
			}
		}
	}
	union := g.Subgraph(func(e *core.Edge) bool { return keepEdges[e.Key()] }).InducedSubgraph(keepNodes)

	// 4) MST of the union.
	mst, _, err := prim_kruskal.Kruskal(union)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisconnected, err)
	}
	inTree := make(map[core.EdgeKey]bool, len(mst))
	for i := range mst {
		inTree[mst[i].Key()] = true
	}
	tree := union.Subgraph(func(e *core.Edge) bool { return inTree[e.Key()] })

	// 5) Prune non-terminal leaves.
	pruneLeaves(tree, terms)

	return tree, nil
}

// pruneLeaves repeatedly removes nodes of degree ≤ 1 that are not terminals.
func pruneLeaves(tree *core.Graph, terms []string) {
	isTerm := make(map[string]bool, len(terms))
	for _, t := range terms {
		isTerm[t] = true
	}
	for {
		removed := false
		for _, id := range tree.Nodes() {
			if isTerm[id] {
				continue
			}
			if deg, _ := tree.Degree(id); deg <= 1 {
				_ = tree.RemoveNode(id)
				removed = true
			}
		}
		if !removed {
			return
		}
	}
}

// walkBack rebuilds the src→dst path from a Dijkstra predecessor map.
func walkBack(prev map[string]string, src, dst string) []string {
	path := []string{dst}
	for v := dst; v != src; {
		v = prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// TotalLength sums Edge.Length over every edge of tree.
func TotalLength(tree *core.Graph) float64 {
	var total float64
	for _, e := range tree.Edges() {
		total += e.Length
	}

	return total
}

func dedupSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
