// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It works on an undirected *core.Graph weighted by Edge.Length.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/qnetsim/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g by edge Length.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and g is not connected.
//
// Determinism: edges are stable-sorted by Length over the canonical
// (From, To) order, so equal-length ties are always resolved the same way.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Nodes()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 1. Sort edges by ascending Length; stable over canonical key order.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	// 2. Disjoint-set forest.
	ds := newDisjointSet(vertices)

	// 3. Greedy edge selection.
	var (
		mst         []core.Edge
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if ds.union(e.From, e.To) {
			mst = append(mst, *e)
			totalWeight += e.Length
			if len(mst) == numVerts-1 {
				break
			}
		}
	}
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// disjointSet is a union-find forest over string IDs.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the root of u with iterative path halving.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
