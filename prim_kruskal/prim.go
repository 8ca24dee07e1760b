// SPDX-License-Identifier: MIT
// Package prim_kruskal provides Prim's Minimum Spanning Tree algorithm in two
// forms: a heap-based variant on a sparse *core.Graph and an O(n²) variant on
// a dense distance matrix (used for metric closures).
package prim_kruskal

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/qnetsim/core"
)

// Prim computes the MST of g by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil.
//   - ErrEmptyRoot          : root is empty.
//   - core.ErrNodeNotFound  : root is not in g.
//   - ErrDisconnected       : g has no nodes, or not every node is reachable from root.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasNode(root) {
		return nil, 0, fmt.Errorf("root %q: %w", root, core.ErrNodeNotFound)
	}

	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u string) error {
		visited[u] = true
		nbrs, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !visited[e.Other(u)] {
				heap.Push(pq, frontier{to: e.Other(u), edge: e})
			}
		}
		return nil
	}
	if err := push(root); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		f := heap.Pop(pq).(frontier)
		if visited[f.to] {
			continue
		}
		mst = append(mst, *f.edge)
		totalWeight += f.edge.Length
		if err := push(f.to); err != nil {
			return nil, 0, err
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// frontier is a candidate edge leading to the unvisited node to.
type frontier struct {
	to   string
	edge *core.Edge
}

// edgePQ is a min-heap of frontier entries ordered by (Length, to, From).
type edgePQ []frontier

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.edge.Length != b.edge.Length {
		return a.edge.Length < b.edge.Length
	}
	if a.to != b.to {
		return a.to < b.to
	}
	return a.edge.Other(a.to) < b.edge.Other(b.to)
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontier)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// DenseMST computes a minimum spanning tree of the complete graph given by
// the n×n matrix dist, rooted at index 0. parents[v] is the parent of v in
// the tree, -1 for the root. Among equal candidates the lowest index wins.
//
// Returns ErrDimensionMismatch for a non-square matrix and ErrDisconnected
// when some entry needed to span the matrix is +Inf.
//
// Time: O(n²). Space: O(n).
func DenseMST(dist [][]float64) ([]int, error) {
	n := len(dist)
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrDimensionMismatch
		}
	}
	inMST := make([]bool, n)
	bestCost := make([]float64, n)
	parents := make([]int, n)
	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	if n == 0 {
		return parents, nil
	}
	bestCost[0] = 0

	for it := 0; it < n; it++ {
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u < 0 {
			return nil, ErrDisconnected
		}
		inMST[u] = true
		for v := 0; v < n; v++ {
			if !inMST[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
				parents[v] = u
			}
		}
	}

	return parents, nil
}
