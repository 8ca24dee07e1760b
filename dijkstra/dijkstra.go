// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on quantum
// network topologies weighted by fibre length.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) heap entries under lazy decrease-key.
//
// Determinism:
//
//   - The heap orders entries by (distance, node ID) and neighbours are
//     relaxed in sorted order, so among equal-length paths the result is
//     always the same one for a given graph.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/qnetsim/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes in g.
//
// Returns:
//
//   - dist: map from node ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for the source, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative length is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative length (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Length < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s-%s length=%g", ErrNegativeWeight, e.From, e.To, e.Length)
		}
	}

	// 3) Prepare state
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 4) Run
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = +Inf for every node and pushes Source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited node and relaxes its edges.
// It stops when the heap is empty or the minimum exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbour of u.
// Only strictly shorter candidates replace the current best, so the first
// predecessor found in (distance, ID) order wins ties.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + e.Length
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
