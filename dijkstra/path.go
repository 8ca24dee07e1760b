// SPDX-License-Identifier: MIT
// File: path.go
// Role: Single-pair queries built on Dijkstra (ordered node path, reachability).

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qnetsim/core"
)

// ShortestPath returns the node IDs of a minimum-length path from src to dst,
// both endpoints included. src == dst yields the single-element path [src].
//
// Errors: ErrEmptySource, ErrNilGraph, ErrVertexNotFound (src or dst absent),
// ErrNoPath when dst is unreachable.
func ShortestPath(g *core.Graph, src, dst string) ([]string, error) {
	if g != nil && dst != "" && !g.HasNode(dst) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}
	dist, prev, err := Dijkstra(g, Source(src), WithReturnPath())
	if err != nil {
		return nil, err
	}
	if math.IsInf(dist[dst], 1) {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, src, dst)
	}

	return walkBack(prev, src, dst), nil
}

// PathLength returns the summed edge Length along path.
// Consecutive IDs that are not adjacent yield core.ErrEdgeNotFound.
func PathLength(g *core.Graph, path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		e, ok := g.Edge(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%s-%s: %w", path[i-1], path[i], core.ErrEdgeNotFound)
		}
		total += e.Length
	}

	return total, nil
}

// HasPath reports whether src and dst are connected in g.
// Missing nodes are reported as unreachable.
func HasPath(g *core.Graph, src, dst string) bool {
	_, err := ShortestPath(g, src, dst)

	return err == nil
}

// walkBack rebuilds the src→dst path from the predecessor map.
func walkBack(prev map[string]string, src, dst string) []string {
	var rev []string
	for v := dst; v != src; v = prev[v] {
		rev = append(rev, v)
	}
	rev = append(rev, src)
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
