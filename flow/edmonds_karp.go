// SPDX-License-Identifier: MIT
package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qnetsim/core"
)

// residual holds remaining capacities and a sorted neighbour list per node.
type residual struct {
	cap  map[string]map[string]float64
	nbrs map[string][]string
}

// MaxFlow returns the value of a maximum source→sink flow in g.
//
// Returns ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound,
// ErrSameEndpoints, an EdgeError for a negative capacity, or the context
// error if Ctx is cancelled.
func MaxFlow(g *core.Graph, source, sink string, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasNode(source) {
		return 0, fmt.Errorf("%q: %w", source, ErrSourceNotFound)
	}
	if !g.HasNode(sink) {
		return 0, fmt.Errorf("%q: %w", sink, ErrSinkNotFound)
	}
	if source == sink {
		return 0, ErrSameEndpoints
	}

	res, err := buildResidual(g, o)
	if err != nil {
		return 0, err
	}

	var total float64
	for {
		if err := o.Ctx.Err(); err != nil {
			return 0, fmt.Errorf("flow: %w", err)
		}
		path, bottle := res.augmentingPath(source, sink, o.Epsilon)
		if path == nil {
			break
		}
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			res.cap[u][v] -= bottle
			res.cap[v][u] += bottle
		}
		total += bottle
	}

	return total, nil
}

// EdgeDisjointPaths returns the number of pairwise edge-disjoint paths
// between source and sink.
func EdgeDisjointPaths(g *core.Graph, source, sink string, opts ...Option) (int, error) {
	opts = append(opts, WithCapacity(UnitCapacity))
	f, err := MaxFlow(g, source, sink, opts...)
	if err != nil {
		return 0, err
	}

	return int(math.Round(f)), nil
}

// Connectivity returns MaxFlow from source to every destination.
func Connectivity(g *core.Graph, source string, dests []string, opts ...Option) (map[string]float64, error) {
	out := make(map[string]float64, len(dests))
	for _, d := range dests {
		f, err := MaxFlow(g, source, d, opts...)
		if err != nil {
			return nil, err
		}
		out[d] = f
	}

	return out, nil
}

func buildResidual(g *core.Graph, o Options) (*residual, error) {
	res := &residual{
		cap:  make(map[string]map[string]float64, g.NodeCount()),
		nbrs: make(map[string][]string, g.NodeCount()),
	}
	for _, id := range g.Nodes() {
		res.cap[id] = make(map[string]float64)
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("flow: NeighborIDs(%q): %w", id, err)
		}
		res.nbrs[id] = nbrs
	}
	for _, e := range g.Edges() {
		c := o.Capacity(e)
		if c < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: c}
		}
		res.cap[e.From][e.To] += c
		res.cap[e.To][e.From] += c
	}

	return res, nil
}

// augmentingPath finds the fewest-edge source→sink path with residual
// capacity above eps and returns it with its bottleneck, or nil.
func (r *residual) augmentingPath(source, sink string, eps float64) ([]string, float64) {
	parent := map[string]string{source: source}
	bottleneck := map[string]float64{source: math.Inf(1)}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.nbrs[u] {
			if _, seen := parent[v]; seen {
				continue
			}
			c := r.cap[u][v]
			if c <= eps {
				continue
			}
			parent[v] = u
			bottleneck[v] = math.Min(bottleneck[u], c)
			if v == sink {
				return walkBack(parent, source, sink), bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

func walkBack(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
