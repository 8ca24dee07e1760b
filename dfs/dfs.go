// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"

	"github.com/katalvlaran/qnetsim/core"
)

type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS traverses g depth-first from startID (or from every unvisited node in
// sorted order with WithFullTraversal).
//
// On a hook error or cancellation the partial result is returned with
// Order cleared.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%q: %w", startID, ErrStartVertexNotFound)
	}

	n := g.NodeCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	starts := []string{startID}
	if dopts.FullTraversal {
		starts = g.Nodes()
	}
	for _, s := range starts {
		if res.Visited[s] {
			continue
		}
		res.Roots = append(res.Roots, s)
		if err := w.traverse(s, 0); err != nil {
			res.Order = nil
			return res, err
		}
	}

	return res, nil
}

func (w *dfsWalker) traverse(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nbrs {
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
