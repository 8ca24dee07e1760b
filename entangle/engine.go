// SPDX-License-Identifier: MIT
// File: engine.go
// Role: One-timestep link and node evolution.

package entangle

import (
	"errors"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/routing"
)

// ErrNilSource is returned by NewEngine when no random source is given.
var ErrNilSource = errors.New("entangle: random source is nil")

// Engine performs link-evolution steps with a fixed random source.
type Engine struct {
	src Source
}

// NewEngine returns an Engine drawing from src.
func NewEngine(src Source) (*Engine, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return &Engine{src: src}, nil
}

// Step advances g by one timestep and returns usedPaths with expired
// entries removed. The returned slice shares its backing array with
// usedPaths.
//
// Per edge, in canonical order, one value r is drawn:
//  1. an entangled edge ages; reaching Qc decoheres it (Entangled=false, Age=0);
//  2. a non-entangled edge, including one that just decohered, becomes
//     entangled with Age=0 when PEdge > r.
//
// With includeNodes, every entangled node ages and decoheres at its own Qc,
// then every used path ages and is dropped once Age ≥ Qc of its destination.
// Paths without a destination, or whose destination is no longer in g, are
// kept.
func (e *Engine) Step(g core.Topology, usedPaths []routing.UsedPath, includeNodes bool) []routing.UsedPath {
	for _, edge := range g.Edges() {
		r := e.src.Float64()
		if edge.Entangled {
			edge.Age++
			if edge.Age >= edge.Qc {
				edge.Entangled, edge.Age = false, 0
			}
		}
		if !edge.Entangled && edge.PEdge > r {
			edge.Entangled, edge.Age = true, 0
		}
	}
	if !includeNodes {
		return usedPaths
	}

	for _, n := range g.NodeList() {
		if !n.Entangled {
			continue
		}
		n.Age++
		if n.Age >= n.Qc {
			n.Entangled, n.Age = false, 0
		}
	}

	kept := usedPaths[:0]
	for _, p := range usedPaths {
		p.Age++
		if p.Destination != "" {
			if dest, ok := g.Node(p.Destination); ok && p.Age >= dest.Qc {
				continue
			}
		}
		kept = append(kept, p)
	}

	return kept
}
