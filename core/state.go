// SPDX-License-Identifier: MIT
// File: state.go
// Role: Bulk link parameters, per-trial state reset and usage bookkeeping.
// Determinism:
//   - Every method walks nodes/edges through the catalog; results do not
//     depend on iteration order.
// Concurrency:
//   - Catalog read lock for attribute updates, write lock for RemoveNodes.

package core

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// SetUniformPEdge sets PEdge = p on every edge.
func (g *Graph) SetUniformPEdge(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("p=%g: %w", p, ErrBadProbability)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		e.PEdge = p
	}

	return nil
}

// SetUniformQc sets Qc on every node and every edge.
func (g *Graph) SetUniformQc(qc int) error {
	if qc <= 0 {
		return fmt.Errorf("Qc=%d: %w", qc, ErrBadQc)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		n.Qc = qc
	}
	for _, e := range g.edges {
		e.Qc = qc
	}

	return nil
}

// FiberPEdge applies the fibre attenuation model
//
//	p = pOp · 10^(−lossDB·length/10)
//
// where lossDB is the attenuation in dB/km.
func FiberPEdge(pOp, lossDB, length float64) float64 {
	return pOp * math.Pow(10, -(lossDB*length)/10)
}

// SetPEdgeWithLoss recomputes PEdge on every edge from its Length using FiberPEdge.
func (g *Graph) SetPEdgeWithLoss(pOp, lossDB float64) error {
	if pOp < 0 || pOp > 1 {
		return fmt.Errorf("p_op=%g: %w", pOp, ErrBadProbability)
	}
	if lossDB < 0 {
		return fmt.Errorf("loss_dB=%g must be non-negative: %w", lossDB, ErrBadProbability)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		e.PEdge = FiberPEdge(pOp, lossDB, e.Length)
	}

	return nil
}

// SetParams applies a uniform PEdge and/or Qc. A nil argument leaves that
// attribute untouched.
func (g *Graph) SetParams(p *float64, qc *int) error {
	if p != nil {
		if err := g.SetUniformPEdge(*p); err != nil {
			return err
		}
	}
	if qc != nil {
		return g.SetUniformQc(*qc)
	}

	return nil
}

// SetPEdge sets PEdge on every edge: the fibre attenuation model when lossDB
// is given, otherwise the uniform value pOp. A nil pOp is a no-op.
func (g *Graph) SetPEdge(pOp, lossDB *float64) error {
	if pOp == nil {
		return nil
	}
	if lossDB == nil {
		return g.SetUniformPEdge(*pOp)
	}

	return g.SetPEdgeWithLoss(*pOp, *lossDB)
}

// SetLength sets Length on every edge without touching PEdge.
func (g *Graph) SetLength(length float64) error {
	if length < 0 {
		return fmt.Errorf("length=%g: %w", length, ErrNegativeLength)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		e.Length = length
	}

	return nil
}

// SetEdgeLength sets Length on every edge and recomputes PEdge with the
// attenuation model.
func (g *Graph) SetEdgeLength(length, pOp, lossDB float64) error {
	if err := g.SetLength(length); err != nil {
		return err
	}

	return g.SetPEdgeWithLoss(pOp, lossDB)
}

// ResetState clears the entangled flag and age of every node and edge.
// Applying it twice yields the same state as applying it once.
func (g *Graph) ResetState() {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		n.Entangled, n.Age = false, 0
	}
	for _, e := range g.edges {
		e.Entangled, e.Age = false, 0
	}
}

// ResetUsage zeroes UsageCount and UsageFraction on every node.
func (g *Graph) ResetUsage() {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		n.UsageCount, n.UsageFraction = 0, 0
	}
}

// UpdateUsage recomputes UsageFraction = UsageCount / reps on every node.
func (g *Graph) UpdateUsage(reps int) error {
	if reps <= 0 {
		return fmt.Errorf("reps=%d: %w", reps, ErrBadReps)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		n.UsageFraction = float64(n.UsageCount) / float64(reps)
	}

	return nil
}

// RemoveNodes deletes every node whose UsageFraction is below minUsage and
// that is not listed in excluded, together with its incident edges.
// It returns the number of nodes removed.
func (g *Graph) RemoveNodes(minUsage float64, excluded []string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	var doomed []string
	for id, n := range g.nodes {
		if n.UsageFraction < minUsage && !slices.Contains(excluded, id) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		g.removeNodeLocked(id)
	}

	return len(doomed)
}

// UpdateUsageFromSubgraph copies UsageCount and UsageFraction of every node
// of source onto the node with the same ID in target. It is used to project
// statistics gathered on a derived topology back onto the original one.
func UpdateUsageFromSubgraph(target, source *Graph) error {
	for _, sn := range source.NodeList() {
		tn, ok := target.Node(sn.ID)
		if !ok {
			return fmt.Errorf("node %q: %w", sn.ID, ErrNodeNotFound)
		}
		tn.UsageCount = sn.UsageCount
		tn.UsageFraction = sn.UsageFraction
	}

	return nil
}

// CheckState verifies the link-state invariant on every node and edge:
// not entangled ⇒ Age == 0, entangled ⇒ 0 ≤ Age < Qc.
func (g *Graph) CheckState() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		if !stateOK(n.Entangled, n.Age, n.Qc) {
			return fmt.Errorf("node %q entangled=%t age=%d Qc=%d: %w",
				n.ID, n.Entangled, n.Age, n.Qc, ErrStateInvariant)
		}
	}
	for _, e := range g.edges {
		if !stateOK(e.Entangled, e.Age, e.Qc) {
			return fmt.Errorf("edge %s-%s entangled=%t age=%d Qc=%d: %w",
				e.From, e.To, e.Entangled, e.Age, e.Qc, ErrStateInvariant)
		}
	}

	return nil
}

func stateOK(entangled bool, age, qc int) bool {
	if !entangled {
		return age == 0
	}
	return age >= 0 && age < qc
}
