// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_CanonicalAndDefaults(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(NodeB, NodeA, 2.5))

	e := mustEdge(t, g, NodeA, NodeB)
	assert.Equal(t, NodeA, e.From)
	assert.Equal(t, NodeB, e.To)
	assert.Equal(t, 2.5, e.Length)
	assert.Equal(t, core.DefaultPEdge, e.PEdge)
	assert.Equal(t, core.DefaultQc, e.Qc)
	assert.False(t, e.Entangled)
	assert.True(t, g.HasEdge(NodeB, NodeA))
	assert.Equal(t, core.DefaultQc, mustNode(t, g, NodeA).Qc)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", NodeA, 1), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge(NodeA, NodeA, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(NodeA, NodeB, -1), core.ErrNegativeLength)
	assert.ErrorIs(t, g.AddEdge(NodeA, NodeB, 1, core.WithPEdge(1.5)), core.ErrBadProbability)
	assert.ErrorIs(t, g.AddEdge(NodeA, NodeB, 1, core.WithEdgeQc(0)), core.ErrBadQc)

	require.NoError(t, g.AddEdge(NodeA, NodeB, 1))
	assert.ErrorIs(t, g.AddEdge(NodeB, NodeA, 1), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddNode(NodeC, core.WithNodeQc(-2)), core.ErrBadQc)
}

func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	g := newSquare(t)
	require.NoError(t, g.RemoveNode(NodeA))

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge(NodeA, NodeB))
	ids, err := g.NeighborIDs(NodeB)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeC}, ids)
	assert.ErrorIs(t, g.RemoveNode(NodeA), core.ErrNodeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := newSquare(t)
	require.NoError(t, g.RemoveEdge(NodeB, NodeA))
	assert.False(t, g.HasEdge(NodeA, NodeB))
	assert.ErrorIs(t, g.RemoveEdge(NodeA, NodeB), core.ErrEdgeNotFound)

	deg, err := g.Degree(NodeA)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestDeterministicOrdering(t *testing.T) {
	g := newSquare(t)
	assert.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, g.Nodes())

	var keys []core.EdgeKey
	for _, e := range g.Edges() {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []core.EdgeKey{
		{From: NodeA, To: NodeB},
		{From: NodeA, To: NodeD},
		{From: NodeB, To: NodeC},
		{From: NodeC, To: NodeD},
	}, keys)

	nbrs, err := g.Neighbors(NodeA)
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, NodeB, nbrs[0].Other(NodeA))
	assert.Equal(t, NodeD, nbrs[1].Other(NodeA))

	_, err = g.Neighbors(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEntangledSubgraph_IsIndependentCopy(t *testing.T) {
	g := newSquare(t)
	mustEdge(t, g, NodeA, NodeB).Entangled = true
	mustEdge(t, g, NodeC, NodeD).Entangled = true

	h := g.EntangledSubgraph()
	assert.Equal(t, g.NodeCount(), h.NodeCount())
	assert.Equal(t, 2, h.EdgeCount())
	assert.True(t, h.HasEdge(NodeA, NodeB))
	assert.True(t, h.HasEdge(NodeC, NodeD))
	assert.False(t, h.HasEdge(NodeB, NodeC))

	require.NoError(t, h.RemoveEdge(NodeA, NodeB))
	mustEdge(t, h, NodeC, NodeD).Entangled = false
	mustNode(t, h, NodeA).UsageCount = 9

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, mustEdge(t, g, NodeC, NodeD).Entangled)
	assert.Zero(t, mustNode(t, g, NodeA).UsageCount)
}

func TestInducedSubgraphAndCloneEmpty(t *testing.T) {
	g := newSquare(t)
	sub := g.InducedSubgraph(map[string]bool{NodeA: true, NodeB: true, NodeC: true})
	assert.Equal(t, 3, sub.NodeCount())
	assert.Equal(t, 2, sub.EdgeCount())

	empty := g.CloneEmpty()
	assert.Equal(t, 4, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())

	full := g.Clone()
	assert.Equal(t, g.Nodes(), full.Nodes())
	assert.Equal(t, g.EdgeCount(), full.EdgeCount())
}

func TestStats(t *testing.T) {
	g := newSquare(t)
	mustEdge(t, g, NodeA, NodeB).Entangled = true
	mustNode(t, g, NodeC).Entangled = true

	s := g.Stats()
	assert.Equal(t, 4, s.NodeCount)
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, 1, s.EntangledEdges)
	assert.Equal(t, 1, s.EntangledNodes)
	assert.InDelta(t, 4.0, s.TotalLength, 1e-12)
	assert.InDelta(t, 1.0, s.MeanPEdge, 1e-12)
}
