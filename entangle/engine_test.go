// SPDX-License-Identifier: MIT
package entangle_test

import (
	"testing"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/entangle"
	"github.com/katalvlaran/qnetsim/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed sequence of draws and counts them.
type seqSource struct {
	vals  []float64
	calls int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v
}

func newEngine(t *testing.T, vals ...float64) (*entangle.Engine, *seqSource) {
	t.Helper()
	src := &seqSource{vals: vals}
	eng, err := entangle.NewEngine(src)
	require.NoError(t, err)

	return eng, src
}

// pathGraph builds A-B-C with the given edge probability and Qc everywhere.
func pathGraph(t *testing.T, p float64, qc int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.SetParams(&p, &qc))

	return g
}

func TestNewEngine_NilSource(t *testing.T) {
	_, err := entangle.NewEngine(nil)
	assert.ErrorIs(t, err, entangle.ErrNilSource)
}

func TestStep_OneDrawPerEdge(t *testing.T) {
	g := pathGraph(t, 0.5, 1)
	eng, src := newEngine(t, 0.1)
	eng.Step(g, nil, true)
	assert.Equal(t, 2, src.calls)
}

func TestStep_ProbabilityThreshold(t *testing.T) {
	g := pathGraph(t, 0.5, 1)
	// A-B draws 0.4 (entangles), B-C draws 0.5 (strict comparison fails).
	eng, _ := newEngine(t, 0.4, 0.5)
	eng.Step(g, nil, false)

	ab, _ := g.Edge("A", "B")
	bc, _ := g.Edge("B", "C")
	assert.True(t, ab.Entangled)
	assert.False(t, bc.Entangled)
}

func TestStep_CertainAndImpossibleLinks(t *testing.T) {
	g := pathGraph(t, 1, 1)
	eng, _ := newEngine(t, 0.999999)
	eng.Step(g, nil, false)
	for _, e := range g.Edges() {
		assert.True(t, e.Entangled)
		assert.Zero(t, e.Age)
	}

	g = pathGraph(t, 0, 1)
	eng, _ = newEngine(t, 0)
	eng.Step(g, nil, false)
	for _, e := range g.Edges() {
		assert.False(t, e.Entangled)
	}
}

func TestStep_DecoheredLinkRegeneratesSameStep(t *testing.T) {
	g := pathGraph(t, 1, 1)
	eng, _ := newEngine(t, 0.5)
	eng.Step(g, nil, false)
	eng.Step(g, nil, false)

	ab, _ := g.Edge("A", "B")
	assert.True(t, ab.Entangled)
	assert.Zero(t, ab.Age)
}

func TestStep_EdgeAgesUntilQc(t *testing.T) {
	g := pathGraph(t, 0, 3)
	ab, _ := g.Edge("A", "B")
	ab.Entangled = true
	eng, _ := newEngine(t, 0.5)

	eng.Step(g, nil, false)
	assert.Equal(t, 1, ab.Age)
	eng.Step(g, nil, false)
	assert.Equal(t, 2, ab.Age)
	assert.True(t, ab.Entangled)
	eng.Step(g, nil, false)
	assert.False(t, ab.Entangled)
	assert.Zero(t, ab.Age)
}

func TestStep_NodeDecoherenceResetsNodeAge(t *testing.T) {
	g := pathGraph(t, 0, 2)
	c, _ := g.Node("C")
	c.Entangled = true
	eng, _ := newEngine(t, 0.5)

	eng.Step(g, nil, false)
	assert.Zero(t, c.Age, "nodes untouched without includeNodes")

	eng.Step(g, nil, true)
	assert.Equal(t, 1, c.Age)
	eng.Step(g, nil, true)
	assert.False(t, c.Entangled)
	assert.Zero(t, c.Age)
	assert.NoError(t, g.CheckState())
}

func TestStep_UsedPathExpiry(t *testing.T) {
	g := pathGraph(t, 0, 2)
	eng, _ := newEngine(t, 0.5)
	used := []routing.UsedPath{
		{Nodes: []string{"B"}, EdgeCount: 2, Destination: "C"},
		{Nodes: []string{"B"}, EdgeCount: 2},
	}

	used = eng.Step(g, used, true)
	require.Len(t, used, 2)
	assert.Equal(t, 1, used[0].Age)

	used = eng.Step(g, used, true)
	require.Len(t, used, 1)
	assert.Empty(t, used[0].Destination)
	assert.Equal(t, 2, used[0].Age)

	kept := eng.Step(g, used, false)
	assert.Equal(t, 2, kept[0].Age, "paths untouched without includeNodes")
}
