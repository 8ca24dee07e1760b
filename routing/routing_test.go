// SPDX-License-Identifier: MIT
package routing_test

import (
	"testing"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/routing"
	"github.com/katalvlaran/qnetsim/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build creates a graph from "u-v" pairs with unit lengths and every link entangled.
func build(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1))
		e, _ := g.Edge(p[0], p[1])
		e.Entangled = true
	}

	return g
}

// grid2x2 is the 2×2 grid with row-major "r,c" IDs.
func grid2x2(t *testing.T) *core.Graph {
	return build(t,
		[2]string{"0,0", "0,1"}, [2]string{"0,0", "1,0"},
		[2]string{"0,1", "1,1"}, [2]string{"1,0", "1,1"})
}

func TestGreedy_ConsumesPath(t *testing.T) {
	g := build(t, [2]string{"A", "C"}, [2]string{"C", "B"})
	h := g.EntangledSubgraph()

	used, ok := routing.ShortestPathGreedy{}.Attempt(g, h, []string{"A", "B"}, nil, false)
	require.True(t, ok)
	require.Len(t, used, 1)
	assert.Equal(t, routing.UsedPath{Nodes: []string{"C"}, EdgeCount: 2, Destination: "B"}, used[0])

	assert.Zero(t, h.EdgeCount(), "consumed links leave the entangled view")
	for _, e := range g.Edges() {
		assert.False(t, e.Entangled, "consumed links are released on the topology")
	}
	b, _ := g.Node("B")
	assert.True(t, b.Entangled)
	assert.Zero(t, b.Age)
	assert.NoError(t, g.CheckState())
}

func TestGreedy_LinkUsedOncePerTimestep(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "D"})
	h := g.EntangledSubgraph()

	used, ok := routing.ShortestPathGreedy{}.Attempt(g, h, []string{"A", "B", "D"}, nil, false)
	assert.False(t, ok)
	require.Len(t, used, 1)
	assert.Equal(t, "B", used[0].Destination)
	assert.Empty(t, used[0].Nodes)

	d, _ := g.Node("D")
	assert.False(t, d.Entangled)
}

func TestGreedy_SkipsServedDestinations(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	b, _ := g.Node("B")
	b.Entangled = true

	used, ok := routing.ShortestPathGreedy{}.Attempt(g, g.EntangledSubgraph(), []string{"A", "B"}, nil, false)
	assert.True(t, ok)
	assert.Empty(t, used)
	e, _ := g.Edge("A", "B")
	assert.True(t, e.Entangled, "link not consumed for a served destination")
}

func TestSteiner_TwoByTwoGrid(t *testing.T) {
	users := []string{"0,0", "0,1", "1,0"}
	for _, countFusion := range []bool{false, true} {
		g := grid2x2(t)
		used, ok := routing.ConnectedComponentSteiner{}.Attempt(g, g.EntangledSubgraph(), users, nil, countFusion)
		require.True(t, ok)
		require.Len(t, used, 1)
		assert.Equal(t, 2, used[0].EdgeCount)
		if countFusion {
			assert.Equal(t, []string{"0,0"}, used[0].Nodes)
		} else {
			assert.Empty(t, used[0].Nodes, "the shared corner is a user")
		}
	}
}

func TestSteiner_RepeaterClassification(t *testing.T) {
	// Path: repeater C swaps regardless of countFusion.
	g := build(t, [2]string{"A", "C"}, [2]string{"C", "B"})
	used, ok := routing.ConnectedComponentSteiner{}.Attempt(g, g.EntangledSubgraph(), []string{"A", "B"}, nil, false)
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, used[0].Nodes)

	// Star: hub C fuses three links, counted only with countFusion.
	g = build(t, [2]string{"C", "A"}, [2]string{"C", "B"}, [2]string{"C", "D"})
	users := []string{"A", "B", "D"}
	used, ok = routing.ConnectedComponentSteiner{}.Attempt(g, g.EntangledSubgraph(), users, nil, false)
	require.True(t, ok)
	assert.Empty(t, used[0].Nodes)
	assert.Equal(t, 3, used[0].EdgeCount)

	used, ok = routing.ConnectedComponentSteiner{}.Attempt(g, g.EntangledSubgraph(), users, nil, true)
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, used[0].Nodes)
}

func TestSteiner_UserOutsideComponent(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	require.NoError(t, g.AddEdge("B", "Z", 1))

	used, ok := routing.ConnectedComponentSteiner{}.Attempt(g, g.EntangledSubgraph(), []string{"A", "Z"}, nil, false)
	assert.False(t, ok)
	assert.Empty(t, used)
}

func TestBuildStar_Disjoint(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	ab, _ := g.Edge("A", "B")
	ab.PEdge, ab.Qc, ab.Length = 0.3, 4, 12

	star, err := routing.BuildStar(g, []string{"B", "A", "C"})
	require.NoError(t, err)
	assert.True(t, star.Disjoint)
	assert.Equal(t, 2, star.Graph.EdgeCount())
	assert.Equal(t, g.Nodes(), star.Graph.Nodes())

	se, ok := star.Graph.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, 0.3, se.PEdge)
	assert.Equal(t, 4, se.Qc)
	assert.Equal(t, 12.0, se.Length)
	assert.False(t, se.Entangled)

	se.PEdge = 0.9
	assert.Equal(t, 0.3, ab.PEdge, "star records are independent")
}

func TestBuildStar_GridCentreToCorners(t *testing.T) {
	g, err := topology.Grid(3, 3)
	require.NoError(t, err)

	corners := []string{"0,0", "0,2", "2,0", "2,2"}
	star, err := routing.BuildStar(g, append([]string{"1,1"}, corners...))
	require.NoError(t, err)
	assert.True(t, star.Disjoint)
	assert.Equal(t, 8, star.Graph.EdgeCount())

	deg, err := star.Graph.Degree("1,1")
	require.NoError(t, err)
	assert.Equal(t, 4, deg, "each corner leaves the centre on its own link")
	for _, c := range corners {
		deg, err := star.Graph.Degree(c)
		require.NoError(t, err)
		assert.Equal(t, 1, deg, c)
	}
	assert.Equal(t, 12, g.EdgeCount(), "input topology untouched")
}

func TestBuildStar_FallsBackToSharedEdges(t *testing.T) {
	g := grid2x2(t)
	star, err := routing.BuildStar(g, []string{"0,0", "1,1", "0,1"})
	require.NoError(t, err)
	assert.False(t, star.Disjoint)
	assert.True(t, star.Graph.HasEdge("0,0", "0,1"))
	assert.True(t, star.Graph.HasEdge("0,1", "1,1"))
	assert.Equal(t, 2, star.Graph.EdgeCount())
	assert.Equal(t, 4, g.EdgeCount(), "input topology untouched")
}

func TestBuildStar_Errors(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	require.NoError(t, g.AddNode("island"))

	_, err := routing.BuildStar(g, []string{"A"})
	assert.ErrorIs(t, err, routing.ErrTooFewUsers)

	_, err = routing.BuildStar(g, []string{"A", "island"})
	assert.ErrorIs(t, err, routing.ErrStarBuildFailure)

	_, err = routing.BuildStar(g, []string{"A", "ghost"})
	assert.ErrorIs(t, err, routing.ErrStarBuildFailure)
}
