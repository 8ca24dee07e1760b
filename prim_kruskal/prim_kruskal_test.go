// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond: A-B 1, B-C 2, C-D 1, D-A 3, A-C 4. MST = {A-B, C-D, B-C}, total 4.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "A", 3))
	require.NoError(t, g.AddEdge("A", "C", 4))

	return g
}

func keys(es []core.Edge) []core.EdgeKey {
	out := make([]core.EdgeKey, len(es))
	for i := range es {
		out[i] = es[i].Key()
	}
	return out
}

func TestKruskal_Diamond(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(diamond(t))
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)
	assert.Equal(t, []core.EdgeKey{{From: "A", To: "B"}, {From: "C", To: "D"}, {From: "B", To: "C"}}, keys(mst))
}

func TestPrim_MatchesKruskalWeight(t *testing.T) {
	mst, total, err := prim_kruskal.Prim(diamond(t), "D")
	require.NoError(t, err)
	assert.Len(t, mst, 3)
	assert.Equal(t, 4.0, total)

	_, viaCompute, err := prim_kruskal.Compute(diamond(t),
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("A"))
	require.NoError(t, err)
	assert.Equal(t, total, viaCompute)
}

func TestMST_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	g := diamond(t)
	require.NoError(t, g.AddNode("Z"))
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Prim(diamond(t), "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)
	_, _, err = prim_kruskal.Prim(diamond(t), "nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, _, err = prim_kruskal.Compute(diamond(t), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestKruskal_SingleNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("solo"))
	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)
}

func TestDenseMST(t *testing.T) {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 2, 9},
		{2, 0, 3},
		{9, 3, 0},
	}
	parents, err := prim_kruskal.DenseMST(dist)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1}, parents)

	_, err = prim_kruskal.DenseMST([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, prim_kruskal.ErrDimensionMismatch)

	_, err = prim_kruskal.DenseMST([][]float64{{0, inf}, {inf, 0}})
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	parents, err = prim_kruskal.DenseMST(nil)
	require.NoError(t, err)
	assert.Empty(t, parents)
}
