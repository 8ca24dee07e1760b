// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// newSquare builds the 4-cycle A-B-C-D-A with unit lengths.
//
//	A───B
//	│   │
//	D───C
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(NodeA, NodeB, 1))
	require.NoError(t, g.AddEdge(NodeB, NodeC, 1))
	require.NoError(t, g.AddEdge(NodeC, NodeD, 1))
	require.NoError(t, g.AddEdge(NodeD, NodeA, 1))

	return g
}

// mustNode fetches a node record or fails the test.
func mustNode(t *testing.T, g *core.Graph, id string) *core.Node {
	t.Helper()
	n, ok := g.Node(id)
	require.Truef(t, ok, "node %q missing", id)

	return n
}

// mustEdge fetches an edge record or fails the test.
func mustEdge(t *testing.T, g *core.Graph, u, v string) *core.Edge {
	t.Helper()
	e, ok := g.Edge(u, v)
	require.Truef(t, ok, "edge %s-%s missing", u, v)

	return e
}
