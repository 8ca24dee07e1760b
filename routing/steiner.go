// SPDX-License-Identifier: MIT
// File: steiner.go
// Role: Connected-component routing with a Steiner tree over the users.

package routing

import (
	"github.com/katalvlaran/qnetsim/bfs"
	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/steiner"
)

// ConnectedComponentSteiner succeeds as soon as every user lies in the
// entangled component of the source; the links are then fused along an
// approximate Steiner tree of that component. It is the strategy of the
// multipath-cooperative protocol.
type ConnectedComponentSteiner struct{}

var _ Strategy = ConnectedComponentSteiner{}

// Name implements Strategy.
func (ConnectedComponentSteiner) Name() string { return "connected-component-steiner" }

// Attempt implements Strategy.
//
// The UsedPath appended on success names the tree nodes that performed
// swapping or fusion:
//
//	degree 2: used, except a user when countFusion is false
//	degree >2: used only when countFusion is true
//	degree <2: never used
//
// EdgeCount is the number of tree links and Destination stays empty.
func (ConnectedComponentSteiner) Attempt(_ *core.Graph, entangled *core.Graph, users []string, usedPaths []UsedPath, countFusion bool) ([]UsedPath, bool) {
	if len(users) < 2 {
		return usedPaths, false
	}
	comp, err := bfs.ConnectedComponent(entangled, users[0])
	if err != nil {
		return usedPaths, false
	}
	inComp := make(map[string]bool, len(comp))
	for _, id := range comp {
		inComp[id] = true
	}
	for _, u := range users {
		if !inComp[u] {
			return usedPaths, false
		}
	}

	tree, err := steiner.ApproxTree(entangled.InducedSubgraph(inComp), users)
	if err != nil {
		return usedPaths, false
	}
	isUser := make(map[string]bool, len(users))
	for _, u := range users {
		isUser[u] = true
	}
	var used []string
	for _, id := range tree.Nodes() {
		deg, _ := tree.Degree(id)
		if countsAsUsed(deg, isUser[id], countFusion) {
			used = append(used, id)
		}
	}

	return append(usedPaths, UsedPath{Nodes: used, EdgeCount: tree.EdgeCount()}), true
}

// countsAsUsed classifies a Steiner tree node by its degree.
func countsAsUsed(degree int, user, countFusion bool) bool {
	switch {
	case degree == 2:
		return !user || countFusion
	case degree > 2:
		return countFusion
	default:
		return false
	}
}
