// SPDX-License-Identifier: MIT
// Package routing defines the routing strategies that decide, once per
// timestep, whether the links entangled so far let the users share a
// multipartite state, and the star builder used by the star protocol.
//
// This file declares UsedPath, the Strategy contract and sentinel errors.
package routing

import (
	"errors"

	"github.com/katalvlaran/qnetsim/core"
)

// ErrStarBuildFailure indicates that a destination is unreachable from the
// source even in the unrestricted topology.
var ErrStarBuildFailure = errors.New("routing: destination unreachable, cannot build star")

// ErrTooFewUsers indicates a user list without at least a source and one destination.
var ErrTooFewUsers = errors.New("routing: need a source and at least one destination")

// UsedPath records the resources consumed by one routing success: the
// interior nodes that performed swapping or fusion and the number of links.
//
// Shortest-path strategies set Destination and the path is aged once per
// timestep; it expires when Age reaches the destination's Qc. Paths with an
// empty Destination never expire within a trial.
type UsedPath struct {
	Nodes       []string
	EdgeCount   int
	Age         int
	Destination string
}

// Strategy decides per timestep whether the users now share a GHZ state.
//
// g is the trial's topology, entangled is the independent entangled
// subgraph derived from it after the link-evolution step, users[0] is the
// source. A successful Attempt may append to usedPaths; it returns the
// updated slice and the success flag. Missing paths are never errors:
// they are "no progress this timestep".
type Strategy interface {
	// Name identifies the strategy in logs, metrics and stored results.
	Name() string

	// Attempt runs one routing attempt.
	Attempt(g *core.Graph, entangled *core.Graph, users []string, usedPaths []UsedPath, countFusion bool) ([]UsedPath, bool)
}
