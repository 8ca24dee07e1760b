// SPDX-License-Identifier: MIT
// File: protocols.go
// Role: The three distribution protocols as ready-made runners.

package protocol

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/routing"
)

// SP runs the shortest-path star protocol: the topology is first reduced to
// a star of (preferably edge-disjoint) shortest paths from users[0], the
// greedy strategy runs on the star, and the usage gathered there is
// projected back onto g.
//
// Returns routing.ErrStarBuildFailure when a destination is unreachable.
func SP(ctx context.Context, g *core.Graph, users []string, timesteps, reps int, opts ...Option) (*Result, error) {
	if err := validate(g, users, timesteps, reps); err != nil {
		return nil, err
	}
	star, err := routing.BuildStar(g, users)
	if err != nil {
		return nil, err
	}
	r, err := NewRunner(NameSP, routing.ShortestPathGreedy{}, opts...)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("star built", "edges", star.Graph.EdgeCount(), "disjoint", star.Disjoint)

	res, err := r.Run(ctx, star.Graph, users, timesteps, reps)
	if err != nil {
		return nil, err
	}
	if err := core.UpdateUsageFromSubgraph(g, star.Graph); err != nil {
		return nil, fmt.Errorf("protocol %s: project usage: %w", NameSP, err)
	}

	return res, nil
}

// MPG runs the multipath greedy protocol: shortest-path routing over the
// whole topology, one destination at a time.
func MPG(ctx context.Context, g *core.Graph, users []string, timesteps, reps int, opts ...Option) (*Result, error) {
	r, err := NewRunner(NameMPG, routing.ShortestPathGreedy{}, opts...)
	if err != nil {
		return nil, err
	}

	return r.Run(ctx, g, users, timesteps, reps)
}

// MPC runs the multipath cooperative protocol: success once all users share
// the source's entangled component, fused along a Steiner tree. Node
// resources are not simulated.
func MPC(ctx context.Context, g *core.Graph, users []string, timesteps, reps int, opts ...Option) (*Result, error) {
	opts = append([]Option{WithIncludeNodes(false)}, opts...)
	r, err := NewRunner(NameMPC, routing.ConnectedComponentSteiner{}, opts...)
	if err != nil {
		return nil, err
	}

	return r.Run(ctx, g, users, timesteps, reps)
}

// RunProtocol dispatches to SP, MPG or MPC by name.
func RunProtocol(ctx context.Context, name string, g *core.Graph, users []string, timesteps, reps int, opts ...Option) (*Result, error) {
	switch name {
	case NameSP:
		return SP(ctx, g, users, timesteps, reps, opts...)
	case NameMPG:
		return MPG(ctx, g, users, timesteps, reps, opts...)
	case NameMPC:
		return MPC(ctx, g, users, timesteps, reps, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
	}
}
