// SPDX-License-Identifier: MIT
// File: star.go
// Role: Greedy star construction for the star protocol.
// Determinism:
//   - Destinations are routed in the order given; no backtracking.

package routing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/dijkstra"
)

// Star is the reduced topology connecting the source to every destination.
type Star struct {
	// Graph has every node of the original topology and only the star's
	// edges, with Length, PEdge and Qc copied from the original.
	Graph *core.Graph

	// Disjoint reports whether every destination got an edge-disjoint path.
	Disjoint bool
}

// BuildStar routes users[0] to each of users[1:] in order over a working
// copy of g from which used edges are removed, so paths are edge-disjoint
// as long as possible. When a destination cannot be reached disjointly,
// its shortest path in g is used instead (edges may then be shared) and
// those edges are removed from the working copy if still present.
//
// Returns ErrTooFewUsers for fewer than two users and ErrStarBuildFailure
// when a destination is unreachable in g itself. g is not mutated.
func BuildStar(g *core.Graph, users []string) (*Star, error) {
	if len(users) < 2 {
		return nil, ErrTooFewUsers
	}
	source := users[0]
	remaining := g.Clone()
	star := &Star{Graph: g.CloneEmpty(), Disjoint: true}

	for _, dest := range users[1:] {
		path, err := dijkstra.ShortestPath(remaining, source, dest)
		switch {
		case err == nil:
		case errors.Is(err, dijkstra.ErrNoPath):
			star.Disjoint = false
			path, err = dijkstra.ShortestPath(g, source, dest)
			if err != nil {
				return nil, fmt.Errorf("%w: %s to %s: %v", ErrStarBuildFailure, source, dest, err)
			}
		default:
			return nil, fmt.Errorf("%w: %s to %s: %v", ErrStarBuildFailure, source, dest, err)
		}
		for i := 1; i < len(path); i++ {
			u, v := path[i-1], path[i]
			_ = remaining.RemoveEdge(u, v)
			if err := addStarEdge(star.Graph, g, u, v); err != nil {
				return nil, err
			}
		}
	}

	return star, nil
}

// addStarEdge copies the link parameters of {u, v} from g into star once.
func addStarEdge(star, g *core.Graph, u, v string) error {
	if star.HasEdge(u, v) {
		return nil
	}
	e, ok := g.Edge(u, v)
	if !ok {
		return fmt.Errorf("star edge %s-%s: %w", u, v, core.ErrEdgeNotFound)
	}

	return star.AddEdge(u, v, e.Length, core.WithPEdge(e.PEdge), core.WithEdgeQc(e.Qc))
}
