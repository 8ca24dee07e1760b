// SPDX-License-Identifier: MIT
// File: generators.go
// Role: Deterministic topology families composed through Build.
// Determinism:
//   - Node and edge insertion order is fixed per family; RandomSparse draws
//     from a seeded source so equal seeds give equal graphs.

package topology

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/qnetsim/core"
)

// Sentinel errors for generators and loaders.
var (
	// ErrTooFewNodes indicates a size parameter below the family minimum.
	ErrTooFewNodes = errors.New("topology: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("topology: probability out of range")

	// ErrConstructFailed indicates a nil constructor or a failed insertion.
	ErrConstructFailed = errors.New("topology: construction failed")

	// ErrFormat indicates a malformed topology file.
	ErrFormat = errors.New("topology: malformed input")
)

const (
	gridIDFmt = "%d,%d"
	hubID     = "hub"
)

// config carries the link parameters applied by every constructor.
type config struct {
	length float64
	pEdge  float64
	qc     int
	seed   int64
}

// Option customises Build.
type Option func(*config)

// WithLength sets the fibre length in km of generated edges.
func WithLength(km float64) Option {
	return func(c *config) { c.length = km }
}

// WithPEdge sets the entanglement probability of generated edges.
func WithPEdge(p float64) Option {
	return func(c *config) { c.pEdge = p }
}

// WithQc sets the decoherence threshold of generated nodes and edges.
func WithQc(qc int) Option {
	return func(c *config) { c.qc = qc }
}

// WithSeed seeds stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

func newConfig(opts ...Option) config {
	c := config{length: core.DefaultLength, pEdge: core.DefaultPEdge, qc: core.DefaultQc, seed: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Constructor adds one topology family to g.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a new graph and applies each constructor in order.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Grid is a shorthand for Build(opts, GridOf(rows, cols)): a rows×cols
// lattice with IDs "r,c", unit length and p=1, Qc=1 by default.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	return Build(opts, GridOf(rows, cols))
}

// GridOf returns a Constructor for a rows×cols orthogonal grid. Nodes are
// added in row-major order; each cell links to its right and bottom
// neighbours.
func GridOf(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewNodes)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addNode(g, cfg, fmt.Sprintf(gridIDFmt, r, c)); err != nil {
					return fmt.Errorf("Grid: %w", err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// Path returns a Constructor for a repeater chain "0"-"1"-…-"n-1".
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewNodes)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, strconv.Itoa(i-1), strconv.Itoa(i)); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring of n nodes "0"…"n-1".
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, strconv.Itoa(i), strconv.Itoa((i+1)%n)); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Star returns a Constructor for a central "hub" linked to leaves "1"…"n-1".
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewNodes)
		}
		if err := addNode(g, cfg, hubID); err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, hubID, strconv.Itoa(i)); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) graph over
// nodes "0"…"n-1". Pairs are visited in (i<j) order, one draw each.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		rng := rand.New(rand.NewSource(cfg.seed))
		for i := 0; i < n; i++ {
			if err := addNode(g, cfg, strconv.Itoa(i)); err != nil {
				return fmt.Errorf("RandomSparse: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, strconv.Itoa(i), strconv.Itoa(j)); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}

func addNode(g *core.Graph, cfg config, id string) error {
	if err := g.AddNode(id, core.WithNodeQc(cfg.qc)); err != nil {
		return fmt.Errorf("AddNode(%s): %w", id, err)
	}
	return nil
}

// addEdge creates both endpoints with the configured Qc, then the edge.
func addEdge(g *core.Graph, cfg config, u, v string) error {
	if err := addNode(g, cfg, u); err != nil {
		return err
	}
	if err := addNode(g, cfg, v); err != nil {
		return err
	}
	if err := g.AddEdge(u, v, cfg.length, core.WithPEdge(cfg.pEdge), core.WithEdgeQc(cfg.qc)); err != nil {
		return fmt.Errorf("AddEdge(%s-%s): %w", u, v, err)
	}
	return nil
}
