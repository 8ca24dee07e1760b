// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"errors"
)

// Node visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds the traversal parameters.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked on discovery (pre-order). An error aborts traversal.
	OnVisit func(id string) error

	// OnExit is invoked after all descendants were explored (post-order),
	// before the node is appended to Order. An error aborts traversal.
	OnExit func(id string) error

	// FilterNeighbor returns false to skip a neighbour.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts DFS from every unvisited node (forest mode).
	FullTraversal bool
}

// DefaultOptions returns a single-source traversal without hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) { o.Ctx = ctx }
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithFilterNeighbor restricts which neighbours are explored.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult collects the traversal outcome.
type DFSResult struct {
	// Order lists nodes in post-order.
	Order []string

	// Depth is the tree depth of each visited node; roots have depth 0.
	Depth map[string]int

	// Parent maps each non-root visited node to its DFS parent.
	Parent map[string]string

	// Visited marks discovered nodes.
	Visited map[string]bool

	// Roots lists the start node of each DFS tree, in discovery order.
	Roots []string
}
