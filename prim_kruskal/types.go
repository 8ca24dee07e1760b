// SPDX-License-Identifier: MIT
// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/qnetsim/core"
)

// ErrInvalidGraph indicates that the graph pointer was nil or the method unknown.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrEmptyRoot indicates that no start node was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrDimensionMismatch indicates a distance matrix that is not square.
var ErrDimensionMismatch = errors.New("prim_kruskal: distance matrix is not square")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start node ID for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm configured by opts.
//
// Returns the MST edges (empty for a single node), the total Length and an
// error when the graph is nil, disconnected or the method is unknown.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, cfg.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
