// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on fibre-length weighted networks.
//
// Dijkstra computes the minimum-length path from a single source node to all
// other reachable nodes. Edge weights are core.Edge.Length (km), which core
// guarantees to be non-negative.
//
// Options:
//
//	– Source:      ID of the starting node (must be non-empty and present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; nodes beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge length is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrNoPath          if the target is unreachable from the source.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified node does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge length was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that no path connects source and target.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (nodes beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      string  // The ID of the source node
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting node ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source node ID.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: +Inf (explore all reachable).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
