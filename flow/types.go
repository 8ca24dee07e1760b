// SPDX-License-Identifier: MIT
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qnetsim/core"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound indicates the source node does not exist.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound indicates the sink node does not exist.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSameEndpoints indicates source == sink.
	ErrSameEndpoints = errors.New("flow: source and sink are the same node")
)

// EdgeError reports an edge whose capacity function returned a negative value.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q-%q: %g", e.From, e.To, e.Cap)
}

// CapacityFunc maps an edge to its capacity.
type CapacityFunc func(e *core.Edge) float64

// UnitCapacity gives every edge capacity 1.
func UnitCapacity(*core.Edge) float64 { return 1 }

// PEdgeCapacity uses the link success probability as capacity.
func PEdgeCapacity(e *core.Edge) float64 { return e.PEdge }

// Options configures MaxFlow.
type Options struct {
	// Ctx allows cancellation between augmentations.
	Ctx context.Context

	// Capacity maps edges to capacities; UnitCapacity by default.
	Capacity CapacityFunc

	// Epsilon: residual capacities ≤ Epsilon are treated as zero.
	Epsilon float64
}

// Option customises Options.
type Option func(*Options)

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithCapacity sets the capacity model. A nil fn keeps the default.
func WithCapacity(fn CapacityFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Capacity = fn
		}
	}
}

// WithEpsilon sets the zero threshold. Panics on a negative value.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic(fmt.Sprintf("flow: WithEpsilon(%g): must be non-negative", eps))
	}
	return func(o *Options) { o.Epsilon = eps }
}

// DefaultOptions returns unit capacities, epsilon 1e-9 and a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Capacity: UnitCapacity, Epsilon: 1e-9}
}
