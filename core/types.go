// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Node, and Edge types of a quantum
// network topology, and provides the primitives for building, querying,
// cloning and resetting it.
//
// This file declares Node, Edge, EdgeKey, Graph, the Topology contract,
// functional options, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID          - node ID is the empty string.
//	ErrNodeNotFound         - requested node does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrLoopNotAllowed       - self-loop requested.
//	ErrMultiEdgeNotAllowed  - a second edge between the same endpoints.
//	ErrNegativeLength       - edge length below zero.
//	ErrBadProbability       - probability outside [0,1].
//	ErrBadQc                - decoherence threshold not positive.
//	ErrBadReps              - non-positive repetition count.
//	ErrStateInvariant       - entangled/age invariant violated.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeLength indicates an edge length below zero.
	ErrNegativeLength = errors.New("core: edge length must be non-negative")

	// ErrBadProbability indicates a probability outside [0,1].
	ErrBadProbability = errors.New("core: probability must be in [0,1]")

	// ErrBadQc indicates a decoherence threshold that is not strictly positive.
	ErrBadQc = errors.New("core: Qc must be positive")

	// ErrBadReps indicates a non-positive repetition count for usage fractions.
	ErrBadReps = errors.New("core: reps must be positive")

	// ErrStateInvariant indicates an entangled/age pair outside the allowed range.
	ErrStateInvariant = errors.New("core: link state invariant violated")
)

// Defaults applied to freshly added nodes and edges. They mirror a topology
// that has not been parameterised yet: every link always succeeds and lives
// for a single timestep.
const (
	DefaultQc     = 1
	DefaultPEdge  = 1.0
	DefaultLength = 1.0
)

// Node is a network node (repeater or user).
//
// Entangled/Age describe the node-held resource (a Bell pair shared with
// the source after a routing step). UsageCount accumulates over the trials
// of one protocol run; UsageFraction is derived from it once per run.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Entangled reports whether the node currently holds a resource.
	Entangled bool

	// Age is the number of timesteps the current resource has existed.
	Age int

	// Qc is the decoherence threshold in timesteps.
	Qc int

	// UsageCount is how often the node took part in a successful routing.
	UsageCount int

	// UsageFraction is UsageCount divided by the number of trials.
	UsageFraction float64
}

// Edge is an undirected quantum link. From and To are stored in canonical
// order (From < To) so that an edge has a single identity regardless of
// the order in which its endpoints were supplied.
type Edge struct {
	From string
	To   string

	// Length of the fibre in km; used as the shortest-path weight.
	Length float64

	// PEdge is the per-timestep entanglement success probability.
	PEdge float64

	// Qc is the decoherence threshold in timesteps.
	Qc int

	Entangled bool
	Age       int
}

// EdgeKey is the canonical identity of an undirected edge.
type EdgeKey struct {
	From string
	To   string
}

// MakeEdgeKey returns the canonical key for the unordered pair {u, v}.
func MakeEdgeKey(u, v string) EdgeKey {
	if v < u {
		u, v = v, u
	}
	return EdgeKey{From: u, To: v}
}

// Key returns the canonical identity of e.
func (e *Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// NodeOption configures a node when it is first added.
type NodeOption func(*Node)

// WithNodeQc sets the decoherence threshold of a new node.
func WithNodeQc(qc int) NodeOption {
	return func(n *Node) { n.Qc = qc }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithPEdge sets the entanglement success probability of a new edge.
func WithPEdge(p float64) EdgeOption {
	return func(e *Edge) { e.PEdge = p }
}

// WithEdgeQc sets the decoherence threshold of a new edge.
func WithEdgeQc(qc int) EdgeOption {
	return func(e *Edge) { e.Qc = qc }
}

// Topology is the view of a network consumed by the link-evolution engine:
// deterministic enumeration of nodes and edges and node lookup by ID.
// *Graph satisfies it.
type Topology interface {
	// NodeList returns the live node records sorted by ID.
	NodeList() []*Node

	// Edges returns the live edge records sorted by canonical key.
	Edges() []*Edge

	// Node returns the live record for id.
	Node(id string) (*Node, bool)
}

var _ Topology = (*Graph)(nil)

// Graph is the in-memory network topology.
//
// It is undirected, simple (no loops, no parallel edges) and weighted by
// Edge.Length. mu guards the node/edge catalogs and adjacency; the records
// themselves are owned by whichever trial is driving the graph and are
// mutated in place without locking.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node
	edges map[EdgeKey]*Edge

	// adjacency[u][v] = edge between u and v, mirrored for both endpoints.
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[EdgeKey]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
}
