// SPDX-License-Identifier: MIT
// Package core: Graph method implementations
//
// This file provides node and edge lifecycle plus read queries on the Graph
// type defined in types.go. Catalog mutations take the write lock; queries
// take the read lock. Adjacency is a nested map adjacency[u][v] = *Edge,
// mirrored for both endpoints, giving constant-time existence checks.
//
// Determinism:
//   - Nodes(), NodeList(), Edges(), NeighborIDs(), Neighbors() all return sorted results.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a new node with the given ID into the Graph.
// Returns ErrEmptyNodeID if id is empty and ErrBadQc if an option sets a
// non-positive threshold. If the node already exists, this is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	n := &Node{ID: id, Qc: DefaultQc}
	for _, opt := range opts {
		opt(n)
	}
	if n.Qc <= 0 {
		return fmt.Errorf("node %q: %w", id, ErrBadQc)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.nodes[id]; exists {
		return nil
	}
	g.nodes[id] = n
	g.adjacency[id] = make(map[string]*Edge)

	return nil
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the live record for id. Mutating the returned value mutates the graph.
func (g *Graph) Node(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]

	return n, ok
}

// RemoveNode deletes the node and all incident edges from the graph.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	g.removeNodeLocked(id)

	return nil
}

func (g *Graph) removeNodeLocked(id string) {
	for nbr, e := range g.adjacency[id] {
		delete(g.edges, e.Key())
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)
}

// AddEdge creates the undirected edge {u, v} with the given length in km.
// Missing endpoints are created with default attributes. New edges start
// with PEdge=DefaultPEdge and Qc=DefaultQc unless overridden by opts, and
// are not entangled.
//
// Returns ErrEmptyNodeID, ErrLoopNotAllowed, ErrNegativeLength,
// ErrBadProbability, ErrBadQc or ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, length float64, opts ...EdgeOption) error {
	// 1) Input validation
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if length < 0 {
		return fmt.Errorf("edge %s-%s length=%g: %w", u, v, length, ErrNegativeLength)
	}
	key := MakeEdgeKey(u, v)
	e := &Edge{From: key.From, To: key.To, Length: length, PEdge: DefaultPEdge, Qc: DefaultQc}
	for _, opt := range opts {
		opt(e)
	}
	if e.PEdge < 0 || e.PEdge > 1 {
		return fmt.Errorf("edge %s-%s p=%g: %w", u, v, e.PEdge, ErrBadProbability)
	}
	if e.Qc <= 0 {
		return fmt.Errorf("edge %s-%s: %w", u, v, ErrBadQc)
	}

	// 2) Ensure both endpoints exist (idempotent)
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}

	// 3) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.edges[key]; exists {
		return fmt.Errorf("edge %s-%s: %w", key.From, key.To, ErrMultiEdgeNotAllowed)
	}
	g.insertEdgeLocked(e)

	return nil
}

// insertEdgeLocked stores e in the catalog and mirrors it in adjacency.
// Both endpoints must already exist.
func (g *Graph) insertEdgeLocked(e *Edge) {
	g.edges[e.Key()] = e
	g.adjacency[e.From][e.To] = e
	g.adjacency[e.To][e.From] = e
}

// RemoveEdge deletes the edge {u, v}.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	key := MakeEdgeKey(u, v)
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.edges[key]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, key)
	delete(g.adjacency[key.From], key.To)
	delete(g.adjacency[key.To], key.From)

	return nil
}

// HasEdge reports whether the edge {u, v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[MakeEdgeKey(u, v)]

	return ok
}

// Edge returns the live record of the edge {u, v}.
func (g *Graph) Edge(u, v string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[MakeEdgeKey(u, v)]

	return e, ok
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeList returns the live node records sorted by ID.
// Complexity: O(V log V).
func (g *Graph) NodeList() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns the live edge records sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// Neighbors returns the edges incident to id, sorted by the opposite endpoint.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]*Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// NeighborIDs returns the IDs of all nodes adjacent to id, sorted ascending.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	ids := make([]string, 0, len(bucket))
	for v := range bucket {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(bucket), nil
}

// NodeCount returns total number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by canonical key for reproducible iteration.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}
		return es[i].To < es[j].To
	})
}
