// Package core declares the Graph and Edge types, construction options,
// and the sentinel errors shared by all graph operations.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdge was called for a vertex pair that is
	// already connected.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrUndirected indicates a directed-only operation was called on an
	// undirected graph.
	ErrUndirected = errors.New("core: operation requires a directed graph")
)

// Edge is a connection between two vertices.
//
// For directed graphs the edge runs From→To. For undirected graphs the pair
// is unordered; Edges() reports each undirected edge once with From ≤ To,
// while Neighbors(v) reports it oriented away from v.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge (0 in unweighted graphs).
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected makes all edges one-way (From→To).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// adj[u][v] holds the weight of edge u→v; undirected edges are stored in both
// orientations. mu guards vertices and adj.
type Graph struct {
	mu sync.RWMutex

	directed bool // edges are one-way
	weighted bool // non-zero weights allowed

	vertices map[string]struct{}           // vertex ID set
	adj      map[string]map[string]float64 // adj[from][to] = weight
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// unweighted; pass WithDirected() and/or WithWeighted() to change that.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }
