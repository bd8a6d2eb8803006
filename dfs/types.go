// Package dfs provides option and error definitions for depth-first
// traversal and the algorithms built on it.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS-based algorithms.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrDirectedRequired is returned when a digraph-only algorithm
	// (topological sort, strong components, transitive closure) is run on
	// an undirected graph.
	ErrDirectedRequired = errors.New("dfs: operation requires a directed graph")

	// ErrUndirectedRequired is returned when an undirected-only algorithm
	// (connected components, bipartiteness) is run on a digraph.
	ErrUndirectedRequired = errors.New("dfs: operation requires an undirected graph")

	// ErrCycleDetected is returned by TopologicalSort when the digraph is
	// not acyclic.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Vertex visitation states shared by the three-color traversals.
const (
	white = iota // undiscovered
	gray         // on the recursion stack
	black        // fully explored
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is a pre-order hook; a non-nil return aborts the traversal.
	OnVisit func(id string, depth int) error

	// OnExit is a post-order hook, called after a vertex's descendants are
	// fully explored; a non-nil return aborts the traversal.
	OnExit func(id string) error

	// FullTraversal restarts DFS from every unvisited vertex, covering
	// disconnected components; startID is then only the first root.
	FullTraversal bool
}

// DefaultOptions returns Options with Background context, no-op hooks, and
// single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
		OnExit:  func(string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook; errors abort the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers a post-order hook; errors abort the traversal.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithFullTraversal extends the search to every component of the graph.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal.
type Result struct {
	// Preorder lists vertices in discovery order.
	Preorder []string

	// Postorder lists vertices in completion order.
	Postorder []string

	// Parent maps each discovered vertex to its DFS-tree predecessor
	// ("" for roots).
	Parent map[string]string

	// Depth maps each discovered vertex to its DFS-tree depth.
	Depth map[string]int
}

// Visited reports whether id was reached by the traversal.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// ReversePostorder returns the postorder reversed — the topological order
// of a DAG when the traversal covered every vertex.
func (r *Result) ReversePostorder() []string {
	out := make([]string, len(r.Postorder))
	for i, v := range r.Postorder {
		out[len(out)-1-i] = v
	}

	return out
}
