// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when a start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNoSources is returned when MultiSource is called with no sources.
	ErrNoSources = errors.New("bfs: no source vertices provided")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph;
	// edge counts are only shortest paths when every edge costs the same.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued for visiting. A non-nil
	// return aborts the search and propagates the error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// Background context, no depth limit, no filtering, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
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

// WithOnVisit registers a callback to run on each visit; returning an
// error from the callback stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: no depth limit
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order:  vertices visited, in visit sequence.
//   - Depth:  vertex ID → distance (in edges) from the nearest source.
//   - Parent: vertex ID → predecessor in the BFS tree ("" for sources).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether dest was reached by the search.
func (r *Result) Reached(dest string) bool {
	_, ok := r.Depth[dest]

	return ok
}

// PathTo reconstructs a shortest path from the nearest source to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// Build the path backwards along parent links, then reverse.
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok || prev == "" {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
