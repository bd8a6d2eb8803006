package spath

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for shortest-path computation.
var (
	// ErrEmptySource is returned when the source vertex ID is "".
	ErrEmptySource = errors.New("spath: empty source vertex")

	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("spath: graph is nil")

	// ErrUnweightedGraph is returned when the graph does not carry weights.
	ErrUnweightedGraph = errors.New("spath: graph must be weighted")

	// ErrNegativeWeight is returned by Dijkstra when any edge weight is
	// negative; use BellmanFord for such graphs.
	ErrNegativeWeight = errors.New("spath: negative edge weight")

	// ErrNegativeCycle is returned when a negative-weight cycle is reachable
	// and shortest distances are therefore unbounded below.
	ErrNegativeCycle = errors.New("spath: negative cycle detected")

	// ErrVertexUnreachable is returned by PathTo for vertices the search
	// never reached.
	ErrVertexUnreachable = errors.New("spath: vertex unreachable from source")
)

// Inf is the distance reported for unreachable vertices.
var Inf = math.Inf(1)

// Result holds single-source shortest-path output.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source string

	// Dist maps every reached vertex to its shortest distance; vertices
	// absent from the map are unreachable (DistTo reports Inf for them).
	Dist map[string]float64

	// Prev maps each reached vertex to its predecessor on a shortest path
	// ("" for the source itself).
	Prev map[string]string
}

// DistTo returns the shortest distance to v, or Inf if unreachable.
func (r *Result) DistTo(v string) float64 {
	if d, ok := r.Dist[v]; ok {
		return d
	}

	return Inf
}

// Reached reports whether v was reached from the source.
func (r *Result) Reached(v string) bool {
	_, ok := r.Dist[v]

	return ok
}

// PathTo reconstructs a shortest path from the source to v by walking
// predecessor links. Returns ErrVertexUnreachable if v was never reached.
// Complexity: O(path length).
func (r *Result) PathTo(v string) ([]string, error) {
	if !r.Reached(v) {
		return nil, fmt.Errorf("%w: %q", ErrVertexUnreachable, v)
	}
	var rev []string
	for cur := v; cur != ""; cur = r.Prev[cur] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
