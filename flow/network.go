package flow

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// validate runs the shared input checks and resolves options.
func validate(g *core.Graph, source, sink string, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if g == nil {
		return o, ErrNilGraph
	}
	if !g.Directed() {
		return o, ErrDirectedRequired
	}
	if !g.Weighted() {
		return o, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return o, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return o, ErrSinkNotFound
	}
	if source == sink {
		return o, ErrSameSourceSink
	}

	return o, nil
}

// buildCaps flattens the graph into a nested capacity map
// caps[u][v] = capacity, dropping self-loops and near-zero entries.
// Negative capacities fail fast.
// Complexity: O(V + E).
func buildCaps(g *core.Graph, o Options) (map[string]map[string]float64, error) {
	vertices := g.Vertices()
	caps := make(map[string]map[string]float64, len(vertices))
	for _, u := range vertices {
		caps[u] = make(map[string]float64)
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if e.Weight < -o.Epsilon {
			return nil, fmt.Errorf("%w: edge %s→%s capacity=%g", ErrNegativeCapacity, e.From, e.To, e.Weight)
		}
		if e.Weight > o.Epsilon {
			caps[e.From][e.To] = e.Weight
		}
	}

	return caps, nil
}

// cloneCaps deep-copies a capacity map so Result can keep the originals
// while the algorithms mutate the residual in place.
func cloneCaps(caps map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(caps))
	for u, inner := range caps {
		cp := make(map[string]float64, len(inner))
		for v, c := range inner {
			cp[v] = c
		}
		out[u] = cp
	}

	return out
}

// newResult packages the run output.
func newResult(value float64, source, sink string, o Options,
	capacity, residual map[string]map[string]float64) *Result {
	return &Result{
		Value:    value,
		source:   source,
		sink:     sink,
		eps:      o.Epsilon,
		capacity: capacity,
		residual: residual,
	}
}
