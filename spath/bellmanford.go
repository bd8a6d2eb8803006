package spath

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// BellmanFord computes shortest distances from source on a weighted graph
// that may contain negative edge weights. V-1 relaxation rounds over every
// edge reach the fixpoint; a V-th round that still improves anything proves
// a reachable negative cycle.
//
// Note that in an undirected graph any negative edge is itself a negative
// cycle (out and back), which this detection reports.
//
// Validation matches Dijkstra: ErrEmptySource, ErrNilGraph,
// ErrUnweightedGraph, core.ErrVertexNotFound, then ErrNegativeCycle from
// the run itself.
//
// Complexity: O(V·E) time, O(V) memory.
func BellmanFord(g *core.Graph, source string) (*Result, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, core.ErrVertexNotFound
	}

	res := &Result{
		Source: source,
		Dist:   map[string]float64{source: 0},
		Prev:   map[string]string{source: ""},
	}
	if _, err := relaxToFixpoint(g, res); err != nil {
		return nil, err
	}

	return res, nil
}

// NegativeCycle searches the whole graph for a negative cycle and returns
// one as a closed vertex sequence (first == last), or nil if none exists.
// Every vertex is seeded at distance zero — a virtual super-source — so
// cycles in any component are found.
// Complexity: O(V·E).
func NegativeCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	res := &Result{Dist: map[string]float64{}, Prev: map[string]string{}}
	for _, v := range g.Vertices() {
		res.Dist[v] = 0
		res.Prev[v] = ""
	}
	witness, err := relaxToFixpoint(g, res)
	if err == nil {
		return nil, nil
	}
	if witness == "" {
		return nil, err
	}

	// witness was relaxed on the extra round, so it is reachable from a
	// negative cycle. V predecessor hops land strictly inside the cycle;
	// one more walk closes it.
	inside := witness
	for i := 0; i < g.VertexCount(); i++ {
		inside = res.Prev[inside]
	}
	cycle := []string{inside}
	for v := res.Prev[inside]; v != inside; v = res.Prev[v] {
		cycle = append(cycle, v)
	}
	cycle = append(cycle, inside)
	// Predecessor links run backwards; reverse into edge order.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle, nil
}

// relaxToFixpoint runs V-1 rounds of edge relaxation on the seeded Result,
// then one detection round. Returns the vertex relaxed on the detection
// round (wrapped in ErrNegativeCycle) or "" when the fixpoint is clean.
func relaxToFixpoint(g *core.Graph, res *Result) (string, error) {
	verts := g.Vertices()
	n := len(verts)

	relaxRound := func() (string, error) {
		changed := ""
		for _, u := range verts {
			du, ok := res.Dist[u]
			if !ok {
				continue
			}
			neighbors, err := g.Neighbors(u)
			if err != nil {
				return "", fmt.Errorf("spath: neighbors of %q: %w", u, err)
			}
			for _, e := range neighbors {
				cand := du + e.Weight
				if best, seen := res.Dist[e.To]; !seen || cand < best {
					res.Dist[e.To] = cand
					res.Prev[e.To] = u
					changed = e.To
				}
			}
		}

		return changed, nil
	}

	for i := 0; i < n-1; i++ {
		changed, err := relaxRound()
		if err != nil {
			return "", err
		}
		if changed == "" {
			return "", nil // early fixpoint
		}
	}

	witness, err := relaxRound()
	if err != nil {
		return "", err
	}
	if witness != "" {
		return witness, ErrNegativeCycle
	}

	return "", nil
}
