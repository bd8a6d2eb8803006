package spath

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

// AcyclicSP computes shortest paths from source on a weighted DAG by
// relaxing vertices in topological order. Negative weights are fine; the
// absence of cycles is what makes the single sweep sufficient.
//
// Errors: the Dijkstra validation ladder, then dfs.ErrCycleDetected or
// dfs.ErrDirectedRequired from the topological sort.
//
// Complexity: O(V + E) time, O(V) memory.
func AcyclicSP(g *core.Graph, source string) (*Result, error) {
	return acyclicRelax(g, source, false)
}

// AcyclicLP computes longest paths from source on a weighted DAG — the one
// graph class where longest path is tractable, via the same topological
// sweep with the comparison flipped. Critical-path scheduling is the
// classic use.
// Complexity: O(V + E).
func AcyclicLP(g *core.Graph, source string) (*Result, error) {
	return acyclicRelax(g, source, true)
}

func acyclicRelax(g *core.Graph, source string, longest bool) (*Result, error) {
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

	// 1) Topological order certifies acyclicity and fixes the sweep order.
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	// 2) One relaxation sweep; vertices before source in the order cannot
	//    be on any path from it and are skipped by the reach check.
	res := &Result{
		Source: source,
		Dist:   map[string]float64{source: 0},
		Prev:   map[string]string{source: ""},
	}
	better := func(cand, best float64) bool {
		if longest {
			return cand > best
		}

		return cand < best
	}

	for _, u := range order {
		du, reached := res.Dist[u]
		if !reached {
			continue
		}
		neighbors, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, fmt.Errorf("spath: neighbors of %q: %w", u, nerr)
		}
		for _, e := range neighbors {
			cand := du + e.Weight
			if best, seen := res.Dist[e.To]; !seen || better(cand, best) {
				res.Dist[e.To] = cand
				res.Prev[e.To] = u
			}
		}
	}

	return res, nil
}
