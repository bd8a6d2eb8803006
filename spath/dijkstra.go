package spath

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/pq"
)

// Dijkstra computes shortest distances from source to every reachable
// vertex of the weighted graph g. The eager variant: each fringe vertex
// holds one entry in an indexed min-heap, lowered in place on relaxation.
//
// Validation, in order:
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain source (core.ErrVertexNotFound).
//  5. No edge may carry a negative weight (ErrNegativeWeight, pre-scan).
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Dijkstra(g *core.Graph, source string) (*Result, error) {
	// 1) Validation ladder.
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

	// 2) Fail fast on negative weights; Dijkstra's greedy choice is only
	//    sound without them.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Run the indexed-heap loop.
	n := g.VertexCount()
	res := &Result{
		Source: source,
		Dist:   make(map[string]float64, n),
		Prev:   make(map[string]string, n),
	}
	done := make(map[string]bool, n)

	fringe := pq.NewIndexedMinPQ[string, float64](n)
	res.Dist[source] = 0
	res.Prev[source] = ""
	if err := fringe.Insert(source, 0); err != nil {
		return nil, err
	}

	for !fringe.IsEmpty() {
		u, du, err := fringe.Pop()
		if err != nil {
			return nil, err
		}
		done[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("spath: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			v := e.To
			if done[v] {
				continue
			}
			cand := du + e.Weight
			if best, seen := res.Dist[v]; !seen || cand < best {
				res.Dist[v] = cand
				res.Prev[v] = u
				fringe.InsertOrDecrease(v, cand)
			}
		}
	}

	return res, nil
}

// AllPairs runs Dijkstra from every vertex and returns one Result per
// source — the sparse-graph alternative to FloydWarshall.
// Complexity: O(V·(V + E) log V).
func AllPairs(g *core.Graph) (map[string]*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := make(map[string]*Result, g.VertexCount())
	for _, src := range g.Vertices() {
		res, err := Dijkstra(g, src)
		if err != nil {
			return nil, err
		}
		out[src] = res
	}

	return out, nil
}
