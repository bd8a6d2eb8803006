package spath

import "github.com/katalvlaran/algokit/core"

// AllPairsDense holds Floyd-Warshall output: dense all-pairs distances with
// next-hop path reconstruction.
type AllPairsDense struct {
	verts []string
	index map[string]int
	dist  [][]float64
	next  [][]int // next[i][j] = first hop on a shortest i→j path, -1 if none
}

// FloydWarshall computes all-pairs shortest distances with the classic
// triple loop. Negative edges are allowed; a negative diagonal after the
// run proves a negative cycle and yields ErrNegativeCycle.
//
// Suited to dense graphs; for sparse ones prefer AllPairs (Dijkstra per
// source).
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall(g *core.Graph) (*AllPairsDense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 1) Dense initialization: self-distance 0, direct edges, Inf elsewhere.
	verts := g.Vertices()
	n := len(verts)
	index := make(map[string]int, n)
	for i, v := range verts {
		index[v] = i
	}

	dist := make([][]float64, n)
	next := make([][]int, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = Inf
			next[i][j] = -1
		}
		dist[i][i] = 0
		next[i][i] = i
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		if e.Weight < dist[i][j] {
			dist[i][j] = e.Weight
			next[i][j] = j
		}
		if !g.Directed() && e.Weight < dist[j][i] {
			dist[j][i] = e.Weight
			next[j][i] = i
		}
	}

	// 2) Relax through each intermediate vertex in turn.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if cand := dist[i][k] + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	// 3) A vertex cheaper than itself sits on a negative cycle.
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	return &AllPairsDense{verts: verts, index: index, dist: dist, next: next}, nil
}

// Dist returns the shortest distance from u to v, or Inf when no path
// exists or either vertex is unknown.
func (a *AllPairsDense) Dist(u, v string) float64 {
	i, okU := a.index[u]
	j, okV := a.index[v]
	if !okU || !okV {
		return Inf
	}

	return a.dist[i][j]
}

// HasPath reports whether v is reachable from u.
func (a *AllPairsDense) HasPath(u, v string) bool {
	return a.Dist(u, v) != Inf
}

// Path reconstructs a shortest path from u to v by following next-hop
// links, or nil when no path exists.
// Complexity: O(path length).
func (a *AllPairsDense) Path(u, v string) []string {
	i, okU := a.index[u]
	j, okV := a.index[v]
	if !okU || !okV || a.next[i][j] < 0 {
		return nil
	}
	path := []string{u}
	for i != j {
		i = a.next[i][j]
		path = append(path, a.verts[i])
	}

	return path
}
