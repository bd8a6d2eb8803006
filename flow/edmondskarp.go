package flow

import (
	"math"

	"github.com/katalvlaran/algokit/core"
)

// EdmondsKarp computes the maximum flow from source to sink using BFS for
// the shortest (fewest-edges) augmenting path each round, which bounds the
// number of augmentations independently of capacity magnitudes.
//
// Complexity: O(V·E²) time, O(V + E) memory.
func EdmondsKarp(g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
	o, err := validate(g, source, sink, opts)
	if err != nil {
		return nil, err
	}
	caps, err := buildCaps(g, o)
	if err != nil {
		return nil, err
	}
	residual := cloneCaps(caps)

	var value float64
	for {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}

		parent, bottleneck := shortestAugmentingPath(residual, source, sink, o.Epsilon)
		if bottleneck <= o.Epsilon {
			break
		}

		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
		value += bottleneck
	}

	return newResult(value, source, sink, o, caps, residual), nil
}

// shortestAugmentingPath runs one BFS over the residual network and
// returns the parent links plus the bottleneck to sink (zero if
// unreachable).
func shortestAugmentingPath(residual map[string]map[string]float64,
	source, sink string, eps float64) (map[string]string, float64) {
	parent := make(map[string]string)
	bottle := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range residual[u] {
			if c <= eps || visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], c)
			if v == sink {
				return parent, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
