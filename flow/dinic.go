package flow

import (
	"math"
	"sort"

	"github.com/katalvlaran/algokit/core"
)

// Dinic computes the maximum flow from source to sink with level graphs
// and blocking flows: BFS assigns each vertex its distance from source,
// then DFS pushes flow only along edges that advance exactly one level,
// with per-vertex iterators so dead branches are never rescanned.
//
// Complexity: O(V²·E) time in general, O(E·√V) on unit-capacity networks;
// O(V + E) memory.
func Dinic(g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
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

		// 1) BFS level assignment on the residual network.
		level := map[string]int{source: 0}
		queue := []string{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, c := range residual[u] {
				if c > o.Epsilon {
					if _, seen := level[v]; !seen {
						level[v] = level[u] + 1
						queue = append(queue, v)
					}
				}
			}
		}
		if _, reachable := level[sink]; !reachable {
			break
		}

		// 2) Level-graph adjacency, sorted for deterministic push order.
		next := make(map[string][]string, len(residual))
		for u, nbrs := range residual {
			lu, ok := level[u]
			if !ok {
				continue
			}
			for v, c := range nbrs {
				if c > o.Epsilon && level[v] == lu+1 {
					next[u] = append(next[u], v)
				}
			}
			sort.Strings(next[u])
		}

		// 3) Blocking flow: push until the level graph is saturated.
		iter := make(map[string]int, len(next))
		for {
			pushed := blockingPush(residual, next, iter, source, sink, math.Inf(1), o.Epsilon)
			if pushed <= o.Epsilon {
				break
			}
			value += pushed
		}
	}

	return newResult(value, source, sink, o, caps, residual), nil
}

// blockingPush sends up to available units from u toward sink along the
// level graph, advancing iter[u] past exhausted branches.
func blockingPush(residual map[string]map[string]float64, next map[string][]string,
	iter map[string]int, u, sink string, available, eps float64) float64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		c := residual[u][v]
		if c <= eps {
			continue
		}
		pushed := blockingPush(residual, next, iter, v, sink, math.Min(available, c), eps)
		if pushed > eps {
			residual[u][v] -= pushed
			residual[v][u] += pushed

			return pushed
		}
	}

	return 0
}
