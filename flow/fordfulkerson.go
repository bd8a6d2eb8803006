package flow

import (
	"math"

	"github.com/katalvlaran/algokit/core"
)

// FordFulkerson computes the maximum flow from source to sink by
// repeatedly finding any DFS augmenting path in the residual network and
// saturating its bottleneck.
//
// Complexity: O(E·F) time with F the resulting flow value, O(V + E)
// memory. Prefer EdmondsKarp or Dinic when capacities are large.
func FordFulkerson(g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
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

		// 1) Iterative DFS for any path with positive residual capacity.
		parent := make(map[string]string)
		visited := map[string]bool{source: true}
		stack := []string{source}
		found := false
		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for v, c := range residual[u] {
				if c <= o.Epsilon || visited[v] {
					continue
				}
				visited[v] = true
				parent[v] = u
				if v == sink {
					found = true

					break
				}
				stack = append(stack, v)
			}
		}
		if !found {
			break
		}

		// 2) Bottleneck along the discovered path.
		bottleneck := math.Inf(1)
		for v := sink; v != source; v = parent[v] {
			if c := residual[parent[v]][v]; c < bottleneck {
				bottleneck = c
			}
		}

		// 3) Push flow: shrink forward capacities, grow reverse ones.
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
		value += bottleneck
	}

	return newResult(value, source, sink, o, caps, residual), nil
}
