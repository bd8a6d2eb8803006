package mst

import (
	"sort"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/unionfind"
)

// Kruskal computes the minimum spanning tree of an undirected, weighted
// graph: edges are considered in ascending weight order, and an edge joins
// the tree iff its endpoints lie in different union-find components.
//
// Errors:
//   - ErrInvalidGraph if graph is nil, directed, or unweighted.
//   - ErrDisconnected if the graph does not span a single component.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	mst, total, components, err := kruskalForest(graph)
	if err != nil {
		return nil, 0, err
	}
	if components != 1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// Forest is Kruskal relaxed to disconnected graphs: it returns a minimum
// spanning forest, one tree per connected component, and never reports
// ErrDisconnected.
func Forest(graph *core.Graph) ([]core.Edge, float64, error) {
	forest, total, _, err := kruskalForest(graph)

	return forest, total, err
}

func kruskalForest(graph *core.Graph) ([]core.Edge, float64, int, error) {
	// 1) Validate shape.
	if graph == nil || graph.Directed() || !graph.Weighted() {
		return nil, 0, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, 0, ErrDisconnected
	}

	// 2) Collect edges, dropping self-loops; they can never span.
	all := graph.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}

	// 3) Stable sort keeps the deterministic (From, To) order of
	//    graph.Edges() as the tie-break for equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4) Greedily accept edges bridging distinct components.
	uf := unionfind.New()
	for _, v := range vertices {
		uf.Find(v)
	}

	forest := make([]core.Edge, 0, len(vertices)-1)
	var total float64
	for _, e := range edges {
		if uf.Union(e.From, e.To) {
			forest = append(forest, e)
			total += e.Weight
			if len(forest) == len(vertices)-1 {
				break
			}
		}
	}

	return forest, total, uf.Count(), nil
}
