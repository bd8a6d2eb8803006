package mst

import (
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/pq"
)

// Prim computes the minimum spanning tree of an undirected, weighted graph
// by growing outward from root. The eager variant: each fringe vertex keeps
// only its cheapest crossing edge, and the indexed min-heap lowers that
// entry in place as better edges appear.
//
// Errors:
//   - ErrInvalidGraph if graph is nil, directed, or unweighted.
//   - ErrEmptyRoot if root is "".
//   - core.ErrVertexNotFound if root is absent.
//   - ErrDisconnected if some vertex cannot be reached from root.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	// 1) Validate shape, then root.
	if graph == nil || graph.Directed() || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 2) distTo[v] is the weight of the cheapest known edge crossing from
	//    the tree to v; edgeTo[v] is that edge's tree-side endpoint.
	n := graph.VertexCount()
	distTo := make(map[string]float64, n)
	edgeTo := make(map[string]string, n)
	inTree := make(map[string]bool, n)

	fringe := pq.NewIndexedMinPQ[string, float64](n)
	distTo[root] = 0
	if err := fringe.Insert(root, 0); err != nil {
		return nil, 0, err
	}

	mst := make([]core.Edge, 0, n-1)
	var total float64

	// 3) Repeatedly move the nearest fringe vertex into the tree and relax
	//    its incident edges.
	for !fringe.IsEmpty() {
		v, _, err := fringe.Pop()
		if err != nil {
			return nil, 0, err
		}
		inTree[v] = true
		if v != root {
			w := distTo[v]
			mst = append(mst, core.Edge{From: edgeTo[v], To: v, Weight: w})
			total += w
		}

		neighbors, err := graph.Neighbors(v)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range neighbors {
			u := e.To
			if inTree[u] || u == v {
				continue
			}
			if best, seen := distTo[u]; !seen || e.Weight < best {
				distTo[u] = e.Weight
				edgeTo[u] = v
				fringe.InsertOrDecrease(u, e.Weight)
			}
		}
	}

	// 4) A spanning tree of n vertices has exactly n-1 edges.
	if len(mst) != n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// TotalWeight sums the weights of a set of edges; a convenience for callers
// that post-process a returned tree.
func TotalWeight(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
