package dfs

import "github.com/katalvlaran/algokit/core"

// TopologicalSort computes a linear ordering of all vertices in the digraph
// g such that for every edge u→v, u appears before v.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrDirectedRequired if g is undirected.
//   - ErrCycleDetected if g is not acyclic.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph) ([]string, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrDirectedRequired
	}

	// 2) Three-color DFS over the whole forest; a gray→gray edge is a
	//    back edge, i.e. a cycle.
	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts))

	var visit func(id string) error
	visit = func(id string) error {
		state[id] = gray
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			switch state[e.To] {
			case white:
				if err = visit(e.To); err != nil {
					return err
				}
			case gray:
				return ErrCycleDetected
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for _, v := range verts {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 3) Reverse the postorder to obtain the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
