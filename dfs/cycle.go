package dfs

import "github.com/katalvlaran/algokit/core"

// FindCycle searches g for a cycle and returns one as a vertex sequence
// whose first and last elements coincide (e.g. [B C D B]), or nil if the
// graph is acyclic.
//
// Directed graphs report any back edge on the DFS stack; undirected graphs
// report a visited non-parent neighbor (self-loops count, trivial two-vertex
// "cycles" along a single undirected edge do not).
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	parent := make(map[string]string, len(verts))
	var cycle []string

	// buildCycle walks parent links from tail back to head, then closes
	// the loop: head … tail head.
	buildCycle := func(head, tail string) {
		rev := []string{head}
		for v := tail; v != head; v = parent[v] {
			rev = append(rev, v)
		}
		rev = append(rev, head)
		// Reverse into discovery order.
		for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
			rev[i], rev[j] = rev[j], rev[i]
		}
		cycle = rev
	}

	var visit func(id string) (bool, error)
	visit = func(id string) (bool, error) {
		state[id] = gray
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return false, err
		}
		for _, e := range neighbors {
			// Self-loop is the shortest cycle.
			if e.To == id {
				cycle = []string{id, id}

				return true, nil
			}
			// In undirected graphs the mirror of the tree edge back to the
			// parent is not a cycle.
			if !g.Directed() && e.To == parent[id] {
				continue
			}
			switch state[e.To] {
			case white:
				parent[e.To] = id
				found, err := visit(e.To)
				if err != nil || found {
					return found, err
				}
			case gray:
				// Directed: back edge to the recursion stack. Undirected: a
				// gray non-parent neighbor is always an ancestor (undirected
				// DFS has no cross edges), so the parent walk terminates.
				buildCycle(e.To, id)

				return true, nil
			}
		}
		state[id] = black

		return false, nil
	}

	for _, v := range verts {
		if state[v] != white {
			continue
		}
		found, err := visit(v)
		if err != nil {
			return nil, err
		}
		if found {
			return cycle, nil
		}
	}

	return nil, nil
}

// HasCycle reports whether g contains a cycle.
// Complexity: O(V + E).
func HasCycle(g *core.Graph) (bool, error) {
	c, err := FindCycle(g)

	return c != nil, err
}
