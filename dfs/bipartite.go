package dfs

import "github.com/katalvlaran/algokit/core"

// Bipartition is the result of a two-coloring attempt on an undirected graph.
// When OK is true, Color maps every vertex to side 0 or 1 and every edge
// joins opposite sides. When OK is false, OddCycle holds a witness: an
// odd-length cycle as a closed vertex sequence (first == last).
type Bipartition struct {
	OK       bool
	Color    map[string]int
	OddCycle []string
}

// IsBipartite two-colors the undirected graph g with a DFS. Vertices in the
// same connected component alternate colors along tree edges; an edge whose
// endpoints share a color closes an odd cycle, which is returned as proof.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrUndirectedRequired if g is directed.
//
// Complexity: O(V + E) time, O(V) memory.
func IsBipartite(g *core.Graph) (*Bipartition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrUndirectedRequired
	}

	verts := g.Vertices()
	color := make(map[string]int, len(verts))
	parent := make(map[string]string, len(verts))
	res := &Bipartition{OK: true, Color: color}

	// buildOddCycle walks parent links from both endpoints of the offending
	// edge up to their meeting point; colors guarantee odd total length.
	buildOddCycle := func(u, v string) []string {
		depth := func(x string) int {
			d := 0
			for p, ok := parent[x]; ok; p, ok = parent[p] {
				d++
				x = p
			}

			return d
		}
		du, dv := depth(u), depth(v)
		var up, down []string
		for du > dv {
			up = append(up, u)
			u = parent[u]
			du--
		}
		for dv > du {
			down = append(down, v)
			v = parent[v]
			dv--
		}
		for u != v {
			up = append(up, u)
			down = append(down, v)
			u = parent[u]
			v = parent[v]
		}
		up = append(up, u) // common ancestor
		for i := len(down) - 1; i >= 0; i-- {
			up = append(up, down[i])
		}
		up = append(up, up[0])

		return up
	}

	var visit func(id string) error
	visit = func(id string) error {
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			if e.To == id {
				// A self-loop is an odd cycle of length one.
				res.OK = false
				res.OddCycle = []string{id, id}

				return nil
			}
			if _, seen := color[e.To]; !seen {
				color[e.To] = 1 - color[id]
				parent[e.To] = id
				if err = visit(e.To); err != nil || !res.OK {
					return err
				}
			} else if color[e.To] == color[id] && e.To != parent[id] {
				res.OK = false
				res.OddCycle = buildOddCycle(id, e.To)

				return nil
			}
		}

		return nil
	}

	for _, v := range verts {
		if _, seen := color[v]; seen {
			continue
		}
		color[v] = 0
		if err := visit(v); err != nil {
			return nil, err
		}
		if !res.OK {
			res.Color = nil

			return res, nil
		}
	}

	return res, nil
}
