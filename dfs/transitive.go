package dfs

import "github.com/katalvlaran/algokit/core"

// TransitiveClosure records all-pairs reachability in a digraph: one DFS
// per vertex, stored as a set per source. Suited to the small dense
// digraphs where the O(V²) storage is acceptable.
type TransitiveClosure struct {
	reach map[string]map[string]struct{}
}

// NewTransitiveClosure computes the transitive closure of the digraph g.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrDirectedRequired if g is undirected (reachability there is just
//     connected components).
//
// Complexity: O(V·(V + E)) time, O(V²) memory.
func NewTransitiveClosure(g *core.Graph) (*TransitiveClosure, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrDirectedRequired
	}

	verts := g.Vertices()
	tc := &TransitiveClosure{reach: make(map[string]map[string]struct{}, len(verts))}

	for _, src := range verts {
		res, err := DFS(g, src)
		if err != nil {
			return nil, err
		}
		set := make(map[string]struct{}, len(res.Preorder))
		for _, v := range res.Preorder {
			set[v] = struct{}{}
		}
		tc.reach[src] = set
	}

	return tc, nil
}

// Reachable reports whether there is a directed path from u to v.
// Every vertex reaches itself. Unknown vertices are reachable from nothing.
// Complexity: O(1).
func (tc *TransitiveClosure) Reachable(u, v string) bool {
	set, ok := tc.reach[u]
	if !ok {
		return false
	}
	_, ok = set[v]

	return ok
}
