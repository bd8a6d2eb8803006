// Package dfs implements depth-first search on core.Graph along with the
// classical algorithms that ride on it: topological sort, cycle detection,
// connected and strongly connected components, bipartiteness, and
// transitive closure.
//
// DFS itself supports directed and undirected graphs, cancellation, pre-
// and post-order hooks, and full-forest traversal.
//
// Complexity: O(V + E) time, O(V) memory for every routine in the package
// except TransitiveClosure, which is O(V·(V + E)).
package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID. With
// WithFullTraversal it restarts from every unvisited vertex (startID may
// then be empty to begin at the smallest ID). Returns the traversal orders
// and tree structure, or an error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	// 1) Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3) Single-source mode requires a present start vertex.
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4) Initialize result with capacity hints.
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Preorder:  make([]string, 0, n),
			Postorder: make([]string, 0, n),
			Parent:    make(map[string]string, n),
			Depth:     make(map[string]int, n),
		},
	}

	// 5) Traverse: forest or single tree. In forest mode the explicit
	//    start (when given) is explored first, then remaining roots in
	//    sorted order.
	if o.FullTraversal {
		if startID != "" && g.HasVertex(startID) {
			if err := w.visit(startID, "", 0); err != nil {
				return w.res, err
			}
		}
		for _, v := range g.Vertices() {
			if !w.res.Visited(v) {
				if err := w.visit(v, "", 0); err != nil {
					return w.res, err
				}
			}
		}
	} else if err := w.visit(startID, "", 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// visit explores id at the given depth, recursing into unvisited neighbors
// in sorted order. Honors cancellation and both hooks.
func (w *walker) visit(id, parent string, depth int) error {
	// Cancellation check at entry.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.res.Visited(id) {
		return nil
	}
	w.res.Parent[id] = parent
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return err
	}

	neighbors, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, e := range neighbors {
		if !w.res.Visited(e.To) {
			if err = w.visit(e.To, id, depth+1); err != nil {
				return err
			}
		}
	}

	w.res.Postorder = append(w.res.Postorder, id)

	return w.opts.OnExit(id)
}
