// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing edge distance from the source set,
// with optional hooks, depth limiting, and neighbor filtering.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	return MultiSource(g, []string{startID}, opts...)
}

// MultiSource runs breadth-first search from every vertex in sources at
// once: Depth[v] becomes the distance from the nearest source. Sources all
// start at depth 0 with no parent.
func MultiSource(g *core.Graph, sources []string, opts ...Option) (*Result, error) {
	// 1) Validate graph and sources.
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	// 2) Build options and surface any invalid one immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Unweighted shortest paths require an unweighted graph.
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, s)
		}
	}

	// 4) Prepare walker state with capacity hints.
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 5) Seed the queue with every source at depth 0.
	for _, s := range sources {
		w.enqueue(s, 0, "")
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and queues it.
// Duplicate sources are ignored.
func (w *walker) enqueue(id string, depth int, parent string) {
	if w.visited[id] {
		return
	}
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until it drains, the depth limit cuts off
// expansion, the context is canceled, or a hook aborts.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// Cancellation check once per dequeue.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return err
		}

		// Depth limit: visited at the limit, but not expanded beyond it.
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		neighbors, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, e := range neighbors {
			if !w.opts.FilterNeighbor(item.id, e.To) {
				continue
			}
			w.enqueue(e.To, item.depth+1, item.id)
		}
	}

	return nil
}
