package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is
// a no-op. Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
// Complexity: O(V) worst case (scanning other adjacency rows).
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	delete(g.vertices, id)
	delete(g.adj, id)
	// Remove incoming references from every remaining row.
	for _, row := range g.adj {
		delete(row, id)
	}

	return nil
}

// AddEdge connects from→to with the given weight, creating missing endpoints.
// Undirected graphs mirror the edge in both orientations.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrBadWeight if weight ≠ 0 on an unweighted graph.
//   - ErrEdgeExists if the pair is already connected.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)
	if _, ok := g.adj[from][to]; ok {
		return ErrEdgeExists
	}
	g.adj[from][to] = weight
	if !g.directed && from != to {
		g.adj[to][from] = weight
	}

	return nil
}

// RemoveEdge deletes the edge between from and to (both orientations for
// undirected graphs). Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[from], to)
	if !g.directed {
		delete(g.adj[to], from)
	}

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// EdgeWeight returns the weight of the edge from→to, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns the edges leaving id (all incident edges in undirected
// graphs), oriented away from id and sorted by destination.
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(g.adj[id]))
	for to, w := range g.adj[id] {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge, sorted by (From, To). Undirected edges appear
// once, with From ≤ To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for from, row := range g.adj {
		for to, w := range row {
			if !g.directed && from > to {
				continue // mirror image; reported from the smaller endpoint
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Degree returns the number of edges leaving id (incident edges in
// undirected graphs).
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adj[id]), nil
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E| (undirected edges counted once).
// Complexity: O(V) (row length summation).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	loops := 0
	for from, row := range g.adj {
		total += len(row)
		if _, ok := row[from]; ok {
			loops++
		}
	}
	if g.directed {
		return total
	}
	// Every non-loop edge is stored twice in an undirected graph.
	return (total-loops)/2 + loops
}

// Reverse returns a new graph with every edge direction flipped.
// Returns ErrUndirected for undirected graphs (reversal is meaningless).
// Complexity: O(V + E).
func (g *Graph) Reverse() (*Graph, error) {
	if !g.directed {
		return nil, ErrUndirected
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Graph{
		directed: true,
		weighted: g.weighted,
		vertices: make(map[string]struct{}, len(g.vertices)),
		adj:      make(map[string]map[string]float64, len(g.adj)),
	}
	for id := range g.vertices {
		r.vertices[id] = struct{}{}
		r.adj[id] = make(map[string]float64)
	}
	for from, row := range g.adj {
		for to, w := range row {
			r.adj[to][from] = w
		}
	}

	return r, nil
}

// CloneEmpty returns a graph with the same flags and vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		vertices: make(map[string]struct{}, len(g.vertices)),
		adj:      make(map[string]map[string]float64, len(g.vertices)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
		c.adj[id] = make(map[string]float64)
	}

	return c
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for from, row := range g.adj {
		for to, w := range row {
			c.adj[from][to] = w
		}
	}

	return c
}

// ensureVertexLocked inserts id into the vertex set; caller holds mu.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string]float64)
}
