// Package core provides the shared in-memory graph type used by every graph
// algorithm in algokit (bfs, dfs, mst, spath, flow).
//
// A Graph G = (V,E) is identified by string vertex IDs and configured at
// construction time via functional options:
//
//   - WithDirected()  — edges are one-way (default: undirected, mirrored)
//   - WithWeighted()  — edges carry non-zero float64 weights
//
// Design notes:
//
//   - Deterministic iteration: Vertices(), Edges() and Neighbors() return
//     results in sorted order, so every algorithm built on top of core is
//     reproducible run-to-run.
//   - One edge per vertex pair: AddEdge on an existing pair returns
//     ErrEdgeExists. Self-loops are permitted (From == To).
//   - Undirected edges are mirrored internally but reported once by Edges(),
//     with From ≤ To.
//   - A single sync.RWMutex guards all state; queries take the read lock.
//
// Core methods:
//
//	AddVertex(id) error                  // O(1)
//	HasVertex(id) bool                   // O(1)
//	RemoveVertex(id) error               // O(V)
//	AddEdge(from, to, w) error           // O(1), auto-adds endpoints
//	RemoveEdge(from, to) error           // O(1)
//	HasEdge(from, to) bool               // O(1)
//	EdgeWeight(from, to) (float64, error)// O(1)
//	Neighbors(id) ([]Edge, error)        // O(d log d), sorted by To
//	Vertices() []string                  // O(V log V), sorted
//	Edges() []Edge                       // O(E log E), sorted
//	Degree(id) (int, error)              // O(1)
//	Reverse() *Graph                     // O(V + E), directed only
//	Clone() / CloneEmpty() *Graph        // O(V + E) / O(V)
//
// Errors:
//
//	ErrEmptyVertexID  — vertex ID is the empty string
//	ErrVertexNotFound — operation referenced a missing vertex
//	ErrEdgeNotFound   — operation referenced a missing edge
//	ErrEdgeExists     — AddEdge called twice for the same pair
//	ErrBadWeight      — non-zero weight on an unweighted graph
package core
