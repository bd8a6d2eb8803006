// Package mst computes minimum spanning trees of undirected, weighted
// graphs with Prim's and Kruskal's algorithms.
//
// Both entry points return the tree as a []core.Edge plus its total weight,
// and agree on that weight for any connected input (the edge sets may differ
// when equal weights allow several minimum trees).
//
//   - Prim grows a single tree from a root, tracking the cheapest crossing
//     edge per vertex in an indexed min-heap (the eager variant).
//   - Kruskal sorts every edge and accepts those joining distinct
//     union-find components, which also makes it the natural choice for
//     minimum spanning forests of disconnected graphs (see Forest).
//
// Complexity:
//   - Prim:    O(E log V) time, O(V) extra memory.
//   - Kruskal: O(E log E) time, O(V + E) memory.
//
// Errors:
//   - ErrInvalidGraph  — nil, directed, or unweighted input.
//   - ErrEmptyRoot     — Prim called with an empty root ID.
//   - ErrDisconnected  — no spanning tree covers all vertices.
package mst
