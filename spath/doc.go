// Package spath computes shortest paths on weighted graphs.
//
// Four solvers cover the classical trade-offs:
//
//   - Dijkstra — single-source, non-negative weights, indexed min-heap with
//     decrease-key. O((V+E) log V).
//   - BellmanFord — single-source, negative weights allowed, detects
//     negative cycles; NegativeCycle extracts one as a witness.
//     O(V·E).
//   - AcyclicSP / AcyclicLP — shortest and longest paths on DAGs by
//     relaxing in topological order. O(V+E); the only tractable longest-path
//     case.
//   - FloydWarshall — dense all-pairs distances with path reconstruction.
//     O(V³). AllPairs offers the sparse alternative: Dijkstra per source.
//
// All single-source solvers return a *Result carrying the distance and
// predecessor maps plus PathTo reconstruction.
//
// Errors:
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph — input validation,
//     checked in that order.
//   - core.ErrVertexNotFound — absent source vertex.
//   - ErrNegativeWeight — Dijkstra found a negative edge on the pre-scan.
//   - ErrNegativeCycle — Bellman-Ford or Floyd-Warshall proved no finite
//     shortest path exists.
package spath
