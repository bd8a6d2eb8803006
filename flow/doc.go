// Package flow computes maximum flows and minimum cuts on directed,
// weighted graphs, where edge weights are read as capacities.
//
// Three algorithms share one entry shape and one Result:
//
//   - FordFulkerson — DFS augmenting paths. O(E·F) with F the max-flow
//     value; fine for small integral networks.
//   - EdmondsKarp — BFS shortest augmenting paths. O(V·E²), independent
//     of capacity magnitudes.
//   - Dinic — level graph plus blocking flow. O(V²·E) in general,
//     O(E·√V) on unit-capacity networks; the default choice for larger
//     inputs.
//
// The Result exposes the flow value, per-edge flows, residual capacities,
// and the minimum cut certificate; by max-flow/min-cut duality the cut's
// capacity always equals the flow value.
//
// Options:
//   - WithEpsilon(e) — capacities and residuals within e of zero are
//     treated as zero (default 1e-9).
//   - WithContext(ctx) — cancellation between augmentation rounds.
//
// Errors:
//   - ErrNilGraph, ErrDirectedRequired, ErrUnweightedGraph — input shape.
//   - ErrSourceNotFound, ErrSinkNotFound, ErrSameSourceSink — endpoints.
//   - ErrNegativeCapacity — some edge weight is below -Epsilon.
package flow
