// Package flow_test drives all three max-flow algorithms over shared
// networks and checks the flow laws: conservation, capacity limits, and
// max-flow/min-cut duality.
package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/flow"
)

const delta = 1e-9

type solver func(*core.Graph, string, string, ...flow.Option) (*flow.Result, error)

var solvers = map[string]solver{
	"FordFulkerson": flow.FordFulkerson,
	"EdmondsKarp":   flow.EdmondsKarp,
	"Dinic":         flow.Dinic,
}

// pipeline builds the textbook network with max flow 19 from s to t.
func pipeline(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, e := range []struct {
		u, v string
		c    float64
	}{
		{"s", "1", 10}, {"s", "2", 10}, {"1", "2", 2}, {"1", "3", 4},
		{"1", "4", 8}, {"2", "4", 9}, {"3", "t", 10}, {"4", "3", 6},
		{"4", "t", 10},
	} {
		require.NoError(t, g.AddEdge(e.u, e.v, e.c))
	}

	return g
}

// ---- 1. Agreement and value ---------------------------------------------

func TestMaxFlow_AllAlgorithmsAgree(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := solve(pipeline(t), "s", "t")
			require.NoError(t, err)
			assert.InDelta(t, 19, res.Value, delta)
		})
	}
}

// ---- 2. Flow laws -------------------------------------------------------

func TestMaxFlow_ConservationAndCapacity(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			g := pipeline(t)
			res, err := solve(g, "s", "t")
			require.NoError(t, err)

			in := map[string]float64{}
			out := map[string]float64{}
			for _, e := range g.Edges() {
				f := res.Flow(e.From, e.To)
				assert.GreaterOrEqual(t, f, 0.0)
				assert.LessOrEqual(t, f, e.Weight+delta,
					"edge %s→%s over capacity", e.From, e.To)
				out[e.From] += f
				in[e.To] += f
			}
			for _, v := range g.Vertices() {
				if v == "s" || v == "t" {
					continue
				}
				assert.InDelta(t, in[v], out[v], delta, "conservation at %s", v)
			}
			assert.InDelta(t, res.Value, out["s"]-in["s"], delta, "net outflow at source")
			assert.InDelta(t, res.Value, in["t"]-out["t"], delta, "net inflow at sink")
		})
	}
}

func TestMaxFlow_MinCutDuality(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			g := pipeline(t)
			res, err := solve(g, "s", "t")
			require.NoError(t, err)

			sourceSide, cut, capacity := res.MinCut()
			assert.InDelta(t, res.Value, capacity, delta, "cut capacity equals flow value")
			assert.Contains(t, sourceSide, "s")
			assert.NotContains(t, sourceSide, "t")
			require.NotEmpty(t, cut)
			for _, e := range cut {
				assert.InDelta(t, e.Weight, res.Flow(e.From, e.To), delta,
					"cut edge %s→%s must be saturated", e.From, e.To)
			}
		})
	}
}

// ---- 3. Edge cases ------------------------------------------------------

func TestMaxFlow_UnreachableSink(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdge("s", "a", 5))
	require.NoError(t, g.AddVertex("t"))

	res, err := flow.Dinic(g, "s", "t")
	require.NoError(t, err)
	assert.Zero(t, res.Value)

	_, cut, capacity := res.MinCut()
	assert.Empty(t, cut)
	assert.Zero(t, capacity)
}

func TestMaxFlow_ParallelPathsAndBackEdge(t *testing.T) {
	// The zig-zag network where naive greedy needs the reverse edge.
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for _, e := range []struct {
		u, v string
		c    float64
	}{
		{"s", "a", 1}, {"s", "b", 1}, {"a", "b", 1}, {"a", "t", 1}, {"b", "t", 1},
	} {
		require.NoError(t, g.AddEdge(e.u, e.v, e.c))
	}
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := solve(g, "s", "t")
			require.NoError(t, err)
			assert.InDelta(t, 2, res.Value, delta)
		})
	}
}

// ---- 4. Validation ------------------------------------------------------

func TestMaxFlow_Validation(t *testing.T) {
	_, err := flow.Dinic(nil, "s", "t")
	require.ErrorIs(t, err, flow.ErrNilGraph)

	und := core.NewGraph(core.WithWeighted())
	require.NoError(t, und.AddEdge("s", "t", 1))
	_, err = flow.Dinic(und, "s", "t")
	require.ErrorIs(t, err, flow.ErrDirectedRequired)

	unw := core.NewGraph(core.WithDirected())
	require.NoError(t, unw.AddEdge("s", "t", 0))
	_, err = flow.Dinic(unw, "s", "t")
	require.ErrorIs(t, err, flow.ErrUnweightedGraph)

	g := pipeline(t)
	_, err = flow.Dinic(g, "missing", "t")
	require.ErrorIs(t, err, flow.ErrSourceNotFound)
	_, err = flow.Dinic(g, "s", "missing")
	require.ErrorIs(t, err, flow.ErrSinkNotFound)
	_, err = flow.Dinic(g, "s", "s")
	require.ErrorIs(t, err, flow.ErrSameSourceSink)

	neg := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, neg.AddEdge("s", "t", -3))
	_, err = flow.FordFulkerson(neg, "s", "t")
	require.ErrorIs(t, err, flow.ErrNegativeCapacity)
}

func TestMaxFlow_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			_, err := solve(pipeline(t), "s", "t", flow.WithContext(ctx))
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestMaxFlow_EpsilonFiltersHairlineEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdge("s", "a", 1e-12))
	require.NoError(t, g.AddEdge("a", "t", 5))

	res, err := flow.EdmondsKarp(g, "s", "t")
	require.NoError(t, err)
	assert.Zero(t, res.Value, "sub-epsilon capacity is treated as absent")

	res, err = flow.EdmondsKarp(g, "s", "t", flow.WithEpsilon(1e-15))
	require.NoError(t, err)
	assert.InDelta(t, 1e-12, res.Value, 1e-15)
}
