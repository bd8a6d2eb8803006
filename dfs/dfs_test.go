// Package dfs_test validates depth-first traversal and the algorithms
// layered on it: topological sort, cycle detection, components, strong
// components, bipartiteness, and transitive closure.
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

// dag builds the digraph A→B→D, A→C→D, D→E used across tests.
func dag(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected())
	for _, pair := range [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"},
	} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], 0))
	}

	return g
}

// ---- 1. Core traversal --------------------------------------------------

func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err = dfs.DFS(g, "missing")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_Orders(t *testing.T) {
	res, err := dfs.DFS(dag(t), "A")
	require.NoError(t, err)

	// Neighbors are explored in sorted order, so the run is deterministic.
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, res.Preorder)
	assert.Equal(t, []string{"E", "D", "B", "C", "A"}, res.Postorder)
	assert.Equal(t, "", res.Parent["A"])
	assert.Equal(t, "B", res.Parent["D"], "first explorer claims the child")
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 3, res.Depth["E"])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := dag(t)
	require.NoError(t, g.AddEdge("X", "Y", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.False(t, res.Visited("X"), "single-source must stay in its component")

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.True(t, res.Visited("X"))
	assert.True(t, res.Visited("Y"))
	assert.Len(t, res.Preorder, 7)
}

func TestDFS_Hooks(t *testing.T) {
	var visits, exits []string
	_, err := dfs.DFS(dag(t), "A",
		dfs.WithOnVisit(func(id string, _ int) error {
			visits = append(visits, id)

			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			exits = append(exits, id)

			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, visits)
	assert.Equal(t, []string{"E", "D", "B", "C", "A"}, exits)

	boom := errors.New("stop here")
	_, err = dfs.DFS(dag(t), "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return boom
		}

		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestDFS_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(dag(t), "A", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ---- 2. Topological sort ------------------------------------------------

func TestTopologicalSort(t *testing.T) {
	order, err := dfs.TopologicalSort(dag(t))
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range dag(t).Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %s→%s out of order", e.From, e.To)
	}
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	und := core.NewGraph()
	require.NoError(t, und.AddEdge("A", "B", 0))
	_, err = dfs.TopologicalSort(und)
	require.ErrorIs(t, err, dfs.ErrDirectedRequired)

	cyc := core.NewGraph(core.WithDirected())
	require.NoError(t, cyc.AddEdge("A", "B", 0))
	require.NoError(t, cyc.AddEdge("B", "C", 0))
	require.NoError(t, cyc.AddEdge("C", "A", 0))
	_, err = dfs.TopologicalSort(cyc)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// ---- 3. Cycle detection -------------------------------------------------

func TestFindCycle_Directed(t *testing.T) {
	c, err := dfs.FindCycle(dag(t))
	require.NoError(t, err)
	assert.Nil(t, c, "a DAG has no cycle")

	g := dag(t)
	require.NoError(t, g.AddEdge("E", "B", 0))
	c, err = dfs.FindCycle(g)
	require.NoError(t, err)
	requireClosedCycle(t, g, c)
}

func TestFindCycle_Undirected(t *testing.T) {
	// A single edge must not be reported as a two-vertex cycle.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	c, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Nil(t, c)

	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "A", 0))
	c, err = dfs.FindCycle(g)
	require.NoError(t, err)
	requireClosedCycle(t, g, c)
	assert.Len(t, c, 4, "triangle: three vertices plus the closing repeat")
}

func TestFindCycle_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "A", 0))
	c, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, c)

	ok, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// requireClosedCycle asserts c starts and ends on the same vertex and that
// every consecutive pair is an edge of g.
func requireClosedCycle(t *testing.T, g *core.Graph, c []string) {
	t.Helper()
	require.NotEmpty(t, c)
	require.GreaterOrEqual(t, len(c), 2)
	require.Equal(t, c[0], c[len(c)-1], "cycle must be closed")
	for i := 0; i+1 < len(c); i++ {
		require.True(t, g.HasEdge(c[i], c[i+1]), "missing edge %s→%s", c[i], c[i+1])
	}
}

// ---- 4. Components ------------------------------------------------------

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("C", "D", 0))
	require.NoError(t, g.AddVertex("Z"))

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}, {"Z"}}, comps)

	id, err := dfs.ComponentID(g)
	require.NoError(t, err)
	assert.Equal(t, id["A"], id["B"])
	assert.NotEqual(t, id["A"], id["C"])
	assert.Equal(t, 2, id["Z"])

	dg := core.NewGraph(core.WithDirected())
	require.NoError(t, dg.AddEdge("A", "B", 0))
	_, err = dfs.Components(dg)
	require.ErrorIs(t, err, dfs.ErrUndirectedRequired)
}

// ---- 5. Strong components -----------------------------------------------

// sccFixture is the classic two-cycle digraph: {A,B,C} and {D,E} strongly
// connected, F a singleton sink.
func sccFixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected())
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"C", "D"}, {"D", "E"}, {"E", "D"},
		{"E", "F"},
	} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], 0))
	}

	return g
}

func TestStrongComponents(t *testing.T) {
	want := [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}

	comps, err := dfs.StrongComponents(sccFixture(t))
	require.NoError(t, err)
	assert.Equal(t, want, comps)

	comps, err = dfs.TarjanSCC(sccFixture(t))
	require.NoError(t, err)
	assert.Equal(t, want, comps, "both algorithms normalize to the same answer")
}

func TestStrongComponents_Errors(t *testing.T) {
	_, err := dfs.StrongComponents(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.TarjanSCC(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	und := core.NewGraph()
	require.NoError(t, und.AddEdge("A", "B", 0))
	_, err = dfs.StrongComponents(und)
	require.ErrorIs(t, err, dfs.ErrDirectedRequired)
	_, err = dfs.TarjanSCC(und)
	require.ErrorIs(t, err, dfs.ErrDirectedRequired)
}

// ---- 6. Bipartiteness ---------------------------------------------------

func TestIsBipartite_EvenCycle(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], 0))
	}

	res, err := dfs.IsBipartite(g)
	require.NoError(t, err)
	require.True(t, res.OK)
	for _, e := range g.Edges() {
		assert.NotEqual(t, res.Color[e.From], res.Color[e.To],
			"edge %s-%s joins same side", e.From, e.To)
	}
}

func TestIsBipartite_OddCycle(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"E", "A"},
	} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], 0))
	}

	res, err := dfs.IsBipartite(g)
	require.NoError(t, err)
	require.False(t, res.OK)
	requireClosedCycle(t, g, res.OddCycle)
	assert.Equal(t, 1, (len(res.OddCycle)-1)%2, "witness must have odd edge count")
	assert.Nil(t, res.Color, "no valid coloring exists")
}

func TestIsBipartite_Errors(t *testing.T) {
	_, err := dfs.IsBipartite(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	dg := core.NewGraph(core.WithDirected())
	require.NoError(t, dg.AddEdge("A", "B", 0))
	_, err = dfs.IsBipartite(dg)
	require.ErrorIs(t, err, dfs.ErrUndirectedRequired)
}

// ---- 7. Transitive closure ----------------------------------------------

func TestTransitiveClosure(t *testing.T) {
	tc, err := dfs.NewTransitiveClosure(dag(t))
	require.NoError(t, err)

	assert.True(t, tc.Reachable("A", "E"))
	assert.True(t, tc.Reachable("B", "D"))
	assert.True(t, tc.Reachable("C", "C"), "every vertex reaches itself")
	assert.False(t, tc.Reachable("E", "A"), "edges are one-way")
	assert.False(t, tc.Reachable("B", "C"))
	assert.False(t, tc.Reachable("nope", "A"))
}

func TestTransitiveClosure_Errors(t *testing.T) {
	_, err := dfs.NewTransitiveClosure(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	und := core.NewGraph()
	require.NoError(t, und.AddEdge("A", "B", 0))
	_, err = dfs.NewTransitiveClosure(und)
	require.ErrorIs(t, err, dfs.ErrDirectedRequired)
}
