// Package core_test verifies graph construction, mutation, deterministic
// iteration, cloning and reversal.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
)

// ------------------------------------------------------------------------
// 1. Vertex lifecycle
// ------------------------------------------------------------------------

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	require.NoError(t, g.RemoveVertex("B"))

	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "B"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestRemoveVertex_Missing(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.RemoveVertex("X"), core.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 2. Edge lifecycle and flags
// ------------------------------------------------------------------------

func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
}

func TestAddEdge_UnweightedRejectsWeight(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("A", "B", 3), core.ErrBadWeight)
}

func TestAddEdge_Duplicate(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.ErrorIs(t, g.AddEdge("A", "B", 2), core.ErrEdgeExists)
	// Undirected mirror counts as the same edge.
	require.ErrorIs(t, g.AddEdge("B", "A", 2), core.ErrEdgeExists)
}

func TestAddEdge_UndirectedMirrors(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 7))

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	w, err := g.EdgeWeight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_DirectedOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

func TestSelfLoop_CountedOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 0))
	assert.Equal(t, 1, g.EdgeCount())

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestRemoveEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "B"))
	require.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

// ------------------------------------------------------------------------
// 3. Deterministic iteration
// ------------------------------------------------------------------------

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestEdges_SortedAndReportedOnce(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "A", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 1}, edges[0])
	assert.Equal(t, core.Edge{From: "A", To: "C", Weight: 3}, edges[1])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 2}, edges[2])
}

func TestNeighbors_SortedByDestination(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 0))
	require.NoError(t, g.AddEdge("A", "B", 0))

	ns, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.Equal(t, "B", ns[0].To)
	assert.Equal(t, "C", ns[1].To)

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 4. Clone and Reverse
// ------------------------------------------------------------------------

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 5))

	c := g.Clone()
	require.NoError(t, c.AddEdge("B", "C", 1))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.True(t, c.Weighted())
}

func TestCloneEmpty_KeepsVerticesDropsEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))

	c := g.CloneEmpty()
	assert.Equal(t, []string{"A", "B"}, c.Vertices())
	assert.Equal(t, 0, c.EdgeCount())
	assert.True(t, c.Directed())
}

func TestReverse_FlipsEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 4))

	r, err := g.Reverse()
	require.NoError(t, err)
	assert.True(t, r.HasEdge("B", "A"))
	assert.True(t, r.HasEdge("C", "B"))
	assert.False(t, r.HasEdge("A", "B"))

	w, err := r.EdgeWeight("C", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
}

func TestReverse_UndirectedRejected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Reverse()
	require.ErrorIs(t, err, core.ErrUndirected)
}
