package flow_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/flow"
)

// layeredNetwork builds width² cross-connected layers between source and
// sink, a dense worst-ish case for augmenting-path algorithms.
func layeredNetwork(width int) *core.Graph {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	for i := 0; i < width; i++ {
		left := fmt.Sprintf("l%03d", i)
		right := fmt.Sprintf("r%03d", i)
		_ = g.AddEdge("s", left, 4)
		_ = g.AddEdge(right, "t", 4)
		for j := 0; j < width; j++ {
			_ = g.AddEdge(left, fmt.Sprintf("r%03d", j), 1)
		}
	}

	return g
}

func BenchmarkFordFulkerson(b *testing.B) {
	g := layeredNetwork(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.FordFulkerson(g, "s", "t"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEdmondsKarp(b *testing.B) {
	g := layeredNetwork(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.EdmondsKarp(g, "s", "t"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDinic(b *testing.B) {
	g := layeredNetwork(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.Dinic(g, "s", "t"); err != nil {
			b.Fatal(err)
		}
	}
}
