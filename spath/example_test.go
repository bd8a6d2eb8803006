package spath_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/spath"
)

// ExampleDijkstra routes through a small road network.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	_ = g.AddEdge("home", "cafe", 2)
	_ = g.AddEdge("cafe", "office", 3)
	_ = g.AddEdge("home", "office", 9)

	res, _ := spath.Dijkstra(g, "home")
	path, _ := res.PathTo("office")
	fmt.Println(path, res.DistTo("office"))
	// Output:
	// [home cafe office] 5
}

// ExampleAcyclicLP finds a critical path through a task DAG whose weights
// are task durations.
func ExampleAcyclicLP() {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	_ = g.AddEdge("start", "design", 2)
	_ = g.AddEdge("design", "build", 5)
	_ = g.AddEdge("design", "docs", 1)
	_ = g.AddEdge("build", "ship", 3)
	_ = g.AddEdge("docs", "ship", 1)

	res, _ := spath.AcyclicLP(g, "start")
	fmt.Println(res.DistTo("ship"))
	// Output:
	// 10
}
