package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

// ExampleBFS finds the fewest-hop route in a small network.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)
	_ = g.AddEdge("A", "D", 0)
	_ = g.AddEdge("D", "C", 0)

	res, _ := bfs.BFS(g, "A")
	path, _ := res.PathTo("C")

	fmt.Println("hops:", res.Depth["C"])
	fmt.Println("path:", path)

	// Output:
	// hops: 2
	// path: [A B C]
}
