package dfs

import (
	"sort"

	"github.com/katalvlaran/algokit/core"
)

// Components returns the connected components of the undirected graph g.
// Each component lists its members in sorted order, and components are
// ordered by their smallest member.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrUndirectedRequired if g is directed (use StrongComponents instead).
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrUndirectedRequired
	}

	visited := make(map[string]bool, g.VertexCount())
	var comps [][]string

	// Vertices() is sorted, so components fall out ordered by smallest
	// member and each DFS emits members in a deterministic order.
	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		var members []string
		stack := []string{root}
		visited[root] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, v)

			neighbors, err := g.Neighbors(v)
			if err != nil {
				return nil, err
			}
			for _, e := range neighbors {
				if !visited[e.To] {
					visited[e.To] = true
					stack = append(stack, e.To)
				}
			}
		}
		sort.Strings(members)
		comps = append(comps, members)
	}

	return comps, nil
}

// ComponentID returns a map from vertex to the index of its component in
// the slice returned by Components.
// Complexity: O(V + E).
func ComponentID(g *core.Graph) (map[string]int, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	id := make(map[string]int, g.VertexCount())
	for i, members := range comps {
		for _, v := range members {
			id[v] = i
		}
	}

	return id, nil
}
