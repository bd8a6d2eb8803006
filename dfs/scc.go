package dfs

import (
	"sort"

	"github.com/katalvlaran/algokit/core"
)

// StrongComponents returns the strongly connected components of the
// digraph g using Kosaraju's two-pass algorithm: DFS postorder on the
// reverse graph drives the visit order of a second DFS on g itself.
//
// Each component lists its members sorted; components are ordered by their
// smallest member.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrDirectedRequired if g is undirected.
//
// Complexity: O(V + E) time, O(V + E) memory (the reversed copy).
func StrongComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrDirectedRequired
	}

	// 1) Reverse postorder of the reverse graph.
	rev, err := g.Reverse()
	if err != nil {
		return nil, err
	}
	revRes, err := DFS(rev, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}
	order := revRes.ReversePostorder()

	// 2) DFS on g in that order; every tree is one strong component.
	visited := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, root := range order {
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

			neighbors, nerr := g.Neighbors(v)
			if nerr != nil {
				return nil, nerr
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

	sortComponents(comps)

	return comps, nil
}

// TarjanSCC returns the strongly connected components of the digraph g
// using Tarjan's single-pass low-link algorithm. The result is normalized
// identically to StrongComponents, so the two are interchangeable.
//
// Complexity: O(V + E) time, O(V) memory; no reversed copy is built.
func TarjanSCC(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrDirectedRequired
	}

	n := g.VertexCount()
	index := make(map[string]int, n)   // discovery index, -1 = unvisited
	lowlink := make(map[string]int, n) // smallest index reachable
	onStack := make(map[string]bool, n)
	var stack []string
	next := 0
	var comps [][]string

	var strongconnect func(v string) error
	strongconnect = func(v string) error {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			w := e.To
			if _, seen := index[w]; !seen {
				if err = strongconnect(w); err != nil {
					return err
				}
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], index[w])
			}
		}

		// v is the root of a component: pop the stack down to v.
		if lowlink[v] == index[v] {
			var members []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				members = append(members, w)
				if w == v {
					break
				}
			}
			sort.Strings(members)
			comps = append(comps, members)
		}

		return nil
	}

	for _, v := range g.Vertices() {
		if _, seen := index[v]; !seen {
			if err := strongconnect(v); err != nil {
				return nil, err
			}
		}
	}

	sortComponents(comps)

	return comps, nil
}

// sortComponents orders components by their smallest (first) member.
func sortComponents(comps [][]string) {
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
}
