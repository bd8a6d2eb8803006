// Package algokit is a library of classical algorithms and data structures:
// sorting, searching, graphs, strings, compression, numerics and optimization.
//
// Each subpackage is a small, self-contained implementation of one textbook
// algorithm family with well-known complexity bounds. There is no shared
// runtime, scheduler or global state: packages interact only through plain
// library calls (spath reuses pq, mst reuses unionfind, and so on).
//
// Subpackages:
//
//	core/      — shared in-memory graph type (string IDs, weighted/directed flags)
//	sorting/   — insertion, selection, shell, merge, quick, 3-way quick, heap sorts
//	pq/        — generic binary heaps and an indexed min-priority queue
//	unionfind/ — weighted quick-union with path halving
//	bst/       — unbalanced and left-leaning red-black binary search trees
//	trie/      — R-way trie and ternary search trie
//	bfs/       — unweighted shortest paths (breadth-first search)
//	dfs/       — traversal orders, cycles, topological sort, components, SCC
//	mst/       — minimum spanning trees (Prim, Kruskal)
//	spath/     — Dijkstra, Bellman–Ford, DAG shortest/longest, Floyd–Warshall
//	flow/      — max-flow / min-cut (Ford–Fulkerson, Edmonds–Karp, Dinic)
//	suffix/    — suffix arrays, LCP, longest repeated/common substring, KWIC
//	match/     — substring search (KMP, Boyer–Moore, Rabin–Karp)
//	strsort/   — LSD/MSD radix sorts and 3-way string quicksort
//	compress/  — bit streams, run-length, Huffman and LZW codecs
//	fft/       — radix-2 fast Fourier transform and convolution
//	simplex/   — dense simplex solver for linear programs in standard form
//
// Every package returns sentinel errors (errors.Is friendly), takes functional
// options where tuning is meaningful, and keeps all randomness instance-scoped
// behind explicit *rand.Rand parameters — there is no process-wide seed state.
package algokit
