// Package unionfind implements the disjoint-set (union-find) structure with
// union by size and path halving.
//
// Elements are string IDs, added lazily: Union and Find create unseen
// elements as singleton sets. The structure answers connectivity queries in
// effectively constant amortized time — O(α(n)), the inverse Ackermann
// function — which is what makes Kruskal's MST algorithm (mst package) run
// in O(E log E).
//
// Operations:
//
//	Find(x) string        — canonical representative of x's set
//	Union(x, y) bool      — merge the sets of x and y; false if already joined
//	Connected(x, y) bool  — same-set query
//	Count() int           — number of disjoint sets
//	Size(x) int           — size of x's set
package unionfind
