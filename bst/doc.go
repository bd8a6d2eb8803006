// Package bst provides ordered symbol tables backed by binary search trees:
//
//   - BST      — the plain, unbalanced tree. O(log n) expected under random
//     insertion order, O(n) worst case (sorted insertions degenerate into a
//     linked list).
//   - RedBlack — a left-leaning red-black BST. Guaranteed O(log n) for every
//     operation; the tree height never exceeds 2·lg(n+1).
//
// Both trees share the same generic surface over K cmp.Ordered, V any:
//
//	Put(k, v)               — insert or replace
//	Get(k) (V, bool)        — lookup
//	Contains(k) bool
//	Delete(k) bool          — remove; reports whether k was present
//	DeleteMin() error
//	Min() / Max() (K, error)
//	Floor(k) / Ceiling(k) (K, error) — greatest key ≤ k / smallest key ≥ k
//	Rank(k) int             — number of keys strictly less than k
//	Select(i) (K, error)    — the key of rank i (Select∘Rank = identity)
//	Keys() []K              — all keys, in order
//	RangeKeys(lo, hi) []K   — keys in [lo, hi], in order
//	Len() / IsEmpty()
//
// Rank and Select are supported by per-node subtree counts, so both run in
// time proportional to tree height.
//
// Errors:
//
//	ErrEmptyTree   — Min/Max/DeleteMin/Select on an empty tree
//	ErrKeyNotFound — Floor/Ceiling with no qualifying key, Select out of range
package bst
