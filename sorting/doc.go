// Package sorting provides the classical comparison sorts over any ordered
// element type, plus a deterministic Fisher–Yates shuffle.
//
// All sorts operate in place on a []T where T satisfies cmp.Ordered, and all
// are single-threaded, allocation-conscious implementations of the textbook
// formulations:
//
//	Insertion(a)   — O(n²) worst, O(n) on nearly-sorted input; stable
//	Selection(a)   — O(n²) always; minimal writes
//	Shell(a)       — sub-quadratic (3x+1 gap sequence)
//	Merge(a)       — O(n log n), stable, O(n) extra space (top-down)
//	MergeBottomUp(a) — O(n log n), stable, iterative
//	Quick(a)       — O(n log n) expected; median-of-three partitioning
//	Quick3Way(a)   — O(n log n); linear on inputs with many duplicate keys
//	Heap(a)        — O(n log n), in place, not stable
//	IsSorted(a)    — O(n) non-decreasing check
//
// Randomness policy:
//
//   - There is no package-level seed state. Shuffle takes an explicit
//     *rand.Rand; a nil generator falls back to a fixed deterministic seed,
//     so same inputs always produce the same permutation unless the caller
//     opts into their own source.
package sorting
