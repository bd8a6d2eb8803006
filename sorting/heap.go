package sorting

import "cmp"

// Heap sorts a in place using heapsort: build a max-heap bottom-up, then
// repeatedly exchange the root with the last element and sink. Not stable.
//
// Complexity: O(n log n) time worst case, O(1) extra space.
func Heap[T cmp.Ordered](a []T) {
	n := len(a)

	// 1) Heapify: sink every internal node, right to left.
	for k := n/2 - 1; k >= 0; k-- {
		sink(a, k, n)
	}

	// 2) Sortdown: move the max to the end, shrink the heap, restore order.
	for n > 1 {
		a[0], a[n-1] = a[n-1], a[0]
		n--
		sink(a, 0, n)
	}
}

// sink restores the max-heap invariant for the subtree rooted at k within
// the first n elements (0-based children 2k+1 and 2k+2).
func sink[T cmp.Ordered](a []T, k, n int) {
	for {
		j := 2*k + 1
		if j >= n {
			return
		}
		if j+1 < n && a[j] < a[j+1] {
			j++ // right child is larger
		}
		if a[k] >= a[j] {
			return
		}
		a[k], a[j] = a[j], a[k]
		k = j
	}
}
