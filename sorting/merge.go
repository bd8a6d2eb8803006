package sorting

import "cmp"

// mergeCutoff is the subarray length below which merge sort falls back to
// insertion sort; tiny runs are faster without recursion or copying.
const mergeCutoff = 12

// Merge sorts a in place using top-down recursive mergesort. Stable.
//
// Complexity: O(n log n) time, O(n) auxiliary space (one allocation).
func Merge[T cmp.Ordered](a []T) {
	if len(a) < 2 {
		return
	}
	aux := make([]T, len(a))
	mergeSort(a, aux, 0, len(a)-1)
}

// mergeSort recursively sorts a[lo..hi] using aux for merging.
func mergeSort[T cmp.Ordered](a, aux []T, lo, hi int) {
	if hi-lo < mergeCutoff {
		insertionRange(a, lo, hi)

		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, aux, lo, mid)
	mergeSort(a, aux, mid+1, hi)

	// Skip the merge when the halves are already in order.
	if a[mid] <= a[mid+1] {
		return
	}
	merge(a, aux, lo, mid, hi)
}

// MergeBottomUp sorts a in place using iterative (bottom-up) mergesort:
// pass over the slice merging runs of length 1, 2, 4, …. Stable.
//
// Complexity: O(n log n) time, O(n) auxiliary space.
func MergeBottomUp[T cmp.Ordered](a []T) {
	n := len(a)
	if n < 2 {
		return
	}
	aux := make([]T, n)

	var size, lo, mid, hi int
	for size = 1; size < n; size *= 2 {
		for lo = 0; lo < n-size; lo += 2 * size {
			mid = lo + size - 1
			hi = min(lo+2*size-1, n-1)
			if a[mid] > a[mid+1] {
				merge(a, aux, lo, mid, hi)
			}
		}
	}
}

// merge combines the sorted runs a[lo..mid] and a[mid+1..hi] using aux.
// Ties favor the left run, which is what makes the sort stable.
func merge[T cmp.Ordered](a, aux []T, lo, mid, hi int) {
	copy(aux[lo:hi+1], a[lo:hi+1])

	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid: // left run exhausted
			a[k] = aux[j]
			j++
		case j > hi: // right run exhausted
			a[k] = aux[i]
			i++
		case aux[j] < aux[i]: // strict: equal keys come from the left
			a[k] = aux[j]
			j++
		default:
			a[k] = aux[i]
			i++
		}
	}
}

// insertionRange is insertion sort on the closed range a[lo..hi].
func insertionRange[T cmp.Ordered](a []T, lo, hi int) {
	var i, j int
	for i = lo + 1; i <= hi; i++ {
		for j = i; j > lo && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
