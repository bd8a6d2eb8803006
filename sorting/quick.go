package sorting

import "cmp"

// quickCutoff is the subarray length below which quicksort falls back to
// insertion sort.
const quickCutoff = 10

// Quick sorts a in place using quicksort with median-of-three pivot
// selection and an insertion-sort cutoff for small subarrays. Not stable.
//
// Complexity: O(n log n) expected time, O(log n) stack space.
// Median-of-three makes the quadratic worst case require adversarial input
// rather than merely sorted input.
func Quick[T cmp.Ordered](a []T) {
	quickSort(a, 0, len(a)-1)
}

func quickSort[T cmp.Ordered](a []T, lo, hi int) {
	for hi-lo >= quickCutoff {
		j := partition(a, lo, hi)
		// Recurse into the smaller half, iterate on the larger, keeping the
		// stack at O(log n) even on skewed partitions.
		if j-lo < hi-j {
			quickSort(a, lo, j-1)
			lo = j + 1
		} else {
			quickSort(a, j+1, hi)
			hi = j - 1
		}
	}
	insertionRange(a, lo, hi)
}

// partition places the median-of-three pivot at its final position j with
// a[lo..j-1] ≤ a[j] ≤ a[j+1..hi], and returns j.
func partition[T cmp.Ordered](a []T, lo, hi int) int {
	// Median of a[lo], a[mid], a[hi] moved to a[lo] as the pivot.
	mid := lo + (hi-lo)/2
	if a[mid] < a[lo] {
		a[mid], a[lo] = a[lo], a[mid]
	}
	if a[hi] < a[lo] {
		a[hi], a[lo] = a[lo], a[hi]
	}
	if a[hi] < a[mid] {
		a[hi], a[mid] = a[mid], a[hi]
	}
	a[lo], a[mid] = a[mid], a[lo]

	pivot := a[lo]
	i, j := lo, hi+1
	for {
		for i++; a[i] < pivot; i++ {
			if i == hi {
				break
			}
		}
		for j--; pivot < a[j]; j-- {
			if j == lo {
				break
			}
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
	}
	a[lo], a[j] = a[j], a[lo]

	return j
}

// Quick3Way sorts a in place using Dijkstra 3-way partitioning, which
// collapses runs of equal keys in a single pass. Not stable.
//
// Complexity: O(n log n) in general; O(n·H) where H is the entropy of the
// key distribution — linear when the input has few distinct keys.
func Quick3Way[T cmp.Ordered](a []T) {
	quick3Way(a, 0, len(a)-1)
}

func quick3Way[T cmp.Ordered](a []T, lo, hi int) {
	if hi-lo < quickCutoff {
		insertionRange(a, lo, hi)

		return
	}

	// Invariant: a[lo..lt-1] < v, a[lt..i-1] == v, a[gt+1..hi] > v.
	lt, i, gt := lo, lo+1, hi
	v := a[lo]
	for i <= gt {
		switch {
		case a[i] < v:
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case a[i] > v:
			a[i], a[gt] = a[gt], a[i]
			gt--
		default:
			i++
		}
	}
	quick3Way(a, lo, lt-1)
	quick3Way(a, gt+1, hi)
}
