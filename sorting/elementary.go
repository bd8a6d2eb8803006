package sorting

import "cmp"

// Insertion sorts a in place by repeatedly inserting each element into the
// sorted prefix to its left. Stable.
//
// Complexity: O(n²) compares/exchanges worst case, O(n) on sorted input.
func Insertion[T cmp.Ordered](a []T) {
	var i, j int
	for i = 1; i < len(a); i++ {
		// Slide a[i] left until the prefix a[0..i] is ordered.
		for j = i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// Selection sorts a in place by repeatedly selecting the minimum of the
// unsorted suffix. Exactly n-1 exchanges; not stable.
//
// Complexity: O(n²) compares, O(n) exchanges.
func Selection[T cmp.Ordered](a []T) {
	var i, j, min int
	n := len(a)
	for i = 0; i < n; i++ {
		min = i
		for j = i + 1; j < n; j++ {
			if a[j] < a[min] {
				min = j
			}
		}
		a[i], a[min] = a[min], a[i]
	}
}

// Shell sorts a in place using the Knuth 3x+1 gap sequence
// (1, 4, 13, 40, 121, …). Not stable.
//
// Complexity: O(n^(3/2)) worst case for this sequence.
func Shell[T cmp.Ordered](a []T) {
	n := len(a)

	// Largest gap in the 3x+1 sequence below n/3.
	h := 1
	for h < n/3 {
		h = 3*h + 1
	}

	var i, j int
	for h >= 1 {
		// h-sort the slice: insertion sort with stride h.
		for i = h; i < n; i++ {
			for j = i; j >= h && a[j] < a[j-h]; j -= h {
				a[j], a[j-h] = a[j-h], a[j]
			}
		}
		h /= 3
	}
}

// IsSorted reports whether a is in non-decreasing order.
// Complexity: O(n).
func IsSorted[T cmp.Ordered](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}

	return true
}
