package strsort

import "errors"

// ErrRaggedKeys is returned by LSD when keys are not all of width w.
var ErrRaggedKeys = errors.New("strsort: LSD requires fixed-width keys")

// radix is the byte alphabet size; charAt reports -1 past a key's end, so
// counting arrays carry radix+2 slots (offset by one for the sentinel).
const radix = 256

// msdCutoff is the subarray size below which MSD and Quick3Way fall back
// to insertion sort.
const msdCutoff = 15

// LSD sorts a slice of fixed-width keys with w stable counting passes,
// rightmost byte first.
// Complexity: O(w·(n + 256)) time, O(n + 256) memory.
func LSD(a []string, w int) error {
	for _, s := range a {
		if len(s) != w {
			return ErrRaggedKeys
		}
	}

	n := len(a)
	aux := make([]string, n)
	for d := w - 1; d >= 0; d-- {
		// Counting sort on byte d; stability preserves earlier passes.
		var count [radix + 1]int
		for i := 0; i < n; i++ {
			count[a[i][d]+1]++
		}
		for r := 0; r < radix; r++ {
			count[r+1] += count[r]
		}
		for i := 0; i < n; i++ {
			aux[count[a[i][d]]] = a[i]
			count[a[i][d]]++
		}
		copy(a, aux)
	}

	return nil
}

// MSD sorts variable-length keys by recursive counting sort on the
// leading bytes. Shorter strings sort before their extensions.
// Complexity: O(n·max key length) worst case, O(n + 256·depth) memory.
func MSD(a []string) {
	aux := make([]string, len(a))
	msdSort(a, aux, 0, len(a)-1, 0)
}

// charAt returns byte d of s, or -1 past its end.
func charAt(s string, d int) int {
	if d < len(s) {
		return int(s[d])
	}

	return -1
}

func msdSort(a, aux []string, lo, hi, d int) {
	if hi <= lo+msdCutoff {
		insertion(a, lo, hi, d)

		return
	}

	// Counting sort on byte d; slot 0 holds end-of-string.
	var count [radix + 2]int
	for i := lo; i <= hi; i++ {
		count[charAt(a[i], d)+2]++
	}
	for r := 0; r < radix+1; r++ {
		count[r+1] += count[r]
	}
	for i := lo; i <= hi; i++ {
		aux[count[charAt(a[i], d)+1]] = a[i]
		count[charAt(a[i], d)+1]++
	}
	copy(a[lo:hi+1], aux[:hi-lo+1])

	// Recurse per byte value; the end-of-string bucket is already placed.
	for r := 0; r < radix; r++ {
		msdSort(a, aux, lo+count[r], lo+count[r+1]-1, d+1)
	}
}

// insertion sorts a[lo..hi] comparing only from byte d on; keys in this
// range share the first d bytes.
func insertion(a []string, lo, hi, d int) {
	for i := lo; i <= hi; i++ {
		for j := i; j > lo && less(a[j], a[j-1], d); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

func less(v, w string, d int) bool {
	return v[min(d, len(v)):] < w[min(d, len(w)):]
}

// Quick3Way sorts keys by three-way string quicksort: partition on byte d
// of a pivot into less/equal/greater, then recurse, going one byte deeper
// only in the equal block.
// Complexity: O(n·log n + total matched prefix length); in-place.
func Quick3Way(a []string) {
	quick3(a, 0, len(a)-1, 0)
}

func quick3(a []string, lo, hi, d int) {
	if hi <= lo+msdCutoff {
		insertion(a, lo, hi, d)

		return
	}

	lt, gt := lo, hi
	pivot := charAt(a[lo], d)
	i := lo + 1
	for i <= gt {
		c := charAt(a[i], d)
		switch {
		case c < pivot:
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case c > pivot:
			a[i], a[gt] = a[gt], a[i]
			gt--
		default:
			i++
		}
	}

	quick3(a, lo, lt-1, d)
	if pivot >= 0 {
		quick3(a, lt, gt, d+1)
	}
	quick3(a, gt+1, hi, d)
}
