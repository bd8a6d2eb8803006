package match

// BoyerMoore is a right-to-left matcher with the bad-character heuristic:
// on a mismatch the pattern jumps past the text byte, or aligns its
// rightmost occurrence with it.
type BoyerMoore struct {
	pattern string
	right   [alphabetSize]int // rightmost index of each byte in pattern, -1 if absent
}

// NewBoyerMoore preprocesses pattern's rightmost-occurrence table.
// Complexity: O(m + 256).
func NewBoyerMoore(pattern string) *BoyerMoore {
	bm := &BoyerMoore{pattern: pattern}
	for c := range bm.right {
		bm.right[c] = -1
	}
	for i := 0; i < len(pattern); i++ {
		bm.right[pattern[i]] = i
	}

	return bm
}

// Index returns the offset of the first occurrence of the pattern in
// text, or -1. The empty pattern matches at 0.
// Complexity: O(n/m) on typical text, O(n·m) worst case.
func (b *BoyerMoore) Index(text string) int {
	n, m := len(text), len(b.pattern)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; {
		skip := 0
		for j := m - 1; j >= 0; j-- {
			if b.pattern[j] != text[i+j] {
				skip = max(1, j-b.right[text[i+j]])

				break
			}
		}
		if skip == 0 {
			return i
		}
		i += skip
	}

	return -1
}

// IndexAll returns the offsets of every (possibly overlapping) occurrence
// of the pattern in text. Full matches shift by one to allow overlaps.
func (b *BoyerMoore) IndexAll(text string) []int {
	n, m := len(text), len(b.pattern)
	if m == 0 {
		return nil
	}
	var out []int
	for i := 0; i+m <= n; {
		skip := 0
		for j := m - 1; j >= 0; j-- {
			if b.pattern[j] != text[i+j] {
				skip = max(1, j-b.right[text[i+j]])

				break
			}
		}
		if skip == 0 {
			out = append(out, i)
			skip = 1
		}
		i += skip
	}

	return out
}
