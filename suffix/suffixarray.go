package suffix

import (
	"errors"
	"sort"
)

// ErrIndexOutOfRange is returned by positional accessors for i outside
// [0, Len).
var ErrIndexOutOfRange = errors.New("suffix: index out of range")

// SuffixArray holds the lexicographically sorted suffixes of a text as a
// permutation of start offsets.
type SuffixArray struct {
	text string
	sa   []int
}

// New builds the suffix array of text by prefix doubling.
// Complexity: O(n log² n) time, O(n) memory.
func New(text string) *SuffixArray {
	n := len(text)
	sa := make([]int, n)
	rank := make([]int, n)
	tmp := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = int(text[i])
	}
	if n < 2 {
		return &SuffixArray{text: text, sa: sa}
	}

	// Each round sorts by (rank[i], rank[i+k]) pairs, then re-ranks; once
	// all ranks are distinct the order is final.
	for k := 1; ; k <<= 1 {
		pairLess := func(a, b int) bool {
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			ra, rb := -1, -1
			if a+k < n {
				ra = rank[a+k]
			}
			if b+k < n {
				rb = rank[b+k]
			}

			return ra < rb
		}
		sort.Slice(sa, func(i, j int) bool { return pairLess(sa[i], sa[j]) })

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if pairLess(sa[i-1], sa[i]) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return &SuffixArray{text: text, sa: sa}
}

// Len returns the number of suffixes (the text length in bytes).
func (s *SuffixArray) Len() int { return len(s.sa) }

// Index returns the start offset of the i-th smallest suffix.
func (s *SuffixArray) Index(i int) (int, error) {
	if i < 0 || i >= len(s.sa) {
		return 0, ErrIndexOutOfRange
	}

	return s.sa[i], nil
}

// Select returns the i-th smallest suffix itself.
func (s *SuffixArray) Select(i int) (string, error) {
	if i < 0 || i >= len(s.sa) {
		return "", ErrIndexOutOfRange
	}

	return s.text[s.sa[i]:], nil
}

// LCP returns the length of the longest common prefix of the i-th and
// (i-1)-th smallest suffixes.
// Complexity: O(common prefix length).
func (s *SuffixArray) LCP(i int) (int, error) {
	if i < 1 || i >= len(s.sa) {
		return 0, ErrIndexOutOfRange
	}

	return commonPrefix(s.text[s.sa[i]:], s.text[s.sa[i-1]:]), nil
}

// Rank returns the number of suffixes strictly smaller than query — the
// insertion point of query into the sorted suffix order.
// Complexity: O(m log n).
func (s *SuffixArray) Rank(query string) int {
	return sort.Search(len(s.sa), func(i int) bool {
		return s.text[s.sa[i]:] >= query
	})
}

// commonPrefix counts the shared leading bytes of a and b.
func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

// LongestRepeated returns the longest substring occurring at least twice
// in text ("" when all characters are distinct). Adjacent suffixes in
// sorted order maximize common prefixes, so one LCP sweep suffices.
// Complexity: O(n log² n) dominated by construction.
func LongestRepeated(text string) string {
	s := New(text)
	best := ""
	for i := 1; i < s.Len(); i++ {
		l, _ := s.LCP(i)
		if l > len(best) {
			best = text[s.sa[i] : s.sa[i]+l]
		}
	}

	return best
}

// LongestCommon returns the longest substring shared by a and b. The two
// texts are joined with a separator byte absent from both and the LCP
// sweep is restricted to suffix pairs from opposite sides.
func LongestCommon(a, b string) string {
	if a == "" || b == "" {
		return ""
	}
	sep := chooseSeparator(a, b)
	joined := a + sep + b
	s := New(joined)

	side := func(pos int) int {
		if pos < len(a) {
			return 0
		}

		return 1
	}
	clip := func(pos, l int) int {
		// Never let a match run across the separator.
		if pos < len(a) && pos+l > len(a) {
			return len(a) - pos
		}

		return l
	}

	best := ""
	for i := 1; i < s.Len(); i++ {
		pi, pj := s.sa[i], s.sa[i-1]
		if pi == len(a) || pj == len(a) || side(pi) == side(pj) {
			continue
		}
		l, _ := s.LCP(i)
		l = min(clip(pi, l), clip(pj, l))
		if l > len(best) {
			best = joined[pi : pi+l]
		}
	}

	return best
}

// chooseSeparator picks a byte not present in either input.
func chooseSeparator(a, b string) string {
	var used [256]bool
	for i := 0; i < len(a); i++ {
		used[a[i]] = true
	}
	for i := 0; i < len(b); i++ {
		used[b[i]] = true
	}
	for c := 0; c < 256; c++ {
		if !used[byte(c)] {
			return string([]byte{byte(c)})
		}
	}
	// All 256 byte values in use; fall back to NUL, accepting that matches
	// may be clipped at its occurrences.
	return "\x00"
}
