package match

// Large prime for the rolling hash modulus; big enough to make spurious
// collisions rare, small enough that radix·mod fits in 64 bits.
const rkPrime = 1_000_000_007

// RabinKarp matches by comparing rolling modular fingerprints of the
// pattern and each text window, verifying candidates byte-for-byte so
// collisions can never produce a false positive.
type RabinKarp struct {
	pattern string
	hash    uint64 // pattern fingerprint
	rm      uint64 // alphabetSize^(m-1) mod rkPrime, for rolling the window
}

// NewRabinKarp fingerprints the pattern.
// Complexity: O(m).
func NewRabinKarp(pattern string) *RabinKarp {
	rk := &RabinKarp{pattern: pattern, rm: 1}
	for i := 1; i < len(pattern); i++ {
		rk.rm = (rk.rm * alphabetSize) % rkPrime
	}
	rk.hash = rkHash(pattern, len(pattern))

	return rk
}

// rkHash fingerprints the first m bytes of s with Horner's rule.
func rkHash(s string, m int) uint64 {
	var h uint64
	for i := 0; i < m; i++ {
		h = (h*alphabetSize + uint64(s[i])) % rkPrime
	}

	return h
}

// Index returns the offset of the first occurrence of the pattern in
// text, or -1. The empty pattern matches at 0.
// Complexity: O(n + m) expected.
func (r *RabinKarp) Index(text string) int {
	if i, ok := r.scan(text, true); ok {
		return i[0]
	}

	return -1
}

// IndexAll returns the offsets of every (possibly overlapping) occurrence
// of the pattern in text.
// Complexity: O(n + m + occurrences·m) expected.
func (r *RabinKarp) IndexAll(text string) []int {
	out, _ := r.scan(text, false)

	return out
}

// scan rolls the window hash across text, verifying each fingerprint hit.
// With firstOnly it stops at the first verified match.
func (r *RabinKarp) scan(text string, firstOnly bool) ([]int, bool) {
	n, m := len(text), len(r.pattern)
	if m == 0 {
		if firstOnly {
			return []int{0}, true
		}

		return nil, false
	}
	if n < m {
		return nil, false
	}

	var out []int
	h := rkHash(text, m)
	for i := 0; ; i++ {
		if h == r.hash && text[i:i+m] == r.pattern {
			out = append(out, i)
			if firstOnly {
				return out, true
			}
		}
		if i+m >= n {
			break
		}
		// Roll: drop text[i], append text[i+m].
		h = (h + rkPrime - (uint64(text[i])*r.rm)%rkPrime) % rkPrime
		h = (h*alphabetSize + uint64(text[i+m])) % rkPrime
	}

	return out, len(out) > 0
}
