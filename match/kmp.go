package match

// alphabetSize is the byte-alphabet radix of the KMP automaton.
const alphabetSize = 256

// KMP is a Knuth-Morris-Pratt matcher: the pattern compiled into a DFA
// whose states count matched pattern bytes.
type KMP struct {
	pattern string
	dfa     [][]int // dfa[c][state] = next state after reading byte c
	restart int     // state for the longest proper border of the pattern
}

// NewKMP compiles pattern into its matching automaton.
// Complexity: O(m·256) time and memory.
func NewKMP(pattern string) *KMP {
	m := len(pattern)
	dfa := make([][]int, alphabetSize)
	for c := range dfa {
		dfa[c] = make([]int, m)
	}
	if m == 0 {
		return &KMP{pattern: pattern, dfa: dfa}
	}

	// State x mirrors the restart state: where the automaton would be had
	// it read the same input minus the first byte.
	dfa[pattern[0]][0] = 1
	x := 0
	for j := 1; j < m; j++ {
		for c := 0; c < alphabetSize; c++ {
			dfa[c][j] = dfa[c][x] // mismatch: copy restart transitions
		}
		dfa[pattern[j]][j] = j + 1 // match: advance
		x = dfa[pattern[j]][x]
	}

	return &KMP{pattern: pattern, dfa: dfa, restart: x}
}

// Index returns the offset of the first occurrence of the pattern in
// text, or -1. The empty pattern matches at 0.
// Complexity: O(n).
func (k *KMP) Index(text string) int {
	m := len(k.pattern)
	if m == 0 {
		return 0
	}
	j := 0
	for i := 0; i < len(text); i++ {
		j = k.dfa[text[i]][j]
		if j == m {
			return i - m + 1
		}
	}

	return -1
}

// IndexAll returns the offsets of every (possibly overlapping) occurrence
// of the pattern in text.
// Complexity: O(n).
func (k *KMP) IndexAll(text string) []int {
	m := len(k.pattern)
	if m == 0 {
		return nil
	}
	var out []int
	j := 0
	for i := 0; i < len(text); i++ {
		j = k.dfa[text[i]][j]
		if j == m {
			out = append(out, i-m+1)
			// Fall back to the border state so overlapping occurrences
			// are found too.
			j = k.restart
		}
	}

	return out
}
