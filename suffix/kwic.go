package suffix

import (
	"sort"
	"strings"
)

// Contexts returns every occurrence of query in text surrounded by up to
// pad bytes on each side, in text order of the occurrences. Binary search
// over the suffix array locates the start of the occurrence block; the
// window is clipped at the text boundaries.
// Complexity: O(m log n + occurrences·m).
func (s *SuffixArray) Contexts(query string, pad int) []string {
	if query == "" || pad < 0 {
		return nil
	}

	// All suffixes starting with query form one contiguous run beginning
	// at the rank of query.
	lo := s.Rank(query)
	positions := []int{}
	for i := lo; i < s.Len() && strings.HasPrefix(s.text[s.sa[i]:], query); i++ {
		positions = append(positions, s.sa[i])
	}
	// The run is ordered lexicographically; report in text order instead.
	sort.Ints(positions)

	out := make([]string, 0, len(positions))
	for _, p := range positions {
		from := max(p-pad, 0)
		to := min(p+len(query)+pad, len(s.text))
		out = append(out, s.text[from:to])
	}

	return out
}
