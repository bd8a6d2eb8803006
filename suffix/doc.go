// Package suffix builds suffix arrays and the string queries that fall out
// of them: longest repeated substring, longest common substring, and
// keyword-in-context search.
//
// Construction uses prefix doubling: ranks of length-k prefixes are sorted
// and combined into ranks of length-2k prefixes until all suffixes are
// distinguished. O(n log² n) time, O(n) memory. Queries:
//
//   - Index/Select — position and text of the i-th smallest suffix, O(1)
//     and O(suffix length).
//   - Rank — number of suffixes strictly smaller than a query, by binary
//     search, O(m log n) with m the query length.
//   - LCP — longest common prefix of lexicographic neighbors, O(n) worst
//     case per call.
//
// Positions are byte offsets; the package is encoding-agnostic.
package suffix
