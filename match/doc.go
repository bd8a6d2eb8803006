// Package match implements substring search with the three classical
// algorithms, each behind the same Index/IndexAll surface and agreeing
// with strings.Index.
//
//   - KMP — deterministic finite automaton over the pattern; the text
//     pointer never backs up, so it suits streams. O(m·R) build, O(n)
//     search.
//   - BoyerMoore — bad-character heuristic scanning the pattern right to
//     left and skipping ahead on mismatches. O(n/m) typical, O(n·m) worst
//     case.
//   - RabinKarp — rolling modular hash compared per window; candidate
//     windows are verified byte-for-byte, making the result exact (the
//     Las Vegas variant). O(n+m) expected.
//
// An empty pattern matches at offset 0, as with strings.Index.
package match
