// Package strsort sorts string slices by character-indexed methods that
// beat general comparison sorts when keys share structure.
//
//   - LSD — least-significant-digit radix sort for fixed-width keys;
//     W stable counting passes. O(W·n) time, O(n + 256) memory.
//   - MSD — most-significant-digit radix sort for variable-length keys;
//     recursive counting sort per leading byte, with an insertion-sort
//     cutoff for small ranges. O(n·key length) worst case.
//   - Quick3Way — three-way string quicksort: partitions on one byte into
//     less/equal/greater and recurses on the equal block one position
//     deeper, handling long shared prefixes without per-level counting
//     arrays.
//
// All three sort in place (LSD via one auxiliary slice) and leave the
// slice a permutation of its input. Byte ordering: shorter prefixes sort
// first, matching Go's native string comparison.
package strsort
