// Package trie provides string-keyed symbol tables with prefix operations:
//
//   - Trie — an R-way trie keyed on raw bytes. Search cost is O(len(key))
//     regardless of the number of stored keys; space is proportional to the
//     total number of distinct key bytes.
//   - TST  — a ternary search trie: the space-thrifty middle ground between
//     an R-way trie and a BST. Expected search cost O(len(key) + ln n);
//     rejects the empty key (ErrEmptyKey).
//
// Both share the surface over V any:
//
//	Put(key, v) / Get(key) (V, bool) / Contains(key) / Delete(key) bool
//	Len() int
//	Keys() []string                 — all keys, sorted
//	KeysWithPrefix(p) []string      — keys starting with p, sorted
//	KeysThatMatch(pat) []string     — '.' in pat matches any single byte
//	LongestPrefixOf(query) string   — longest stored key that prefixes query
//
// Deletion prunes nodes that no longer lead to any key, so a trie that has
// had all keys deleted holds no residual structure.
package trie
