package trie

import "sort"

// trieNode is one R-way trie node; children are stored sparsely in a map
// rather than a 256-slot array to keep memory proportional to actual fanout.
type trieNode[V any] struct {
	val      V
	hasVal   bool
	children map[byte]*trieNode[V]
}

// Trie is an R-way trie symbol table keyed on the bytes of a string.
// The zero value is not usable; construct with NewTrie.
type Trie[V any] struct {
	root *trieNode[V]
	n    int
}

// NewTrie returns an empty R-way trie.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{root: &trieNode[V]{}}
}

// Len returns the number of stored keys. Complexity: O(1).
func (t *Trie[V]) Len() int { return t.n }

// Put inserts key with value v, replacing the value if key is present.
// The empty key is valid and stored at the root.
// Complexity: O(len(key)).
func (t *Trie[V]) Put(key string, v V) {
	n := t.root
	for i := 0; i < len(key); i++ {
		c := key[i]
		if n.children == nil {
			n.children = make(map[byte]*trieNode[V])
		}
		child, ok := n.children[c]
		if !ok {
			child = &trieNode[V]{}
			n.children[c] = child
		}
		n = child
	}
	if !n.hasVal {
		t.n++
	}
	n.val, n.hasVal = v, true
}

// Get returns the value stored under key and whether it was found.
// Complexity: O(len(key)).
func (t *Trie[V]) Get(key string) (V, bool) {
	n := t.nodeAt(key)
	if n == nil || !n.hasVal {
		var zero V

		return zero, false
	}

	return n.val, true
}

// Contains reports whether key is present. Complexity: O(len(key)).
func (t *Trie[V]) Contains(key string) bool {
	_, ok := t.Get(key)

	return ok
}

// nodeAt follows key from the root, returning nil if the path breaks.
func (t *Trie[V]) nodeAt(key string) *trieNode[V] {
	n := t.root
	for i := 0; i < len(key) && n != nil; i++ {
		n = n.children[key[i]]
	}

	return n
}

// Delete removes key and reports whether it was present. Nodes left with no
// value and no children are pruned on the way back up.
// Complexity: O(len(key)).
func (t *Trie[V]) Delete(key string) bool {
	if !t.Contains(key) {
		return false
	}
	t.del(t.root, key, 0)
	t.n--

	return true
}

// del clears the value at the end of key[d:] and reports whether the node
// at depth d became prunable.
func (t *Trie[V]) del(n *trieNode[V], key string, d int) bool {
	if d == len(key) {
		var zero V
		n.val, n.hasVal = zero, false
	} else {
		c := key[d]
		if t.del(n.children[c], key, d+1) {
			delete(n.children, c)
		}
	}

	return !n.hasVal && len(n.children) == 0 && n != t.root
}

// Keys returns every stored key in sorted order. Complexity: O(total key bytes).
func (t *Trie[V]) Keys() []string {
	return t.KeysWithPrefix("")
}

// KeysWithPrefix returns the stored keys beginning with prefix, sorted.
// Complexity: O(len(prefix) + size of the matched subtrie).
func (t *Trie[V]) KeysWithPrefix(prefix string) []string {
	var out []string
	n := t.nodeAt(prefix)
	if n == nil {
		return out
	}
	collect(n, []byte(prefix), &out)

	return out
}

// collect appends every key under n (spelled prefix + path) to out,
// visiting children in byte order for sorted output.
func collect[V any](n *trieNode[V], prefix []byte, out *[]string) {
	if n.hasVal {
		*out = append(*out, string(prefix))
	}
	for _, c := range sortedChildren(n) {
		collect(n.children[c], append(prefix, c), out)
	}
}

// KeysThatMatch returns the stored keys matching pattern, where '.' matches
// any single byte. Only keys of exactly len(pattern) bytes can match.
// Complexity: O(size of the explored subtrie).
func (t *Trie[V]) KeysThatMatch(pattern string) []string {
	var out []string
	matchCollect(t.root, nil, pattern, &out)

	return out
}

func matchCollect[V any](n *trieNode[V], prefix []byte, pattern string, out *[]string) {
	d := len(prefix)
	if d == len(pattern) {
		if n.hasVal {
			*out = append(*out, string(prefix))
		}

		return
	}
	if pattern[d] == '.' {
		for _, c := range sortedChildren(n) {
			matchCollect(n.children[c], append(prefix, c), pattern, out)
		}

		return
	}
	if child, ok := n.children[pattern[d]]; ok {
		matchCollect(child, append(prefix, pattern[d]), pattern, out)
	}
}

// LongestPrefixOf returns the longest stored key that is a prefix of query
// ("" when none is — note "" may itself be a stored key; use Contains("")
// to disambiguate).
// Complexity: O(len(query)).
func (t *Trie[V]) LongestPrefixOf(query string) string {
	best := 0
	n := t.root
	for i := 0; ; i++ {
		if n.hasVal {
			best = i
		}
		if i == len(query) {
			break
		}
		n = n.children[query[i]]
		if n == nil {
			break
		}
	}

	return query[:best]
}

// sortedChildren returns n's child bytes in ascending order.
func sortedChildren[V any](n *trieNode[V]) []byte {
	cs := make([]byte, 0, len(n.children))
	for c := range n.children {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })

	return cs
}
