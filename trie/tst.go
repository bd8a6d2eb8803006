package trie

// tstNode is one ternary search trie node: a byte plus three links. Keys
// sharing the byte continue through mid; smaller/larger bytes branch left
// and right as in a BST.
type tstNode[V any] struct {
	c                byte
	left, mid, right *tstNode[V]
	val              V
	hasVal           bool
}

// TST is a ternary search trie symbol table over non-empty string keys.
// The zero value is not usable; construct with NewTST.
type TST[V any] struct {
	root *tstNode[V]
	n    int
}

// NewTST returns an empty ternary search trie.
func NewTST[V any]() *TST[V] {
	return &TST[V]{}
}

// Len returns the number of stored keys. Complexity: O(1).
func (t *TST[V]) Len() int { return t.n }

// Put inserts key with value v, replacing the value if key is present.
// Returns ErrEmptyKey for "".
// Complexity: O(len(key) + ln n) expected.
func (t *TST[V]) Put(key string, v V) error {
	if key == "" {
		return ErrEmptyKey
	}
	t.root = t.put(t.root, key, v, 0)

	return nil
}

func (t *TST[V]) put(n *tstNode[V], key string, v V, d int) *tstNode[V] {
	c := key[d]
	if n == nil {
		n = &tstNode[V]{c: c}
	}
	switch {
	case c < n.c:
		n.left = t.put(n.left, key, v, d)
	case c > n.c:
		n.right = t.put(n.right, key, v, d)
	case d < len(key)-1:
		n.mid = t.put(n.mid, key, v, d+1)
	default:
		if !n.hasVal {
			t.n++
		}
		n.val, n.hasVal = v, true
	}

	return n
}

// Get returns the value stored under key and whether it was found.
// Complexity: O(len(key) + ln n) expected.
func (t *TST[V]) Get(key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}
	n := nodeOf(t.root, key)
	if n == nil || !n.hasVal {
		return zero, false
	}

	return n.val, true
}

// Contains reports whether key is present.
func (t *TST[V]) Contains(key string) bool {
	_, ok := t.Get(key)

	return ok
}

// nodeOf returns the node terminating key, or nil.
func nodeOf[V any](n *tstNode[V], key string) *tstNode[V] {
	d := 0
	for n != nil {
		c := key[d]
		switch {
		case c < n.c:
			n = n.left
		case c > n.c:
			n = n.right
		case d < len(key)-1:
			n = n.mid
			d++
		default:
			return n
		}
	}

	return nil
}

// Delete removes key and reports whether it was present. Subtrees that no
// longer lead to any key are pruned.
// Complexity: O(len(key) + ln n) expected.
func (t *TST[V]) Delete(key string) bool {
	if !t.Contains(key) {
		return false
	}
	t.root = t.del(t.root, key, 0)
	t.n--

	return true
}

func (t *TST[V]) del(n *tstNode[V], key string, d int) *tstNode[V] {
	if n == nil {
		return nil
	}
	c := key[d]
	switch {
	case c < n.c:
		n.left = t.del(n.left, key, d)
	case c > n.c:
		n.right = t.del(n.right, key, d)
	case d < len(key)-1:
		n.mid = t.del(n.mid, key, d+1)
	default:
		var zero V
		n.val, n.hasVal = zero, false
	}
	if n.hasVal || n.mid != nil {
		return n
	}
	// Value-less node with no middle chain: splice in a BST-style
	// replacement from the remaining left/right children.
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	default:
		// Both sides present: lift the in-order successor of n.
		r := n.right
		if r.left == nil {
			r.left = n.left

			return r
		}
		parent := r
		for r.left != nil {
			parent, r = r, r.left
		}
		parent.left = r.right
		r.left, r.right = n.left, n.right

		return r
	}
}

// Keys returns every stored key in sorted order.
// Complexity: O(total key bytes).
func (t *TST[V]) Keys() []string {
	var out []string
	tstCollect(t.root, nil, &out)

	return out
}

// KeysWithPrefix returns the stored keys beginning with prefix, sorted.
// An empty prefix returns all keys.
func (t *TST[V]) KeysWithPrefix(prefix string) []string {
	if prefix == "" {
		return t.Keys()
	}
	var out []string
	n := nodeOf(t.root, prefix)
	if n == nil {
		return out
	}
	if n.hasVal {
		out = append(out, prefix)
	}
	tstCollect(n.mid, []byte(prefix), &out)

	return out
}

// tstCollect appends every key under n (prefix + left/mid/right paths),
// in sorted order.
func tstCollect[V any](n *tstNode[V], prefix []byte, out *[]string) {
	if n == nil {
		return
	}
	tstCollect(n.left, prefix, out)
	if n.hasVal {
		*out = append(*out, string(append(prefix, n.c)))
	}
	tstCollect(n.mid, append(prefix, n.c), out)
	tstCollect(n.right, prefix, out)
}

// KeysThatMatch returns the stored keys matching pattern, where '.' matches
// any single byte. Only keys of exactly len(pattern) bytes can match.
func (t *TST[V]) KeysThatMatch(pattern string) []string {
	var out []string
	if pattern == "" {
		return out
	}
	tstMatch(t.root, nil, pattern, &out)

	return out
}

func tstMatch[V any](n *tstNode[V], prefix []byte, pattern string, out *[]string) {
	if n == nil {
		return
	}
	d := len(prefix)
	c := pattern[d]
	if c == '.' || c < n.c {
		tstMatch(n.left, prefix, pattern, out)
	}
	if c == '.' || c == n.c {
		if d == len(pattern)-1 && n.hasVal {
			*out = append(*out, string(append(prefix, n.c)))
		}
		if d < len(pattern)-1 {
			tstMatch(n.mid, append(prefix, n.c), pattern, out)
		}
	}
	if c == '.' || c > n.c {
		tstMatch(n.right, prefix, pattern, out)
	}
}

// LongestPrefixOf returns the longest stored key that is a prefix of query
// ("" when none is).
// Complexity: O(len(query) + ln n) expected.
func (t *TST[V]) LongestPrefixOf(query string) string {
	best := 0
	n := t.root
	d := 0
	for n != nil && d < len(query) {
		c := query[d]
		switch {
		case c < n.c:
			n = n.left
		case c > n.c:
			n = n.right
		default:
			d++
			if n.hasVal {
				best = d
			}
			n = n.mid
		}
	}

	return query[:best]
}
