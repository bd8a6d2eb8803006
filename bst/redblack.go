package bst

import "cmp"

// Node colors: a red link binds a node to its parent inside a logical 3-node.
const (
	red   = true
	black = false
)

// rbnode is one left-leaning red-black tree node.
type rbnode[K cmp.Ordered, V any] struct {
	key         K
	val         V
	left, right *rbnode[K, V]
	color       bool // color of the link from the parent
	count       int  // subtree size
}

// RedBlack is a left-leaning red-black BST: a balanced ordered symbol table
// with guaranteed O(log n) search, insert and delete.
//
// Representation invariants (checked by tests via the package-internal
// validate helper):
//   - no node has two red links (no 4-nodes);
//   - red links lean left;
//   - every root-to-nil path crosses the same number of black links.
//
// The zero value is not usable; construct with NewRedBlack.
type RedBlack[K cmp.Ordered, V any] struct {
	root *rbnode[K, V]
}

// NewRedBlack returns an empty left-leaning red-black tree.
func NewRedBlack[K cmp.Ordered, V any]() *RedBlack[K, V] {
	return &RedBlack[K, V]{}
}

// Len returns the number of stored keys. Complexity: O(1).
func (t *RedBlack[K, V]) Len() int { return rbsize(t.root) }

// IsEmpty reports whether the tree holds no keys. Complexity: O(1).
func (t *RedBlack[K, V]) IsEmpty() bool { return t.root == nil }

func rbsize[K cmp.Ordered, V any](n *rbnode[K, V]) int {
	if n == nil {
		return 0
	}

	return n.count
}

func isRed[K cmp.Ordered, V any](n *rbnode[K, V]) bool {
	return n != nil && n.color == red
}

// rotateLeft turns a right-leaning red link into a left-leaning one.
func rotateLeft[K cmp.Ordered, V any](h *rbnode[K, V]) *rbnode[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	x.count = h.count
	h.count = 1 + rbsize(h.left) + rbsize(h.right)

	return x
}

// rotateRight turns a left-leaning red link into a right-leaning one.
func rotateRight[K cmp.Ordered, V any](h *rbnode[K, V]) *rbnode[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	x.count = h.count
	h.count = 1 + rbsize(h.left) + rbsize(h.right)

	return x
}

// flipColors splits (on the way down) or merges (on the way up) a 4-node.
func flipColors[K cmp.Ordered, V any](h *rbnode[K, V]) {
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
}

// Put inserts key with value v, replacing the value if key is present.
// Complexity: O(log n) guaranteed.
func (t *RedBlack[K, V]) Put(key K, v V) {
	t.root = rbput(t.root, key, v)
	t.root.color = black
}

func rbput[K cmp.Ordered, V any](h *rbnode[K, V], key K, v V) *rbnode[K, V] {
	if h == nil {
		return &rbnode[K, V]{key: key, val: v, color: red, count: 1}
	}
	switch {
	case key < h.key:
		h.left = rbput(h.left, key, v)
	case key > h.key:
		h.right = rbput(h.right, key, v)
	default:
		h.val = v
	}

	return fixUp(h)
}

// fixUp restores the left-leaning invariants after a recursive change.
func fixUp[K cmp.Ordered, V any](h *rbnode[K, V]) *rbnode[K, V] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	h.count = 1 + rbsize(h.left) + rbsize(h.right)

	return h
}

// Get returns the value stored under key and whether it was found.
// Complexity: O(log n).
func (t *RedBlack[K, V]) Get(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.val, true
		}
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present. Complexity: O(log n).
func (t *RedBlack[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// moveRedLeft ensures h.left or one of its children is red before the
// delete recursion descends left.
func moveRedLeft[K cmp.Ordered, V any](h *rbnode[K, V]) *rbnode[K, V] {
	flipColors(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}

	return h
}

// moveRedRight ensures h.right or one of its children is red before the
// delete recursion descends right.
func moveRedRight[K cmp.Ordered, V any](h *rbnode[K, V]) *rbnode[K, V] {
	flipColors(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}

	return h
}

// DeleteMin removes the smallest key. Complexity: O(log n).
func (t *RedBlack[K, V]) DeleteMin() error {
	if t.root == nil {
		return ErrEmptyTree
	}
	// Borrow a red link at the root if both children are black.
	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.color = red
	}
	t.root = rbdeleteMin(t.root)
	if t.root != nil {
		t.root.color = black
	}

	return nil
}

func rbdeleteMin[K cmp.Ordered, V any](h *rbnode[K, V]) *rbnode[K, V] {
	if h.left == nil {
		return nil
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	h.left = rbdeleteMin(h.left)

	return fixUp(h)
}

// Delete removes key and reports whether it was present.
// Complexity: O(log n) guaranteed.
func (t *RedBlack[K, V]) Delete(key K) bool {
	if !t.Contains(key) {
		return false
	}
	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.color = red
	}
	t.root = rbdelete(t.root, key)
	if t.root != nil {
		t.root.color = black
	}

	return true
}

func rbdelete[K cmp.Ordered, V any](h *rbnode[K, V], key K) *rbnode[K, V] {
	if key < h.key {
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left = rbdelete(h.left, key)
	} else {
		if isRed(h.left) {
			h = rotateRight(h)
		}
		if key == h.key && h.right == nil {
			return nil
		}
		if !isRed(h.right) && !isRed(h.right.left) {
			h = moveRedRight(h)
		}
		if key == h.key {
			// Replace with the successor, then delete it from the right.
			succ := h.right
			for succ.left != nil {
				succ = succ.left
			}
			h.key, h.val = succ.key, succ.val
			h.right = rbdeleteMin(h.right)
		} else {
			h.right = rbdelete(h.right, key)
		}
	}

	return fixUp(h)
}

// Min returns the smallest key. Complexity: O(log n).
func (t *RedBlack[K, V]) Min() (K, error) {
	var zero K
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, nil
}

// Max returns the largest key. Complexity: O(log n).
func (t *RedBlack[K, V]) Max() (K, error) {
	var zero K
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, nil
}

// Floor returns the greatest key ≤ key. Complexity: O(log n).
func (t *RedBlack[K, V]) Floor(key K) (K, error) {
	var (
		best K
		ok   bool
	)
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			best, ok = n.key, true
			n = n.right
		default:
			return n.key, nil
		}
	}
	if !ok {
		return best, ErrKeyNotFound
	}

	return best, nil
}

// Ceiling returns the smallest key ≥ key. Complexity: O(log n).
func (t *RedBlack[K, V]) Ceiling(key K) (K, error) {
	var (
		best K
		ok   bool
	)
	n := t.root
	for n != nil {
		switch {
		case key > n.key:
			n = n.right
		case key < n.key:
			best, ok = n.key, true
			n = n.left
		default:
			return n.key, nil
		}
	}
	if !ok {
		return best, ErrKeyNotFound
	}

	return best, nil
}

// Rank returns the number of stored keys strictly less than key.
// Complexity: O(log n).
func (t *RedBlack[K, V]) Rank(key K) int {
	rank := 0
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			rank += 1 + rbsize(n.left)
			n = n.right
		default:
			return rank + rbsize(n.left)
		}
	}

	return rank
}

// Select returns the key of rank i (0-based). Complexity: O(log n).
func (t *RedBlack[K, V]) Select(i int) (K, error) {
	var zero K
	if i < 0 || i >= rbsize(t.root) {
		return zero, ErrKeyNotFound
	}
	n := t.root
	for {
		left := rbsize(n.left)
		switch {
		case i < left:
			n = n.left
		case i > left:
			i -= left + 1
			n = n.right
		default:
			return n.key, nil
		}
	}
}

// Keys returns every key in ascending order. Complexity: O(n).
func (t *RedBlack[K, V]) Keys() []K {
	out := make([]K, 0, rbsize(t.root))
	var walk func(n *rbnode[K, V])
	walk = func(n *rbnode[K, V]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// RangeKeys returns the keys in [lo, hi] in ascending order.
// Complexity: O(log n + m).
func (t *RedBlack[K, V]) RangeKeys(lo, hi K) []K {
	var out []K
	var walk func(n *rbnode[K, V])
	walk = func(n *rbnode[K, V]) {
		if n == nil {
			return
		}
		if lo < n.key {
			walk(n.left)
		}
		if lo <= n.key && n.key <= hi {
			out = append(out, n.key)
		}
		if n.key < hi {
			walk(n.right)
		}
	}
	walk(t.root)

	return out
}

// Height returns the number of edges on the longest root-to-leaf path
// (-1 for an empty tree). Complexity: O(n).
func (t *RedBlack[K, V]) Height() int {
	var h func(n *rbnode[K, V]) int
	h = func(n *rbnode[K, V]) int {
		if n == nil {
			return -1
		}

		return 1 + max(h(n.left), h(n.right))
	}

	return h(t.root)
}
