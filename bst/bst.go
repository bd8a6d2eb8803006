package bst

import "cmp"

// node is one BST node; count caches the subtree size for Rank/Select.
type node[K cmp.Ordered, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
	count       int
}

// BST is an unbalanced binary search tree symbol table.
// The zero value is not usable; construct with NewBST.
type BST[K cmp.Ordered, V any] struct {
	root *node[K, V]
}

// NewBST returns an empty unbalanced binary search tree.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] {
	return &BST[K, V]{}
}

// Len returns the number of stored keys. Complexity: O(1).
func (t *BST[K, V]) Len() int { return size(t.root) }

// IsEmpty reports whether the tree holds no keys. Complexity: O(1).
func (t *BST[K, V]) IsEmpty() bool { return t.root == nil }

func size[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.count
}

// Put inserts key with value v, replacing the value if key is present.
// Complexity: O(h), h = tree height.
func (t *BST[K, V]) Put(key K, v V) {
	t.root = put(t.root, key, v)
}

func put[K cmp.Ordered, V any](n *node[K, V], key K, v V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, val: v, count: 1}
	}
	switch {
	case key < n.key:
		n.left = put(n.left, key, v)
	case key > n.key:
		n.right = put(n.right, key, v)
	default:
		n.val = v
	}
	n.count = 1 + size(n.left) + size(n.right)

	return n
}

// Get returns the value stored under key and whether it was found.
// Complexity: O(h).
func (t *BST[K, V]) Get(key K) (V, bool) {
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

// Contains reports whether key is present. Complexity: O(h).
func (t *BST[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// Min returns the smallest key. Complexity: O(h).
func (t *BST[K, V]) Min() (K, error) {
	var zero K
	if t.root == nil {
		return zero, ErrEmptyTree
	}

	return minNode(t.root).key, nil
}

// Max returns the largest key. Complexity: O(h).
func (t *BST[K, V]) Max() (K, error) {
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

func minNode[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// Floor returns the greatest key ≤ key, or ErrKeyNotFound if every stored
// key is larger. Complexity: O(h).
func (t *BST[K, V]) Floor(key K) (K, error) {
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
			best, ok = n.key, true // candidate; a closer one may sit right
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

// Ceiling returns the smallest key ≥ key, or ErrKeyNotFound if every stored
// key is smaller. Complexity: O(h).
func (t *BST[K, V]) Ceiling(key K) (K, error) {
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
// Complexity: O(h).
func (t *BST[K, V]) Rank(key K) int {
	rank := 0
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			rank += 1 + size(n.left)
			n = n.right
		default:
			return rank + size(n.left)
		}
	}

	return rank
}

// Select returns the key of rank i (the i-th smallest, 0-based).
// Returns ErrKeyNotFound if i is out of range.
// Complexity: O(h).
func (t *BST[K, V]) Select(i int) (K, error) {
	var zero K
	if i < 0 || i >= size(t.root) {
		return zero, ErrKeyNotFound
	}
	n := t.root
	for {
		left := size(n.left)
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
func (t *BST[K, V]) Keys() []K {
	out := make([]K, 0, size(t.root))
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
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
// Complexity: O(h + m), m = number of keys reported.
func (t *BST[K, V]) RangeKeys(lo, hi K) []K {
	var out []K
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
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

// DeleteMin removes the smallest key. Complexity: O(h).
func (t *BST[K, V]) DeleteMin() error {
	if t.root == nil {
		return ErrEmptyTree
	}
	t.root = deleteMin(t.root)

	return nil
}

func deleteMin[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n.left == nil {
		return n.right
	}
	n.left = deleteMin(n.left)
	n.count = 1 + size(n.left) + size(n.right)

	return n
}

// Delete removes key using Hibbard deletion and reports whether it was
// present. Complexity: O(h).
func (t *BST[K, V]) Delete(key K) bool {
	if !t.Contains(key) {
		return false
	}
	t.root = del(t.root, key)

	return true
}

func del[K cmp.Ordered, V any](n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key:
		n.left = del(n.left, key)
	case key > n.key:
		n.right = del(n.right, key)
	default:
		if n.right == nil {
			return n.left
		}
		if n.left == nil {
			return n.right
		}
		// Replace with the successor: the minimum of the right subtree.
		succ := minNode(n.right)
		n.key, n.val = succ.key, succ.val
		n.right = deleteMin(n.right)
	}
	n.count = 1 + size(n.left) + size(n.right)

	return n
}

// Height returns the number of edges on the longest root-to-leaf path
// (-1 for an empty tree). Complexity: O(n).
func (t *BST[K, V]) Height() int {
	var h func(n *node[K, V]) int
	h = func(n *node[K, V]) int {
		if n == nil {
			return -1
		}

		return 1 + max(h(n.left), h(n.right))
	}

	return h(t.root)
}
