package pq

import "cmp"

// entry pairs a client key with its current priority.
type entry[K comparable, P cmp.Ordered] struct {
	key K
	pri P
}

// IndexedMinPQ is a binary min-heap of (key, priority) pairs with O(1)
// membership tests and O(log n) DecreaseKey, the backbone of the eager
// Dijkstra and Prim implementations.
//
// Keys are unique; inserting a present key is an error, and DecreaseKey
// requires the new priority to be strictly lower.
type IndexedMinPQ[K comparable, P cmp.Ordered] struct {
	heap []entry[K, P]
	pos  map[K]int // key → index in heap
}

// NewIndexedMinPQ returns an empty indexed queue with the given capacity hint.
func NewIndexedMinPQ[K comparable, P cmp.Ordered](capacity int) *IndexedMinPQ[K, P] {
	c := max(capacity, 0)

	return &IndexedMinPQ[K, P]{
		heap: make([]entry[K, P], 0, c),
		pos:  make(map[K]int, c),
	}
}

// Len returns the number of queued keys. Complexity: O(1).
func (q *IndexedMinPQ[K, P]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no keys. Complexity: O(1).
func (q *IndexedMinPQ[K, P]) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether key is queued. Complexity: O(1).
func (q *IndexedMinPQ[K, P]) Contains(key K) bool {
	_, ok := q.pos[key]

	return ok
}

// Priority returns the current priority of key.
// Complexity: O(1).
func (q *IndexedMinPQ[K, P]) Priority(key K) (P, error) {
	var zero P
	i, ok := q.pos[key]
	if !ok {
		return zero, ErrKeyNotFound
	}

	return q.heap[i].pri, nil
}

// Insert queues key with the given priority.
// Returns ErrKeyExists if key is already present.
// Complexity: O(log n).
func (q *IndexedMinPQ[K, P]) Insert(key K, pri P) error {
	if _, ok := q.pos[key]; ok {
		return ErrKeyExists
	}
	q.heap = append(q.heap, entry[K, P]{key: key, pri: pri})
	q.pos[key] = len(q.heap) - 1
	q.swim(len(q.heap) - 1)

	return nil
}

// DecreaseKey lowers the priority of key to pri.
// Returns ErrKeyNotFound if absent, ErrNotLower if pri is not strictly lower.
// Complexity: O(log n).
func (q *IndexedMinPQ[K, P]) DecreaseKey(key K, pri P) error {
	i, ok := q.pos[key]
	if !ok {
		return ErrKeyNotFound
	}
	if pri >= q.heap[i].pri {
		return ErrNotLower
	}
	q.heap[i].pri = pri
	q.swim(i)

	return nil
}

// InsertOrDecrease queues key, or lowers its priority when already queued
// with a higher one. A present key with an equal or lower priority is left
// untouched. This is the relaxation helper used by spath and mst.
// Complexity: O(log n).
func (q *IndexedMinPQ[K, P]) InsertOrDecrease(key K, pri P) {
	i, ok := q.pos[key]
	switch {
	case !ok:
		q.heap = append(q.heap, entry[K, P]{key: key, pri: pri})
		q.pos[key] = len(q.heap) - 1
		q.swim(len(q.heap) - 1)
	case pri < q.heap[i].pri:
		q.heap[i].pri = pri
		q.swim(i)
	}
}

// Pop removes and returns the key with the smallest priority.
// Complexity: O(log n).
func (q *IndexedMinPQ[K, P]) Pop() (K, P, error) {
	var (
		zeroK K
		zeroP P
	)
	n := len(q.heap)
	if n == 0 {
		return zeroK, zeroP, ErrEmptyQueue
	}
	top := q.heap[0]
	q.swap(0, n-1)
	q.heap = q.heap[:n-1]
	delete(q.pos, top.key)
	if len(q.heap) > 0 {
		q.sink(0)
	}

	return top.key, top.pri, nil
}

// swap exchanges heap slots i and j and fixes the position index.
func (q *IndexedMinPQ[K, P]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i].key] = i
	q.pos[q.heap[j].key] = j
}

func (q *IndexedMinPQ[K, P]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.heap[parent].pri <= q.heap[i].pri {
			return
		}
		q.swap(parent, i)
		i = parent
	}
}

func (q *IndexedMinPQ[K, P]) sink(i int) {
	n := len(q.heap)
	for {
		j := 2*i + 1
		if j >= n {
			return
		}
		if j+1 < n && q.heap[j+1].pri < q.heap[j].pri {
			j++
		}
		if q.heap[i].pri <= q.heap[j].pri {
			return
		}
		q.swap(i, j)
		i = j
	}
}
