package pq

import "cmp"

// MinPQ is a binary min-heap over ordered elements.
// The zero value is not usable; construct with NewMinPQ.
type MinPQ[T cmp.Ordered] struct {
	items []T
}

// NewMinPQ returns an empty min-priority queue with the given capacity hint.
func NewMinPQ[T cmp.Ordered](capacity int) *MinPQ[T] {
	return &MinPQ[T]{items: make([]T, 0, max(capacity, 0))}
}

// Len returns the number of queued elements. Complexity: O(1).
func (q *MinPQ[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no elements. Complexity: O(1).
func (q *MinPQ[T]) IsEmpty() bool { return len(q.items) == 0 }

// Insert adds v to the queue. Complexity: O(log n).
func (q *MinPQ[T]) Insert(v T) {
	q.items = append(q.items, v)
	q.swim(len(q.items) - 1)
}

// Min returns the smallest element without removing it.
// Complexity: O(1).
func (q *MinPQ[T]) Min() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmptyQueue
	}

	return q.items[0], nil
}

// DelMin removes and returns the smallest element.
// Complexity: O(log n).
func (q *MinPQ[T]) DelMin() (T, error) {
	var zero T
	n := len(q.items)
	if n == 0 {
		return zero, ErrEmptyQueue
	}
	top := q.items[0]
	q.items[0] = q.items[n-1]
	q.items[n-1] = zero // release reference for GC-relevant element types
	q.items = q.items[:n-1]
	q.sink(0)

	return top, nil
}

// swim restores the heap invariant upward from index i.
func (q *MinPQ[T]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[parent] <= q.items[i] {
			return
		}
		q.items[parent], q.items[i] = q.items[i], q.items[parent]
		i = parent
	}
}

// sink restores the heap invariant downward from index i.
func (q *MinPQ[T]) sink(i int) {
	n := len(q.items)
	for {
		j := 2*i + 1
		if j >= n {
			return
		}
		if j+1 < n && q.items[j+1] < q.items[j] {
			j++
		}
		if q.items[i] <= q.items[j] {
			return
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		i = j
	}
}

// MaxPQ is a binary max-heap over ordered elements.
// The zero value is not usable; construct with NewMaxPQ.
type MaxPQ[T cmp.Ordered] struct {
	items []T
}

// NewMaxPQ returns an empty max-priority queue with the given capacity hint.
func NewMaxPQ[T cmp.Ordered](capacity int) *MaxPQ[T] {
	return &MaxPQ[T]{items: make([]T, 0, max(capacity, 0))}
}

// Len returns the number of queued elements. Complexity: O(1).
func (q *MaxPQ[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no elements. Complexity: O(1).
func (q *MaxPQ[T]) IsEmpty() bool { return len(q.items) == 0 }

// Insert adds v to the queue. Complexity: O(log n).
func (q *MaxPQ[T]) Insert(v T) {
	q.items = append(q.items, v)
	// Swim with inverted comparison.
	i := len(q.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[parent] >= q.items[i] {
			break
		}
		q.items[parent], q.items[i] = q.items[i], q.items[parent]
		i = parent
	}
}

// Max returns the largest element without removing it.
// Complexity: O(1).
func (q *MaxPQ[T]) Max() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmptyQueue
	}

	return q.items[0], nil
}

// DelMax removes and returns the largest element.
// Complexity: O(log n).
func (q *MaxPQ[T]) DelMax() (T, error) {
	var zero T
	n := len(q.items)
	if n == 0 {
		return zero, ErrEmptyQueue
	}
	top := q.items[0]
	q.items[0] = q.items[n-1]
	q.items[n-1] = zero
	q.items = q.items[:n-1]

	// Sink with inverted comparison.
	i := 0
	n--
	for {
		j := 2*i + 1
		if j >= n {
			break
		}
		if j+1 < n && q.items[j+1] > q.items[j] {
			j++
		}
		if q.items[i] >= q.items[j] {
			break
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		i = j
	}

	return top, nil
}
