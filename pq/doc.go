// Package pq provides binary-heap priority queues:
//
//   - MinPQ / MaxPQ — classic heaps over any cmp.Ordered element type.
//   - IndexedMinPQ  — a min-heap of (key, priority) pairs supporting
//     Contains, Priority lookup and DecreaseKey in O(log n), the structure
//     behind the eager forms of Dijkstra (spath) and Prim (mst).
//
// All operations are the textbook swim/sink implementations on a slice:
//
//	Insert     O(log n)
//	Min / Max  O(1)
//	DelMin     O(log n)
//	DecreaseKey O(log n)   (indexed queue only)
//
// Errors:
//
//	ErrEmptyQueue  — Min/Max/DelMin on an empty queue
//	ErrKeyExists   — Insert of a key already present (indexed queue)
//	ErrKeyNotFound — DecreaseKey/Priority of an absent key (indexed queue)
//	ErrNotLower    — DecreaseKey with a priority that does not decrease
package pq
