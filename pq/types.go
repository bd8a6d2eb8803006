// Package pq declares the sentinel errors shared by the priority queues.
package pq

import "errors"

// Sentinel errors for priority-queue operations.
var (
	// ErrEmptyQueue indicates Min, Max or DelMin was called on an empty queue.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrKeyExists indicates Insert was called for a key already present.
	ErrKeyExists = errors.New("pq: key already present")

	// ErrKeyNotFound indicates the requested key is not in the queue.
	ErrKeyNotFound = errors.New("pq: key not found")

	// ErrNotLower indicates DecreaseKey was given a priority that is not
	// strictly lower than the current one.
	ErrNotLower = errors.New("pq: new priority is not lower")
)
