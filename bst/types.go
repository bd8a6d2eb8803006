// Package bst declares the sentinel errors shared by both tree variants.
package bst

import "errors"

// Sentinel errors for ordered symbol-table operations.
var (
	// ErrEmptyTree indicates an order statistic was requested on an empty tree.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrKeyNotFound indicates no key satisfies the requested bound
	// (Floor/Ceiling) or the requested rank is out of range (Select).
	ErrKeyNotFound = errors.New("bst: no such key")
)
