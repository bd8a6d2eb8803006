// Package trie declares the sentinel errors shared by both trie variants.
package trie

import "errors"

// ErrEmptyKey indicates an empty string was passed to a TST operation;
// ternary search tries have no node to hang the empty key on.
var ErrEmptyKey = errors.New("trie: empty key not supported")
