// Package sorting - RNG utilities for shuffling.
//
// This file centralizes deterministic random generation for the package.
//
// Goals:
//   - Determinism: same seed ⇒ identical permutation across platforms.
//   - Encapsulation: no package-level seed state; every generator is
//     instance-scoped and supplied (or derived) explicitly.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; derive one per worker instead.
package sorting

import "math/rand"

// defaultSeed is the fixed seed used when callers pass a nil generator or
// seed 0. The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for the given seed.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Shuffle permutes a in place with the Fisher–Yates algorithm, producing a
// uniformly random permutation under rng. A nil rng falls back to the fixed
// default stream (NewRand(0)).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
