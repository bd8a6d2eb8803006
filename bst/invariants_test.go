// White-box checks of the left-leaning red-black representation invariants:
// red links lean left, no node carries two red links, and every root-to-nil
// path crosses the same number of black links.
package bst

import (
	"cmp"
	"math/rand"
	"testing"
)

// checkLLRB walks the tree verifying structural and color invariants,
// returning the black height of the subtree.
func checkLLRB[K cmp.Ordered, V any](t *testing.T, n *rbnode[K, V], min, max *K) int {
	t.Helper()
	if n == nil {
		return 0
	}
	if min != nil && n.key <= *min {
		t.Fatalf("BST order violated: %v ≤ %v", n.key, *min)
	}
	if max != nil && n.key >= *max {
		t.Fatalf("BST order violated: %v ≥ %v", n.key, *max)
	}
	if isRed(n.right) {
		t.Fatalf("right-leaning red link at %v", n.key)
	}
	if isRed(n) && isRed(n.left) {
		t.Fatalf("two consecutive red links at %v", n.key)
	}
	if got, want := n.count, 1+rbsize(n.left)+rbsize(n.right); got != want {
		t.Fatalf("stale subtree count at %v: got %d want %d", n.key, got, want)
	}

	lh := checkLLRB(t, n.left, min, &n.key)
	rh := checkLLRB(t, n.right, &n.key, max)
	if lh != rh {
		t.Fatalf("black height mismatch at %v: %d vs %d", n.key, lh, rh)
	}
	if !isRed(n) {
		lh++
	}

	return lh
}

func TestRedBlack_InvariantsUnderChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := NewRedBlack[int, int]()
	present := make(map[int]bool)

	for i := 0; i < 5000; i++ {
		k := rng.Intn(800)
		if rng.Intn(3) == 0 {
			deleted := tree.Delete(k)
			if deleted != present[k] {
				t.Fatalf("Delete(%d) = %v, want %v", k, deleted, present[k])
			}
			delete(present, k)
		} else {
			tree.Put(k, i)
			present[k] = true
		}

		if i%500 == 0 && tree.root != nil {
			if isRed(tree.root) {
				t.Fatal("root is red")
			}
			checkLLRB(t, tree.root, nil, nil)
		}
	}

	if tree.root != nil {
		checkLLRB(t, tree.root, nil, nil)
	}
	if tree.Len() != len(present) {
		t.Fatalf("Len = %d, want %d", tree.Len(), len(present))
	}
}

func TestRedBlack_HeightBound(t *testing.T) {
	tree := NewRedBlack[int, struct{}]()
	// Sorted insertion order: the degenerate case for a plain BST.
	const n = 1 << 12
	for i := 0; i < n; i++ {
		tree.Put(i, struct{}{})
	}
	checkLLRB(t, tree.root, nil, nil)

	// Height ≤ 2·lg(n+1); lg(4097) ≈ 12, so 24 is the hard ceiling.
	if h := tree.Height(); h > 24 {
		t.Fatalf("height %d exceeds 2·lg(n+1)", h)
	}
}
