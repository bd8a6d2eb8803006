package unionfind

// UnionFind tracks a partition of string elements into disjoint sets.
// The zero value is not usable; construct with New.
type UnionFind struct {
	parent map[string]string // parent[x] == x for roots
	size   map[string]int    // set size, valid only at roots
	count  int               // number of disjoint sets
}

// New returns an empty union-find; elements are created on first use.
func New() *UnionFind {
	return &UnionFind{
		parent: make(map[string]string),
		size:   make(map[string]int),
	}
}

// Find returns the canonical representative of x's set, creating x as a
// singleton if unseen. Path halving keeps trees nearly flat.
//
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Find(x string) string {
	u.ensure(x)
	for u.parent[x] != x {
		// Point x at its grandparent, then step up.
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Union merges the sets containing x and y using union by size.
// Returns true if a merge happened, false if they were already connected.
//
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Union(x, y string) bool {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}
	// Attach the smaller tree beneath the larger root.
	if u.size[rx] < u.size[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
	u.count--

	return true
}

// Connected reports whether x and y are in the same set.
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Connected(x, y string) bool {
	return u.Find(x) == u.Find(y)
}

// Count returns the current number of disjoint sets.
// Complexity: O(1).
func (u *UnionFind) Count() int { return u.count }

// Size returns the number of elements in x's set (1 for unseen elements).
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Size(x string) int {
	return u.size[u.Find(x)]
}

// ensure registers x as a singleton set if unseen.
func (u *UnionFind) ensure(x string) {
	if _, ok := u.parent[x]; ok {
		return
	}
	u.parent[x] = x
	u.size[x] = 1
	u.count++
}
