package simplex

import "math"

// tableau carries the dense two-phase state.
//
// Rows 0..m-1 hold the constraints, row m the phase-two objective and
// row m+1 the phase-one objective. Columns 0..n-1 are the original
// variables, n..n+m-1 the slacks, n+m the single artificial variable
// and n+m+1 the right-hand side.
type tableau struct {
	m, n  int
	a     [][]float64
	basis []int
	eps   float64
}

// Maximize solves max{c·x : A·x ≤ b, x ≥ 0}. A is row-major with one
// row per constraint; b may contain negative entries, in which case a
// phase-one pass finds an initial feasible basis first.
//
// Errors: ErrEmptyProgram, ErrDimensionMismatch, ErrInfeasible,
// ErrUnbounded.
func Maximize(c []float64, A [][]float64, b []float64, opts ...Option) (*Solution, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate shapes.
	if len(c) == 0 || len(A) == 0 {
		return nil, ErrEmptyProgram
	}
	if len(A) != len(b) {
		return nil, ErrDimensionMismatch
	}
	for _, row := range A {
		if len(row) != len(c) {
			return nil, ErrDimensionMismatch
		}
	}

	// 3) Build the tableau and solve.
	t := newTableau(c, A, b, cfg.Epsilon)
	if err := t.solve(); err != nil {
		return nil, err
	}

	return &Solution{Value: t.value(), X: t.primal()}, nil
}

func newTableau(c []float64, A [][]float64, b []float64, eps float64) *tableau {
	m, n := len(b), len(c)
	a := make([][]float64, m+2)
	for i := range a {
		a[i] = make([]float64, n+m+2)
	}
	for i := 0; i < m; i++ {
		copy(a[i], A[i])
		a[i][n+i] = 1      // slack
		a[i][n+m] = -1     // artificial
		a[i][n+m+1] = b[i] // rhs
	}
	copy(a[m], c)
	a[m+1][n+m] = -1 // phase one maximizes the negated artificial

	basis := make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	return &tableau{m: m, n: n, a: a, basis: basis, eps: eps}
}

func (t *tableau) solve() error {
	// 1) If some b[i] < 0 the all-slack basis is infeasible: pivot the
	//    artificial variable in at the most violated row and drive it
	//    back to zero.
	p := 0
	for i := 1; i < t.m; i++ {
		if t.rhs(i) < t.rhs(p) {
			p = i
		}
	}
	if t.rhs(p) < -t.eps {
		t.pivot(p, t.n+t.m)
		t.basis[p] = t.n + t.m
		if err := t.phaseOne(); err != nil {
			return err
		}
	}

	// 2) Optimize the real objective from the feasible basis.
	return t.phaseTwo()
}

// phaseOne runs Bland pivots on the auxiliary objective until it is
// optimal, then checks that the artificial variable reached zero.
func (t *tableau) phaseOne() error {
	for {
		q := t.entering(t.m+1, t.n+t.m+1)
		if q == -1 {
			break
		}
		p := t.leaving(q)
		if p == -1 {
			// The auxiliary objective is bounded by construction.
			return ErrInfeasible
		}
		t.pivot(p, q)
		t.basis[p] = q
	}
	if t.rhs(t.m+1) > t.eps {
		return ErrInfeasible
	}

	// A degenerate optimum can leave the artificial variable basic at
	// level zero; swap it out on any usable column.
	for i := 0; i < t.m; i++ {
		if t.basis[i] != t.n+t.m {
			continue
		}
		for j := 0; j < t.n+t.m; j++ {
			if math.Abs(t.a[i][j]) > t.eps {
				t.pivot(i, j)
				t.basis[i] = j
				break
			}
		}
	}

	return nil
}

// phaseTwo runs Bland pivots on the real objective; a column with no
// positive entry certifies an unbounded ray.
func (t *tableau) phaseTwo() error {
	for {
		q := t.entering(t.m, t.n+t.m)
		if q == -1 {
			return nil
		}
		p := t.leaving(q)
		if p == -1 {
			return ErrUnbounded
		}
		t.pivot(p, q)
		t.basis[p] = q
	}
}

// entering returns the lowest-index column in [0, limit) whose reduced
// cost in the given objective row is positive, or -1 at optimality.
// Smallest index is Bland's anti-cycling rule.
func (t *tableau) entering(row, limit int) int {
	for j := 0; j < limit; j++ {
		if t.a[row][j] > t.eps {
			return j
		}
	}

	return -1
}

// leaving applies the minimum-ratio rule over column q, or -1 when the
// column has no positive entry.
func (t *tableau) leaving(q int) int {
	p := -1
	for i := 0; i < t.m; i++ {
		if t.a[i][q] <= t.eps {
			continue
		}
		if p == -1 || t.rhs(i)/t.a[i][q] < t.rhs(p)/t.a[p][q] {
			p = i
		}
	}

	return p
}

// pivot performs Gauss-Jordan elimination on entry (p, q), normalizing
// the pivot row and zeroing column q everywhere else, objective rows
// included.
func (t *tableau) pivot(p, q int) {
	for i := 0; i <= t.m+1; i++ {
		if i == p {
			continue
		}
		ratio := t.a[i][q] / t.a[p][q]
		for j := 0; j <= t.n+t.m+1; j++ {
			if j != q {
				t.a[i][j] -= t.a[p][j] * ratio
			}
		}
		t.a[i][q] = 0
	}
	for j := 0; j <= t.n+t.m+1; j++ {
		if j != q {
			t.a[p][j] /= t.a[p][q]
		}
	}
	t.a[p][q] = 1
}

func (t *tableau) rhs(i int) float64 { return t.a[i][t.n+t.m+1] }

// value reads the optimum off the transformed objective row.
func (t *tableau) value() float64 { return -t.rhs(t.m) }

// primal reads the basic original variables; non-basic ones are zero.
func (t *tableau) primal() []float64 {
	x := make([]float64, t.n)
	for i, col := range t.basis {
		if col < t.n {
			x[col] = t.rhs(i)
		}
	}

	return x
}
