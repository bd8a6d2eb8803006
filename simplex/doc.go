// Package simplex solves dense linear programs in the standard primal
// form
//
//	maximize   c·x
//	subject to A·x ≤ b, x ≥ 0
//
// with the two-phase simplex method on a full tableau. Entering columns
// are chosen by Bland's smallest-index rule, which guarantees
// termination even on degenerate programs.
//
// Maximize returns the optimal value together with a primal solution
// vector, or a sentinel error when the program is infeasible
// (ErrInfeasible) or the objective is unbounded above (ErrUnbounded).
//
// Complexity: exponential in the worst case, fast in practice; the
// tableau costs O((m+2)·(n+m+2)) memory for m constraints over n
// variables.
package simplex
