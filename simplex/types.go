package simplex

import "errors"

// Sentinel errors reported by Maximize.
var (
	// ErrEmptyProgram is returned when the objective or the constraint
	// set is empty.
	ErrEmptyProgram = errors.New("simplex: objective and constraints must be non-empty")

	// ErrDimensionMismatch is returned when the shapes of c, A and b
	// disagree.
	ErrDimensionMismatch = errors.New("simplex: dimensions of c, A and b must agree")

	// ErrInfeasible is returned when no x ≥ 0 satisfies A·x ≤ b.
	ErrInfeasible = errors.New("simplex: program is infeasible")

	// ErrUnbounded is returned when the objective can grow without
	// limit over the feasible region.
	ErrUnbounded = errors.New("simplex: objective is unbounded")
)

// DefaultEpsilon is the pivot and feasibility tolerance used when no
// override is supplied.
const DefaultEpsilon = 1e-9

// Options tunes a solve.
type Options struct {
	// Epsilon is the tolerance below which a tableau entry is treated
	// as zero. Must be > 0.
	Epsilon float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon overrides the zero tolerance. Panics if eps ≤ 0.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("simplex: epsilon must be positive")
	}

	return func(o *Options) { o.Epsilon = eps }
}

// Solution is the result of a successful solve.
type Solution struct {
	// Value is the optimal objective value c·x.
	Value float64

	// X is a primal optimal point, indexed like c.
	X []float64
}
