package flow

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/algokit/core"
)

// Sentinel errors for max-flow computation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrDirectedRequired is returned for undirected graphs; capacities
	// are directional.
	ErrDirectedRequired = errors.New("flow: requires a directed graph")

	// ErrUnweightedGraph is returned when the graph carries no weights to
	// read capacities from.
	ErrUnweightedGraph = errors.New("flow: graph must be weighted")

	// ErrSourceNotFound is returned when the source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source == sink.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")

	// ErrNegativeCapacity is returned when an edge weight is below
	// -Epsilon.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity")
)

// DefaultEpsilon is the zero-threshold applied to capacities and residuals.
const DefaultEpsilon = 1e-9

// Option configures a max-flow run via functional arguments.
type Option func(*Options)

// Options holds tuning parameters shared by all three algorithms.
type Options struct {
	// Ctx allows cancellation between augmentation rounds.
	Ctx context.Context

	// Epsilon is the zero-threshold for capacities; values within Epsilon
	// of zero are treated as exhausted.
	Epsilon float64
}

// DefaultOptions returns Options with Background context and
// DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Epsilon: DefaultEpsilon}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon overrides the zero-threshold; non-positive values are
// ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// Result holds the outcome of a max-flow computation.
type Result struct {
	// Value is the maximum flow from source to sink.
	Value float64

	source, sink string
	eps          float64
	capacity     map[string]map[string]float64 // original aggregated capacities
	residual     map[string]map[string]float64 // capacities after the run
}

// Flow returns the flow routed along the original edge u→v (zero for
// edges carrying none, and for unknown pairs).
func (r *Result) Flow(u, v string) float64 {
	f := r.capacity[u][v] - r.residual[u][v]
	if f < r.eps {
		return 0
	}

	return f
}

// Residual returns the remaining capacity on u→v, counting reverse
// (undo) capacity created by routed flow.
func (r *Result) Residual(u, v string) float64 {
	return r.residual[u][v]
}

// MinCut returns the minimum s-t cut certificate: the source side of the
// cut (sorted), the original edges crossing it, and their total capacity,
// which equals Value by max-flow/min-cut duality.
// Complexity: O(V + E).
func (r *Result) MinCut() (sourceSide []string, cut []core.Edge, capacity float64) {
	// 1) The source side is everything still reachable in the residual.
	reach := map[string]bool{r.source: true}
	stack := []string{r.source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range r.residual[u] {
			if c > r.eps && !reach[v] {
				reach[v] = true
				stack = append(stack, v)
			}
		}
	}

	// 2) Saturated original edges leaving that set form the cut.
	for u := range reach {
		for v, c := range r.capacity[u] {
			if !reach[v] && c > r.eps {
				cut = append(cut, core.Edge{From: u, To: v, Weight: c})
				capacity += c
			}
		}
	}

	for v := range reach {
		sourceSide = append(sourceSide, v)
	}
	sort.Strings(sourceSide)
	sort.Slice(cut, func(i, j int) bool {
		if cut[i].From != cut[j].From {
			return cut[i].From < cut[j].From
		}

		return cut[i].To < cut[j].To
	})

	return sourceSide, cut, capacity
}
