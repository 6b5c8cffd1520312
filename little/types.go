// Package little implements the Little-Murty-Sweeney-Karel branch-and-bound
// solver for the symmetric Traveling Salesperson Problem: the cost-matrix
// reduction, the include/exclude search tree, and the depth-first
// branch-and-bound driver.
//
// Design goals:
//   - Strict sentinel errors; never wrapped with fmt.Errorf where a sentinel
//     suffices.
//   - Deterministic branching: zero-selection ties broken by row-major
//     iteration order, include branch always explored before exclude.
//   - A single Options struct with a DefaultOptions constructor.
package little

import (
	"context"
	"errors"
)

// Sentinel errors. Implementation invariant violations are fatal and
// propagate to the caller unchanged.
var (
	// ErrImplementation marks a programmer-error invariant violation inside
	// the search (e.g. an include list with a duplicate source vertex, or a
	// request for a child of a node whose branching edge was never chosen).
	// Raised as a panic value, not returned. Fatal.
	ErrImplementation = errors.New("little: implementation invariant violated")

	// ErrNotProvenOptimal is returned alongside a best-effort tour when
	// Solve's context is cancelled before the search exhausted the tree.
	// Not a failure: the tour returned is the best complete tour found so
	// far, not certified optimal, or the zero Tour if none was found yet.
	ErrNotProvenOptimal = errors.New("little: search cancelled before optimality was proven")

	// ErrNoTour is returned when the graph cannot yield a feasible
	// Hamiltonian cycle (every branch died).
	ErrNoTour = errors.New("little: no feasible tour found")
)

// Tour is a Hamiltonian cycle starting and ending at vertex 0.
type Tour struct {
	// Vertices is a permutation of [0, n) with Vertices[0] == 0.
	Vertices []int

	// Length is the sum of edge weights along the cycle, including the
	// closing edge Vertices[n-1] -> Vertices[0].
	Length int
}

// Options configures Solve. The zero value is meaningful: no initial upper
// bound (treated as +infinity) and no cancellation context.
type Options struct {
	// UpperBound seeds the search's pruning cutoff and is used only when
	// HasUpperBound is true; otherwise there is no bound (+infinity). A bound
	// must be at least the length of some feasible tour, or Solve may report
	// that no tour exists. HasUpperBound distinguishes "no bound" from an
	// explicit bound of 0.
	UpperBound    int
	HasUpperBound bool

	// Ctx is checked sparingly (every 4096 search-tree node evaluations) to
	// allow cooperative cancellation of long searches. Nil means "never
	// cancel".
	Ctx context.Context
}

// DefaultOptions returns Options with no upper bound and no cancellation.
func DefaultOptions() Options {
	return Options{}
}
