package naive

import "errors"

// Sentinel errors for package naive.
var (
	// ErrTooLarge is returned when n exceeds MaxVertices: the original has
	// no such guard, but an idiomatic Go library should not silently spin
	// through 20! permutations on behalf of a caller who mistyped an input
	// size.
	ErrTooLarge = errors.New("naive: graph too large for exhaustive search")
)

// MaxVertices is the largest n Solve will accept. With vertex 0 fixed, n = 12
// already means 11! (about 40 million) orderings; this leaves generous
// headroom for a test oracle while refusing to hang indefinitely on a
// mistaken input.
const MaxVertices = 12
