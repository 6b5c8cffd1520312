package graph

import "errors"

// Sentinel errors for package graph. Never wrapped with fmt.Errorf where a
// sentinel suffices.
var (
	// ErrImplementation marks a programmer-error invariant violation: asking
	// for the value of an infinite EdgeCost, or subtracting infinite from a
	// finite EdgeCost. These are category-2 errors in the spec's error model
	// (§7) and are fatal to the solve that triggered them.
	ErrImplementation = errors.New("graph: implementation invariant violated")

	// ErrBadCoordinates indicates a Manhattan graph was asked to build from
	// zero points.
	ErrBadCoordinates = errors.New("graph: invalid vertex coordinates")

	// ErrVertexOutOfRange indicates Weight was called with an index outside
	// [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)
