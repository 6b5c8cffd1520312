package graphio

import "errors"

// Sentinel errors for package graphio.
var (
	// ErrMalformedInput covers any parse failure: a missing world size, a
	// missing vertex count, a non-integer token, or a coordinate line that
	// ended before both of its fields were read.
	ErrMalformedInput = errors.New("graphio: malformed coordinate input")
)
