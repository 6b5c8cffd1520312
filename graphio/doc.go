// Package graphio parses the stdin coordinate-file format used by the
// little-tsp CLI: a world size, a vertex count, then that many coordinate
// pairs. It is a pure parsing collaborator; building a graph.Manhattan from
// the returned points is the caller's job.
package graphio
