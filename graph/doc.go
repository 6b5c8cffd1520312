// Package graph defines the read-only collaborators shared by every TSP
// solver in this module: a directed Edge, an integer-valued EdgeCost with an
// explicit infinite state, and the Graph view that supplies edge weights.
//
// The only concrete Graph in scope is Manhattan, which precomputes all
// pairwise L1 distances between integer grid points at construction time and
// answers Weight(i, j) from a flat row-major buffer.
//
// Errors are plain sentinels (errors.New), never wrapped with fmt.Errorf
// where a sentinel suffices, mirroring the rest of this module.
package graph
