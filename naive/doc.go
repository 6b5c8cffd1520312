// Package naive implements an O(n!) exhaustive permutation search for the
// symmetric Traveling Salesperson Problem. It exists as a test oracle: its
// result, cross-checked against package little's branch-and-bound search,
// verifies optimality on small graphs.
package naive
