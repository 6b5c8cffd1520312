// Package fast implements a cheapest-insertion heuristic for the symmetric
// Traveling Salesperson Problem: a fast, non-exact tour used as a quick
// upper-bound seed or as a baseline to compare package little's exact
// answer against.
package fast
