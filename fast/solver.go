package fast

import "github.com/karepker/little-tsp/graph"

// Tour is a (generally non-optimal) Hamiltonian cycle starting at vertex 0.
type Tour struct {
	Vertices []int
	Length   int
}

// Solve builds a tour by repeated cheapest insertion: starting from vertex
// 0 and its nearest neighbor, each remaining vertex is inserted at the
// position in the current path that increases its length the least, with
// the next vertex to insert chosen as whichever remaining vertex is
// currently closest to the tour (tracked via a running minimum-distance
// table, updated after each insertion rather than recomputed from scratch).
func Solve(g graph.Graph) Tour {
	n := g.NumVertices()

	if n == 0 {
		return Tour{}
	}
	if n == 1 {
		return Tour{Vertices: []int{0}, Length: 0}
	}

	minDist := make([]int, n)
	remaining := make(map[int]bool, n-1)
	var i int
	for i = 1; i < n; i++ {
		minDist[i] = g.Weight(0, i)
		remaining[i] = true
	}

	path := make([]int, 0, n)
	path = append(path, 0)

	second := closestRemaining(remaining, minDist)
	path = append(path, second)
	delete(remaining, second)
	updateMinDist(g, second, remaining, minDist)

	for len(remaining) > 0 {
		next := closestRemaining(remaining, minDist)
		delete(remaining, next)

		bestPos := bestInsertionPosition(g, path, next)
		path = insertAt(path, bestPos, next)

		updateMinDist(g, next, remaining, minDist)
	}

	return Tour{Vertices: path, Length: tourLength(g, path)}
}

// closestRemaining returns the key in remaining with the smallest tracked
// minDist, breaking ties by smallest index for determinism.
func closestRemaining(remaining map[int]bool, minDist []int) int {
	best := -1
	for v := range remaining {
		if best == -1 || minDist[v] < minDist[best] || (minDist[v] == minDist[best] && v < best) {
			best = v
		}
	}
	return best
}

// updateMinDist folds in the distance from the newly inserted vertex into
// every still-remaining vertex's running minimum.
func updateMinDist(g graph.Graph, inserted int, remaining map[int]bool, minDist []int) {
	for v := range remaining {
		d := g.Weight(inserted, v)
		if d < minDist[v] {
			minDist[v] = d
		}
	}
}

// bestInsertionPosition returns the path index i such that inserting v
// between path[i] and path[i+1] (wrapping to path[0] at the end) increases
// total length the least.
func bestInsertionPosition(g graph.Graph, path []int, v int) int {
	bestIdx := 0
	bestCost := insertionCost(g, path, 0, v)
	var i int
	for i = 1; i < len(path); i++ {
		cost := insertionCost(g, path, i, v)
		if cost < bestCost {
			bestCost = cost
			bestIdx = i
		}
	}
	return bestIdx
}

// insertionCost returns the length delta of inserting v immediately after
// path[i] (wrapping the edge out of the last element back to path[0]).
func insertionCost(g graph.Graph, path []int, i int, v int) int {
	j := i + 1
	if j == len(path) {
		j = 0
	}
	oldDist := g.Weight(path[i], path[j])
	newDist := g.Weight(path[i], v) + g.Weight(v, path[j])
	return newDist - oldDist
}

// insertAt returns a copy of path with v inserted immediately after index i.
func insertAt(path []int, i int, v int) []int {
	out := make([]int, 0, len(path)+1)
	out = append(out, path[:i+1]...)
	out = append(out, v)
	out = append(out, path[i+1:]...)
	return out
}

// tourLength sums the weight of every edge along path, including the
// closing edge back to path[0].
func tourLength(g graph.Graph, path []int) int {
	total := 0
	var i int
	for i = 0; i < len(path); i++ {
		j := i + 1
		if j == len(path) {
			j = 0
		}
		total += g.Weight(path[i], path[j])
	}
	return total
}
