package naive

import "github.com/karepker/little-tsp/graph"

// Tour is a Hamiltonian cycle starting and ending at vertex 0.
type Tour struct {
	Vertices []int
	Length   int
}

// Solve returns the exact optimal tour by exhaustive permutation search over
// all orderings of vertices [1, n), holding vertex 0 fixed as the start
// (since every tour is a cycle, fixing the start eliminates n redundant
// rotations without changing the optimum). Returns ErrTooLarge if
// n > MaxVertices.
func Solve(g graph.Graph) (Tour, error) {
	n := g.NumVertices()

	if n == 0 {
		return Tour{}, nil
	}
	if n == 1 {
		return Tour{Vertices: []int{0}, Length: 0}, nil
	}
	if n > MaxVertices {
		return Tour{}, ErrTooLarge
	}

	s := &searcher{g: g, n: n, visited: make([]bool, n), path: make([]int, 1, n)}
	s.path[0] = 0
	s.visited[0] = true
	s.bestLength = -1

	s.search(0)

	return Tour{Vertices: s.bestPath, Length: s.bestLength}, nil
}

// searcher holds the state of one exhaustive search: a dedicated struct over
// the path/visited state rather than closures.
type searcher struct {
	g       graph.Graph
	n       int
	visited []bool
	path    []int

	bestPath   []int
	bestLength int
}

// search recursively extends path by every unvisited vertex; small-n
// exhaustive enumeration is naturally recursive.
func (s *searcher) search(partialLength int) {
	if len(s.path) == s.n {
		total := partialLength + s.g.Weight(s.path[len(s.path)-1], s.path[0])
		if s.bestLength == -1 || total < s.bestLength {
			s.bestLength = total
			s.bestPath = append([]int(nil), s.path...)
		}
		return
	}

	last := s.path[len(s.path)-1]
	var v int
	for v = 0; v < s.n; v++ {
		if s.visited[v] {
			continue
		}
		s.visited[v] = true
		s.path = append(s.path, v)
		s.search(partialLength + s.g.Weight(last, v))
		s.path = s.path[:len(s.path)-1]
		s.visited[v] = false
	}
}
