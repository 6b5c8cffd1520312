package little

import "github.com/karepker/little-tsp/graph"

// deadlineCheckInterval is how many search-tree nodes Solve evaluates
// between checks of Options.Ctx: frequent enough to cancel promptly,
// infrequent enough that ctx.Err() never dominates the hot loop.
const deadlineCheckInterval = 4096

// stackFrame is one entry of Solve's explicit DFS stack.
type stackFrame struct {
	node *TreeNode
}

// Solve runs the Little branch-and-bound search to completion (or until
// opts.Ctx is cancelled) and returns the optimal tour.
//
// The search pushes the exclude child before the include child so the
// include branch is always explored first (LIFO pop order), a
// depth-first-favor-inclusion strategy.
func Solve(g graph.Graph, opts Options) (Tour, error) {
	n := g.NumVertices()

	if n == 0 {
		return Tour{}, nil
	}
	if n == 1 {
		return Tour{Vertices: []int{0}, Length: 0}, nil
	}

	var ub int
	hasUB := opts.HasUpperBound
	if hasUB {
		ub = opts.UpperBound
	}

	var best Tour
	haveBest := false

	stack := []stackFrame{{node: Root(n)}}
	var evaluated int

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := frame.node

		evaluated++
		if evaluated%deadlineCheckInterval == 0 && opts.Ctx != nil {
			select {
			case <-opts.Ctx.Done():
				if haveBest {
					return best, ErrNotProvenOptimal
				}
				return Tour{}, ErrNotProvenOptimal
			default:
			}
		}

		// A node whose bound equals ub is pruned only once a tour of length
		// ub is in hand; before that, a caller-supplied ub may be exactly
		// the optimum and must still be reachable.
		if hasUB && !node.LowerBound().IsInfinite() &&
			(node.LowerBound().Value() > ub || (haveBest && node.LowerBound().Value() == ub)) {
			continue
		}

		result := node.CalcLBAndNextEdge(g)
		if result.dead {
			continue
		}

		if node.LowerBound().IsInfinite() {
			continue
		}
		if hasUB && (node.LowerBound().Value() > ub || (haveBest && node.LowerBound().Value() == ub)) {
			continue
		}

		if result.complete {
			path := TSPPath(n, result.completed)
			length := tourLength(g, path)
			if !hasUB || !haveBest || length < ub {
				ub = length
				hasUB = true
				best = Tour{Vertices: path, Length: length}
				haveBest = true
			}
			continue
		}

		// Push exclude first (only when a live sibling exists) so include
		// is popped and explored first.
		if node.HasExcludeBranch() {
			stack = append(stack, stackFrame{node: node.ExcludeChild()})
		}
		stack = append(stack, stackFrame{node: node.IncludeChild()})
	}

	if !haveBest {
		return Tour{}, ErrNoTour
	}
	return best, nil
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
