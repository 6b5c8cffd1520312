package little

import "github.com/karepker/little-tsp/graph"

// TreeNode is one node of the branch-and-bound search tree: a partial
// assignment of included and excluded edges, plus the lower bound and next
// branching edge computed for it. TreeNode has no parent pointer; the
// search driver holds an explicit stack instead of walking up a tree.
type TreeNode struct {
	n int

	// include is the ordered list of committed edges. It grows only along
	// include branches; an exclude child keeps its parent's list.
	include []graph.Edge

	// exclude[i][j] is true when edge i->j is forbidden at this node, either
	// because a sibling branch excluded it or because AddInclude forbade it
	// as a premature subtour closure.
	exclude [][]bool

	// lowerBound is this node's lower bound on any completion of its partial
	// tour, computed by CalcLBAndNextEdge.
	lowerBound graph.EdgeCost

	// nextEdge is the edge CalcLBAndNextEdge chose to branch on: the
	// include child commits it, the exclude child forbids it.
	nextEdge graph.Edge

	// hasNextEdge is false for every node (root or child) until its own
	// CalcLBAndNextEdge has chosen a branching edge.
	hasNextEdge bool

	// hasExcludeBranch is true when nextEdge genuinely has a live sibling
	// exclude branch worth exploring. False for a forced include (Case B):
	// excluding a forced edge cannot lead to a better tour, so the driver
	// skips generating that sibling entirely.
	hasExcludeBranch bool
}

// HasExcludeBranch reports whether nextEdge has a live sibling exclude
// branch.
func (t *TreeNode) HasExcludeBranch() bool { return t.hasExcludeBranch }

// Root returns the initial search node for a graph of n vertices: every
// diagonal cell excluded (no self-loops), no edges committed, lower bound
// zero.
func Root(n int) *TreeNode {
	exclude := make([][]bool, n)
	var i int
	for i = 0; i < n; i++ {
		exclude[i] = make([]bool, n)
		exclude[i][i] = true
	}
	return &TreeNode{n: n, exclude: exclude, lowerBound: graph.Finite(0)}
}

// LowerBound returns the node's lower bound.
func (t *TreeNode) LowerBound() graph.EdgeCost { return t.lowerBound }

// cloneExclude deep-copies the exclude matrix for a child node.
func (t *TreeNode) cloneExclude() [][]bool {
	out := make([][]bool, t.n)
	var i int
	for i = 0; i < t.n; i++ {
		out[i] = append([]bool(nil), t.exclude[i]...)
	}
	return out
}

// cloneInclude copies the include list for a child node.
func (t *TreeNode) cloneInclude() []graph.Edge {
	return append([]graph.Edge(nil), t.include...)
}

// includeWeight sums the actual (unreduced) graph weight of every committed
// edge.
func (t *TreeNode) includeWeight(g graph.Graph) graph.EdgeCost {
	total := graph.Finite(0)
	for _, e := range t.include {
		total = total.Add(graph.Finite(g.Weight(e.U, e.V)))
	}
	return total
}

// IncludeChild returns a new node that commits t.nextEdge in addition to
// t's own include list, with the subtour-breaking exclusion AddInclude
// derives from it. Panics with ErrImplementation if CalcLBAndNextEdge has
// not been called on t yet.
func (t *TreeNode) IncludeChild() *TreeNode {
	if !t.hasNextEdge {
		panic(ErrImplementation)
	}
	child := &TreeNode{
		n:          t.n,
		include:    t.cloneInclude(),
		exclude:    t.cloneExclude(),
		lowerBound: t.lowerBound,
	}
	child.addInclude(t.nextEdge)
	return child
}

// ExcludeChild returns a new node identical to t but with t.nextEdge
// forbidden. Panics with ErrImplementation if CalcLBAndNextEdge has not
// been called on t yet.
func (t *TreeNode) ExcludeChild() *TreeNode {
	if !t.hasNextEdge {
		panic(ErrImplementation)
	}
	child := &TreeNode{
		n:          t.n,
		include:    t.cloneInclude(),
		exclude:    t.cloneExclude(),
		lowerBound: t.lowerBound,
	}
	child.exclude[t.nextEdge.U][t.nextEdge.V] = true
	return child
}

// addInclude commits edge and forbids the edge that would close a subtour
// prematurely: it walks the chain of already-included edges through edge's
// endpoints, and if the resulting chain does not yet span every vertex, it
// forbids the edge that would close the chain back on itself.
func (t *TreeNode) addInclude(edge graph.Edge) {
	t.include = append(t.include, edge)

	succ := make(map[int]int, len(t.include))
	pred := make(map[int]int, len(t.include))
	for _, e := range t.include {
		succ[e.U] = e.V
		pred[e.V] = e.U
	}

	// Walk backward from edge.U to the chain's start, forward from edge.V to
	// the chain's end, counting the chain's edges. Reaching edge.V on the way
	// back means edge closed a cycle: there is no chain end left to forbid.
	chainLen := 1
	start := edge.U
	for {
		p, ok := pred[start]
		if !ok {
			break
		}
		if p == edge.V {
			return
		}
		start = p
		chainLen++
	}
	end := edge.V
	for {
		s, ok := succ[end]
		if !ok {
			break
		}
		end = s
		chainLen++
	}

	if chainLen < t.n-1 {
		t.exclude[end][start] = true
	}
}

// TSPPath reconstructs the Hamiltonian cycle from a complete include list
// (len(include) == n), starting and ending at vertex 0. Panics with
// ErrImplementation if include is not a single cycle covering every vertex
// exactly once.
func TSPPath(n int, include []graph.Edge) []int {
	if len(include) != n {
		panic(ErrImplementation)
	}

	succ := make(map[int]int, n)
	for _, e := range include {
		if _, dup := succ[e.U]; dup {
			panic(ErrImplementation)
		}
		succ[e.U] = e.V
	}

	path := make([]int, 0, n)
	cur := 0
	var i int
	for i = 0; i < n; i++ {
		path = append(path, cur)
		next, ok := succ[cur]
		if !ok {
			panic(ErrImplementation)
		}
		cur = next
	}
	if cur != 0 {
		panic(ErrImplementation)
	}

	return path
}

// calcResult is the outcome of CalcLBAndNextEdge: either a live node with a
// lower bound and a branching edge, or a dead node (infinite lower bound),
// or a complete tour discovered directly at the base case.
type calcResult struct {
	dead      bool
	complete  bool
	completed []graph.Edge // only set when complete
}

// CalcLBAndNextEdge reduces t's cost matrix, updates t.lowerBound, and
// selects the next branching edge, following this case split:
//
//   - if fewer than two rows remain available (n - len(include) < 2),
//     nothing is left to branch on and t.include is reported as complete.
//   - if the condensed matrix is 2x2 (the base case), both remaining edges
//     are forced; CalcLBAndNextEdge commits them directly and reports a
//     complete tour.
//   - if a zero has an infinite penalty on one side only (the first such
//     zero in row-major order), that edge is a forced include with no
//     sibling exclude branch.
//   - otherwise the zero with the largest finite penalty becomes nextEdge.
func (t *TreeNode) CalcLBAndNextEdge(g graph.Graph) calcResult {
	cm := newCostMatrix(g, t.include, t.exclude)

	reduced := cm.reduceMatrix()
	if reduced.IsInfinite() {
		t.lowerBound = graph.Infinite()
		return calcResult{dead: true}
	}
	t.lowerBound = t.includeWeight(g).Add(reduced)

	if cm.condensedSize() < 2 {
		return calcResult{complete: true, completed: t.cloneInclude()}
	}

	if cm.condensedSize() == 2 {
		return t.calcBaseCase(g, cm)
	}

	zeros := cm.findZerosAndPenalties()
	if len(zeros) == 0 {
		// reduceMatrix guarantees every available row/column has a zero
		// after reduction; an empty zero set here is a programmer error.
		panic(ErrImplementation)
	}

	// A single forced-include zero is reported by findZerosAndPenalties as
	// exactly one element with infinitePenalty set; commit it without an
	// exclude sibling.
	if len(zeros) == 1 && zeros[0].infinitePenalty {
		t.nextEdge = zeros[0].edge
		t.hasNextEdge = true
		t.hasExcludeBranch = false
		return calcResult{}
	}

	best := zeros[0]
	for _, z := range zeros[1:] {
		if z.penalty > best.penalty {
			best = z
		}
	}
	t.nextEdge = best.edge
	t.hasNextEdge = true
	t.hasExcludeBranch = !best.infinitePenalty
	return calcResult{}
}

// calcBaseCase handles the condensedSize() == 2 case: the two remaining
// available rows and columns admit exactly one consistent pair of edges
// (possibly forced by an infinite alternative), which is committed directly
// rather than branched on.
func (t *TreeNode) calcBaseCase(g graph.Graph, cm *costMatrix) calcResult {
	zeros := cm.findZerosAndPenalties()

	// Prefer a zero with an infinite alternative on either side: its row or
	// column partner is forced to be the OTHER zero.
	var chosen *zeroPenalty
	for i := range zeros {
		if zeros[i].infinitePenalty {
			chosen = &zeros[i]
			break
		}
	}
	if chosen == nil && len(zeros) > 0 {
		chosen = &zeros[0]
	}
	if chosen == nil {
		panic(ErrImplementation)
	}

	t.addInclude(chosen.edge)

	// The complementary edge must use the one remaining available row and
	// column: the row that is not chosen.edge.U and the column that is not
	// chosen.edge.V, among the two condensed rows/columns.
	var otherRow, otherCol int = -1, -1
	for _, r := range cm.rowOf {
		if r != chosen.edge.U {
			otherRow = r
		}
	}
	for _, c := range cm.colOf {
		if c != chosen.edge.V {
			otherCol = c
		}
	}
	if otherRow == -1 || otherCol == -1 {
		panic(ErrImplementation)
	}
	t.addInclude(graph.Edge{U: otherRow, V: otherCol})

	// Recompute the lower bound as the exact tour length now that every
	// edge is committed.
	t.lowerBound = t.includeWeight(g)

	return calcResult{complete: true, completed: t.cloneInclude()}
}
