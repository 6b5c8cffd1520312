package little

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karepker/little-tsp/graph"
)

func TestRoot_ExcludesDiagonal(t *testing.T) {
	root := Root(4)
	var i int
	for i = 0; i < 4; i++ {
		assert.True(t, root.exclude[i][i])
	}
}

func TestAddInclude_ForbidsPrematureClosure(t *testing.T) {
	root := Root(4)
	root.addInclude(graph.Edge{U: 0, V: 1})
	root.addInclude(graph.Edge{U: 1, V: 2})

	// The chain 0->1->2 must not be allowed to close back on itself before
	// vertex 3 is visited.
	assert.True(t, root.exclude[2][0])
}

func TestAddInclude_AllowsClosureOnFinalEdge(t *testing.T) {
	root := Root(3)
	root.addInclude(graph.Edge{U: 0, V: 1})
	root.addInclude(graph.Edge{U: 1, V: 2})

	// The chain 0->1->2 already spans all three vertices: no exclusion is
	// added, since 2->0 is the legitimate closing edge of a complete tour.
	assert.False(t, root.exclude[2][0])
}

func TestTSPPath_ReconstructsCycle(t *testing.T) {
	include := []graph.Edge{{U: 0, V: 2}, {U: 2, V: 1}, {U: 1, V: 0}}
	path := TSPPath(3, include)
	assert.Equal(t, []int{0, 2, 1}, path)
}

func TestTSPPath_PanicsOnIncompletePath(t *testing.T) {
	assert.Panics(t, func() {
		TSPPath(3, []graph.Edge{{U: 0, V: 1}})
	})
}

func TestCalcLBAndNextEdge_TriangleReachesCompleteTourAtBaseCase(t *testing.T) {
	g, err := graph.NewManhattan([]graph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, err)

	// The root's condensed matrix is 3x3, so it branches; its include child
	// is left with a 2x2 matrix, which is the base case.
	root := Root(3)
	root.CalcLBAndNextEdge(g)
	result := root.IncludeChild().CalcLBAndNextEdge(g)
	require.True(t, result.complete)
	require.Len(t, result.completed, 3)

	path := TSPPath(3, result.completed)
	assert.Equal(t, 4, tourLength(g, path))
}

func TestCalcLBAndNextEdge_SelectsBranchingEdgeOnLargerGraph(t *testing.T) {
	g, err := graph.NewManhattan([]graph.Point{
		{X: 0, Y: 0}, {X: 5, Y: 12}, {X: 20, Y: 3}, {X: 13, Y: 22}, {X: 27, Y: 9}, {X: 8, Y: 29},
	})
	require.NoError(t, err)

	root := Root(6)
	result := root.CalcLBAndNextEdge(g)
	require.False(t, result.dead)
	require.False(t, result.complete)
	assert.True(t, root.hasNextEdge)
	assert.NotEqual(t, root.nextEdge.U, root.nextEdge.V)
}

func TestIncludeExcludeChild_PanicsWithoutNextEdge(t *testing.T) {
	root := Root(4)
	assert.Panics(t, func() { root.IncludeChild() })
	assert.Panics(t, func() { root.ExcludeChild() })
}

func TestExcludeChild_ForbidsChosenEdgeWithoutTouchingParent(t *testing.T) {
	g, err := graph.NewManhattan([]graph.Point{
		{X: 0, Y: 0}, {X: 5, Y: 12}, {X: 20, Y: 3}, {X: 13, Y: 22}, {X: 27, Y: 9}, {X: 8, Y: 29},
	})
	require.NoError(t, err)

	root := Root(6)
	root.CalcLBAndNextEdge(g)
	chosen := root.nextEdge

	child := root.ExcludeChild()
	assert.True(t, child.exclude[chosen.U][chosen.V])
	assert.False(t, root.exclude[chosen.U][chosen.V], "parent node must be unaffected by child branching")
}
