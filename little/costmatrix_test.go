package little

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karepker/little-tsp/graph"
)

// diagonalExclude returns an exclude matrix with only the self-loop
// diagonal forbidden, matching what Root builds.
func diagonalExclude(n int) [][]bool {
	out := make([][]bool, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = make([]bool, n)
		out[i][i] = true
	}
	return out
}

func TestCostMatrix_ReduceMatrix_Square(t *testing.T) {
	g, err := graph.NewManhattan([]graph.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	})
	require.NoError(t, err)

	cm := newCostMatrix(g, nil, diagonalExclude(4))
	total := cm.reduceMatrix()
	require.False(t, total.IsInfinite())

	// Every row and every column must now have at least one zero among
	// its available (non-diagonal) entries.
	var i, j int
	for i = 0; i < 4; i++ {
		hasZero := false
		for j = 0; j < 4; j++ {
			if i == j {
				continue
			}
			if v := cm.at(i, j); !v.IsInfinite() && v.Value() == 0 {
				hasZero = true
			}
		}
		assert.True(t, hasZero, "row %d has no zero after reduction", i)
	}
	for j = 0; j < 4; j++ {
		hasZero := false
		for i = 0; i < 4; i++ {
			if i == j {
				continue
			}
			if v := cm.at(i, j); !v.IsInfinite() && v.Value() == 0 {
				hasZero = true
			}
		}
		assert.True(t, hasZero, "column %d has no zero after reduction", j)
	}
}

func TestCostMatrix_NewCostMatrix_CondensesIncludedEdges(t *testing.T) {
	g, err := graph.NewManhattan([]graph.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
	})
	require.NoError(t, err)

	include := []graph.Edge{{U: 0, V: 1}}
	cm := newCostMatrix(g, include, diagonalExclude(4))
	assert.Equal(t, 3, cm.condensedSize())

	for _, r := range cm.rowOf {
		assert.NotEqual(t, 0, r)
	}
	for _, c := range cm.colOf {
		assert.NotEqual(t, 1, c)
	}
}

func TestCostMatrix_ReduceMatrix_DeadNodeIsInfinite(t *testing.T) {
	g, err := graph.NewManhattan([]graph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.NoError(t, err)

	exclude := diagonalExclude(2)
	exclude[0][1] = true
	exclude[1][0] = true
	cm := newCostMatrix(g, nil, exclude)
	assert.True(t, cm.reduceMatrix().IsInfinite())
}
