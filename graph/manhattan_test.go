// Package graph_test validates EdgeCost arithmetic/ordering and the
// Manhattan graph's distance computation.
package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karepker/little-tsp/graph"
)

func TestEdgeCost_Algebra(t *testing.T) {
	five := graph.Finite(5)
	assert.False(t, five.IsInfinite())
	assert.Equal(t, 5, five.Value())

	assert.Equal(t, graph.Finite(0), five.Sub(five))
	assert.True(t, graph.Infinite().Add(five).IsInfinite())
	assert.True(t, five.Add(graph.Infinite()).IsInfinite())
	assert.True(t, graph.Infinite().Sub(five).IsInfinite())

	assert.True(t, graph.Finite(3).Less(graph.Finite(4)))
	assert.False(t, graph.Finite(4).Less(graph.Finite(4)))
	assert.True(t, graph.Finite(4).Less(graph.Infinite()))
	assert.False(t, graph.Infinite().Less(graph.Finite(4)))
	assert.False(t, graph.Infinite().Less(graph.Infinite()))
}

func TestEdgeCost_Value_PanicsOnInfinite(t *testing.T) {
	assert.PanicsWithValue(t, graph.ErrImplementation, func() {
		graph.Infinite().Value()
	})
}

func TestEdgeCost_Sub_PanicsWhenSubtractingInfiniteFromFinite(t *testing.T) {
	assert.PanicsWithValue(t, graph.ErrImplementation, func() {
		graph.Finite(3).Sub(graph.Infinite())
	})
}

func TestManhattan_NewManhattan_RejectsEmpty(t *testing.T) {
	_, err := graph.NewManhattan(nil)
	assert.True(t, errors.Is(err, graph.ErrBadCoordinates))
}

func TestManhattan_Weight_Square(t *testing.T) {
	m, err := graph.NewManhattan([]graph.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVertices())

	assert.Equal(t, 0, m.Weight(0, 0))
	assert.Equal(t, 2, m.Weight(0, 1))
	assert.Equal(t, 4, m.Weight(0, 2))
	assert.Equal(t, 2, m.Weight(0, 3))

	// symmetric
	var i, j int
	for i = 0; i < m.NumVertices(); i++ {
		for j = 0; j < m.NumVertices(); j++ {
			assert.Equal(t, m.Weight(i, j), m.Weight(j, i))
		}
	}
}

func TestManhattan_Weight_OutOfRangePanics(t *testing.T) {
	m, err := graph.NewManhattan([]graph.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	assert.PanicsWithValue(t, graph.ErrVertexOutOfRange, func() {
		m.Weight(5, 0)
	})
}

func TestManhattan_Point(t *testing.T) {
	m, err := graph.NewManhattan([]graph.Point{{X: 3, Y: 4}})
	require.NoError(t, err)
	assert.Equal(t, graph.Point{X: 3, Y: 4}, m.Point(0))
}
