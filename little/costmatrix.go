package little

import "github.com/karepker/little-tsp/graph"

// costMatrix is a derived, per-node view over a Graph: it applies the node's
// exclude bit matrix, tracks per-row/per-column additive reductions, and
// condenses away rows/columns already consumed by include edges. It borrows
// the owning TreeNode's exclude matrix for the duration of a single
// CalcLBAndNextEdge call and must not outlive that call.
type costMatrix struct {
	g       graph.Graph
	exclude [][]bool

	// rowOf/colOf map condensed index -> actual vertex index, skipping rows
	// whose vertex is already an include source and columns whose vertex is
	// already an include target.
	rowOf, colOf []int

	// reduction vectors are indexed by ACTUAL vertex index (length n), not
	// condensed index, so operator-style lookups need no translation.
	rowReduction, colReduction []int
}

// newCostMatrix builds the condensed index mapping and zeroes the reduction
// vectors. include is the node's committed edge list; exclude is borrowed,
// not copied.
func newCostMatrix(g graph.Graph, include []graph.Edge, exclude [][]bool) *costMatrix {
	n := g.NumVertices()
	rowAvailable := make([]bool, n)
	colAvailable := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		rowAvailable[i] = true
		colAvailable[i] = true
	}
	for _, e := range include {
		rowAvailable[e.U] = false
		colAvailable[e.V] = false
	}

	cm := &costMatrix{
		g:            g,
		exclude:      exclude,
		rowReduction: make([]int, n),
		colReduction: make([]int, n),
	}
	for i = 0; i < n; i++ {
		if rowAvailable[i] {
			cm.rowOf = append(cm.rowOf, i)
		}
		if colAvailable[i] {
			cm.colOf = append(cm.colOf, i)
		}
	}

	return cm
}

// condensedSize returns k = n - |include|, the dimension of the condensed
// matrix (equal for rows and columns since every include consumes exactly
// one row and one column).
func (cm *costMatrix) condensedSize() int { return len(cm.rowOf) }

// at returns the reduced EdgeCost at actual indices (i, j): infinite if
// excluded, otherwise weight(i,j) - rowReduction[i] - colReduction[j].
func (cm *costMatrix) at(i, j int) graph.EdgeCost {
	if cm.exclude[i][j] {
		return graph.Infinite()
	}
	return graph.Finite(cm.g.Weight(i, j)).Sub(graph.Finite(cm.rowReduction[i])).Sub(graph.Finite(cm.colReduction[j]))
}

// reduceMatrix performs one canonical reduction pass: row minima first, then
// column minima over the row-reduced matrix. Returns the total subtracted,
// or infinite if any available row or column has no finite entry (the node
// is dead).
func (cm *costMatrix) reduceMatrix() graph.EdgeCost {
	total := graph.Finite(0)

	var ci, cj, actualRow, actualCol int
	for ci = 0; ci < cm.condensedSize(); ci++ {
		actualRow = cm.rowOf[ci]
		min := graph.Infinite()
		for cj = 0; cj < cm.condensedSize(); cj++ {
			v := cm.at(actualRow, cm.colOf[cj])
			if v.Less(min) {
				min = v
			}
		}
		if min.IsInfinite() {
			return graph.Infinite()
		}
		cm.rowReduction[actualRow] = min.Value()
		total = total.Add(min)
	}

	for cj = 0; cj < cm.condensedSize(); cj++ {
		actualCol = cm.colOf[cj]
		min := graph.Infinite()
		for ci = 0; ci < cm.condensedSize(); ci++ {
			v := cm.at(cm.rowOf[ci], actualCol)
			if v.Less(min) {
				min = v
			}
		}
		if min.IsInfinite() {
			return graph.Infinite()
		}
		cm.colReduction[actualCol] = min.Value()
		total = total.Add(min)
	}

	return total
}

// zeroPenalty pairs a zero-cost edge with its penalty: the cost of the best
// alternative if this edge were excluded. An infinitePenalty edge must be
// included (excluding it would strand a row or column with no alternative).
type zeroPenalty struct {
	edge            graph.Edge
	penalty         int
	infinitePenalty bool
}

// twoSmallest tracks the two smallest EdgeCost values seen for a row or
// column, each paired with the column/row index that produced it so the
// "excluding this exact cell" penalty can skip its own contribution.
type twoSmallest struct {
	firstVal, secondVal graph.EdgeCost
	firstIdx, secondIdx int
}

func newTwoSmallest() twoSmallest {
	return twoSmallest{firstVal: graph.Infinite(), secondVal: graph.Infinite(), firstIdx: -1, secondIdx: -1}
}

// update folds in a candidate value observed at the given cross index (the
// column index for a row's tracker, or the row index for a column's).
func (ts *twoSmallest) update(val graph.EdgeCost, crossIdx int) {
	if val.Less(ts.firstVal) {
		ts.secondVal, ts.secondIdx = ts.firstVal, ts.firstIdx
		ts.firstVal, ts.firstIdx = val, crossIdx
	} else if val.Less(ts.secondVal) {
		ts.secondVal, ts.secondIdx = val, crossIdx
	}
}

// penalty returns the smallest tracked value that did NOT come from
// crossIdx: the cost of the best alternative exit/entry other than the zero
// cell itself.
func (ts *twoSmallest) penalty(crossIdx int) graph.EdgeCost {
	if ts.firstIdx != crossIdx {
		return ts.firstVal
	}
	return ts.secondVal
}

// findZerosAndPenalties performs a single pass over the reduced, available
// cells, tracking the two smallest values per row and per column, and
// returns the zero-cost cells annotated with their penalties.
//
// When condensedSize() == 2 (the base case), every zero's penalty is reported
// as either 0 (finite) or infinite rather than a numeric sum; the caller
// (calcBaseCase) only needs to know which zero, if any, is forced.
func (cm *costMatrix) findZerosAndPenalties() []zeroPenalty {
	n := cm.condensedSize()
	rowBest := make([]twoSmallest, len(cm.rowOf))
	colBest := make([]twoSmallest, len(cm.colOf))
	var ci int
	for ci = range rowBest {
		rowBest[ci] = newTwoSmallest()
	}
	for ci = range colBest {
		colBest[ci] = newTwoSmallest()
	}

	type zeroCell struct{ ci, cj, actualRow, actualCol int }
	var zeros []zeroCell

	var cj int
	for ci = 0; ci < n; ci++ {
		actualRow := cm.rowOf[ci]
		for cj = 0; cj < n; cj++ {
			actualCol := cm.colOf[cj]
			v := cm.at(actualRow, actualCol)
			rowBest[ci].update(v, cj)
			colBest[cj].update(v, ci)
			if !v.IsInfinite() && v.Value() == 0 {
				zeros = append(zeros, zeroCell{ci: ci, cj: cj, actualRow: actualRow, actualCol: actualCol})
			}
		}
	}

	out := make([]zeroPenalty, 0, len(zeros))
	for _, z := range zeros {
		rowPenalty := rowBest[z.ci].penalty(z.cj)
		colPenalty := colBest[z.cj].penalty(z.ci)

		if n == 2 {
			infinitePenalty := rowPenalty.IsInfinite() || colPenalty.IsInfinite()
			out = append(out, zeroPenalty{
				edge:            graph.Edge{U: z.actualRow, V: z.actualCol},
				penalty:         0,
				infinitePenalty: infinitePenalty,
			})
			continue
		}

		// Exactly one side unable to offer an alternative: excluding this
		// edge would disconnect the residual graph, so it must be included.
		// Note this is exclusive-or, not OR: if both sides are infinite the
		// edge is merely one of several dead ends, not uniquely forced.
		if rowPenalty.IsInfinite() != colPenalty.IsInfinite() {
			return []zeroPenalty{{edge: graph.Edge{U: z.actualRow, V: z.actualCol}, infinitePenalty: true}}
		}

		penalty := 0
		infinitePenalty := rowPenalty.IsInfinite() && colPenalty.IsInfinite()
		if !infinitePenalty {
			penalty = rowPenalty.Value() + colPenalty.Value()
		}
		out = append(out, zeroPenalty{
			edge:            graph.Edge{U: z.actualRow, V: z.actualCol},
			penalty:         penalty,
			infinitePenalty: infinitePenalty,
		})
	}

	return out
}
