// Package board implements the 81-cell Sudoku board: house membership,
// the shared-house Intersection query, and the invariant-preserving
// mutation every technique result is applied through. Grounded in the
// teacher's internal/sudoku/human/grid.go peer precomputation, adapted
// from flat cell indices to core.Position values.
package board

import "sudoku-engine/internal/core"

// HouseKind distinguishes a row, column, or box unit.
type HouseKind int

const (
	HouseRow HouseKind = iota
	HouseCol
	HouseBox
)

func (k HouseKind) String() string {
	switch k {
	case HouseRow:
		return "row"
	case HouseCol:
		return "column"
	case HouseBox:
		return "box"
	default:
		return "house"
	}
}

// Unit is one row, column, or box: nine cells that must together hold
// every digit 1-9 exactly once.
type Unit struct {
	Kind  HouseKind
	Index int
	Cells [core.GridSize]core.Position
}

// houses holds all 27 units, built once at package init. Determinism
// (spec.md §5) requires rows 0..8 then columns 0..8 then boxes 0..8,
// each visited in position order; Houses() preserves that order.
var houses [3 * core.GridSize]Unit

// housesByPosition maps a cell index to the three unit indices (into
// houses) it belongs to, in the same row/column/box order.
var housesByPosition [core.TotalCells][3]int

func init() {
	n := core.GridSize
	for r := 0; r < n; r++ {
		var cells [core.GridSize]core.Position
		for c := 0; c < n; c++ {
			cells[c] = core.NewPosition(r, c)
		}
		houses[r] = Unit{Kind: HouseRow, Index: r, Cells: cells}
	}
	for c := 0; c < n; c++ {
		var cells [core.GridSize]core.Position
		for r := 0; r < n; r++ {
			cells[r] = core.NewPosition(r, c)
		}
		houses[n+c] = Unit{Kind: HouseCol, Index: c, Cells: cells}
	}
	for b := 0; b < n; b++ {
		boxRow, boxCol := (b/core.BoxSize)*core.BoxSize, (b%core.BoxSize)*core.BoxSize
		var cells [core.GridSize]core.Position
		i := 0
		for r := boxRow; r < boxRow+core.BoxSize; r++ {
			for c := boxCol; c < boxCol+core.BoxSize; c++ {
				cells[i] = core.NewPosition(r, c)
				i++
			}
		}
		houses[2*n+b] = Unit{Kind: HouseBox, Index: b, Cells: cells}
	}

	for idx := 0; idx < core.TotalCells; idx++ {
		p := core.PositionFromIndex(idx)
		housesByPosition[idx] = [3]int{p.Row, n + p.Col, 2*n + p.Box}
	}
}

// Houses returns all 27 units in the deterministic scan order required
// by spec.md §5: rows 0..8, then columns 0..8, then boxes 0..8.
func Houses() []Unit {
	out := make([]Unit, len(houses))
	copy(out, houses[:])
	return out
}

// HousesOf returns the row, column, and box unit containing p, in that
// order.
func HousesOf(p core.Position) [3]Unit {
	idxs := housesByPosition[p.Index()]
	return [3]Unit{houses[idxs[0]], houses[idxs[1]], houses[idxs[2]]}
}
