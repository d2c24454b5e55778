package solver

import (
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// Backtrack attempts to fully solve b by depth-first search, selecting
// at each step the Pencil cell with the fewest remaining candidates
// (minimum-remaining-values) and trying its candidates in ascending
// order, propagating each placement via board.SetSolved before
// recursing. It returns the solved board, or ok=false if b has no
// completion.
//
// Grounded in the teacher's internal/sudoku/dp/solver.go (index-order
// backtracking with no MRV), generalized with the explicit
// candidate-count cell ordering and bitmask propagation shown in
// wllclngn/Tests' adaptive solver reference (17A-adaptive-sudoku-solver.go).
func Backtrack(b *board.Sudoku) (*board.Sudoku, bool) {
	if b.HasContradiction() {
		return nil, false
	}
	if b.IsSolved() {
		return b, true
	}

	p, ok := nextMRVCell(b)
	if !ok {
		return nil, false
	}

	for _, d := range b.At(p).Candidates().ToSlice() {
		trial := b.Clone()
		trial.SetSolved(p, d)
		if solved, ok := Backtrack(trial); ok {
			return solved, true
		}
	}
	return nil, false
}

// nextMRVCell returns the Pencil cell with the fewest remaining
// candidates, the lowest-index cell breaking ties (spec.md §5
// determinism).
func nextMRVCell(b *board.Sudoku) (core.Position, bool) {
	for n := 1; n <= core.GridSize; n++ {
		if cells := b.CellsWithCandidateCount(n); len(cells) > 0 {
			return cells[0], true
		}
	}
	return core.Position{}, false
}
