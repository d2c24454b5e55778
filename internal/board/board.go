package board

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// Sudoku is the 81-cell board: exactly one CellState per Position
// (spec.md §3 invariant 1), indexed by flat cell index.
type Sudoku struct {
	cells [core.TotalCells]core.CellState
}

// NewSudoku builds a Sudoku from a 9x9 row-major grid of givens (0 =
// empty, 1-9 = given digit) and computes the initial pencilmarks for
// every empty cell ("Bulk Pencil Marking", spec.md §3 lifecycle).
// Invalid input — wrong length, out-of-range values, or duplicate
// givens sharing a house — is rejected here rather than during solving
// (spec.md §6, §7).
func NewSudoku(givens []int) (*Sudoku, error) {
	if len(givens) != core.TotalCells {
		return nil, fmt.Errorf("sudoku: expected %d givens, got %d", core.TotalCells, len(givens))
	}
	for i, v := range givens {
		if v < 0 || v > core.GridSize {
			return nil, fmt.Errorf("sudoku: given at index %d out of range [0,%d]: %d", i, core.GridSize, v)
		}
	}

	s := &Sudoku{}
	for i, v := range givens {
		if v != 0 {
			s.cells[i] = core.Solved(v)
		} else {
			s.cells[i] = core.Pencil(0)
		}
	}

	for _, unit := range Houses() {
		seen := map[int]core.Position{}
		for _, p := range unit.Cells {
			cell := s.cells[p.Index()]
			if !cell.IsSolved() {
				continue
			}
			if other, dup := seen[cell.Value()]; dup {
				return nil, fmt.Errorf("sudoku: duplicate given %d in %s %d at %s and %s",
					cell.Value(), unit.Kind, unit.Index+1, other, p)
			}
			seen[cell.Value()] = p
		}
	}

	s.bulkPencilMark()
	return s, nil
}

// bulkPencilMark fills every empty cell's candidate set with {1..9}
// minus whatever is forbidden by its row, column, and box (spec.md §3,
// "the initial pencilmark pass").
func (s *Sudoku) bulkPencilMark() {
	for idx := 0; idx < core.TotalCells; idx++ {
		if s.cells[idx].IsSolved() {
			continue
		}
		p := core.PositionFromIndex(idx)
		var c core.Candidates
		for d := 1; d <= core.GridSize; d++ {
			if s.canPlace(p, d) {
				c = c.Set(d)
			}
		}
		s.cells[idx] = core.Pencil(c)
	}
}

// canPlace reports whether digit conflicts with no Solved cell sharing
// a house with p.
func (s *Sudoku) canPlace(p core.Position, digit int) bool {
	for _, unit := range HousesOf(p) {
		for _, c := range unit.Cells {
			cell := s.cells[c.Index()]
			if cell.IsSolved() && cell.Value() == digit {
				return false
			}
		}
	}
	return true
}

// At returns the CellState at p.
func (s *Sudoku) At(p core.Position) core.CellState {
	return s.cells[p.Index()]
}

// Cells iterates every (Position, CellState) pair in row-major order.
func (s *Sudoku) Cells() []core.CellChange {
	out := make([]core.CellChange, core.TotalCells)
	for idx := 0; idx < core.TotalCells; idx++ {
		out[idx] = core.CellChange{Position: core.PositionFromIndex(idx), State: s.cells[idx]}
	}
	return out
}

// IsSolved reports whether every cell is Solved.
func (s *Sudoku) IsSolved() bool {
	for _, c := range s.cells {
		if !c.IsSolved() {
			return false
		}
	}
	return true
}

// HasContradiction reports whether any Pencil cell has no remaining
// candidates — the signal that the board has no completion (spec.md
// §7).
func (s *Sudoku) HasContradiction() bool {
	for _, c := range s.cells {
		if c.IsContradiction() {
			return true
		}
	}
	return false
}

// Clone returns a deep (value) copy of s.
func (s *Sudoku) Clone() *Sudoku {
	clone := *s
	return &clone
}

// Grid returns the board as a flat 81-int row-major slice, 0 for
// unsolved cells (spec.md §6 board output contract).
func (s *Sudoku) Grid() []int {
	out := make([]int, core.TotalCells)
	for idx, c := range s.cells {
		if c.IsSolved() {
			out[idx] = c.Value()
		}
	}
	return out
}

// Apply overwrites the board with a Result's ChangedCells, placing
// Solved cells and narrowing Pencil cells. This is the mutation path
// for technique results (the backtracker uses SetSolved instead), and
// it does not itself enforce invariants 2-4 (spec.md §3): assigning
// Solved(v) must already have propagated v out of
// every peer's candidates in the ChangedCells list, which is each
// technique's responsibility to compute.
func (s *Sudoku) Apply(changes []core.CellChange) {
	for _, ch := range changes {
		s.cells[ch.Position.Index()] = ch.State
	}
}

// SetSolved places digit at p and removes it from every peer's
// remaining candidates, propagating the placement to closure (spec.md
// §3 invariant 4). Used by the backtracker, which places tentative
// values directly rather than going through a technique Result.
func (s *Sudoku) SetSolved(p core.Position, digit int) {
	s.cells[p.Index()] = core.Solved(digit)
	for _, idx := range sortedPeerIndices(p) {
		cell := s.cells[idx]
		if cell.IsPencil() && cell.Candidates().Has(digit) {
			s.cells[idx] = core.Pencil(cell.Candidates().Clear(digit))
		}
	}
}

func sortedPeerIndices(p core.Position) []int {
	set := peers[p.Index()]
	out := make([]int, 0, len(set))
	for idx := 0; idx < core.TotalCells; idx++ {
		if set[idx] {
			out = append(out, idx)
		}
	}
	return out
}

// CellsWithCandidateCount returns the positions of every Pencil cell
// whose candidate set has exactly n members, in ascending index order.
// Used by the backtracker's MRV cell selection.
func (s *Sudoku) CellsWithCandidateCount(n int) []core.Position {
	var out []core.Position
	for idx, c := range s.cells {
		if c.IsPencil() && c.Candidates().Count() == n {
			out = append(out, core.PositionFromIndex(idx))
		}
	}
	return out
}
