package board

import (
	"testing"

	"sudoku-engine/internal/core"
)

var eliminateGiven = []int{
	0, 0, 0, 0, 9, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 2, 3, 0, 0,
	0, 0, 7, 0, 0, 1, 8, 2, 5,
	6, 0, 4, 0, 3, 8, 9, 0, 0,
	8, 1, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 9, 0, 0, 0, 0, 0, 8,
	1, 7, 0, 0, 0, 0, 6, 0, 0,
	9, 0, 0, 0, 1, 0, 7, 4, 3,
	4, 0, 3, 0, 6, 0, 0, 0, 1,
}

func TestNewSudokuRejectsWrongLength(t *testing.T) {
	if _, err := NewSudoku([]int{1, 2, 3}); err == nil {
		t.Fatal("expected an error for a short givens slice")
	}
}

func TestNewSudokuRejectsOutOfRange(t *testing.T) {
	givens := make([]int, core.TotalCells)
	givens[0] = 10
	if _, err := NewSudoku(givens); err == nil {
		t.Fatal("expected an error for an out-of-range given")
	}
}

func TestNewSudokuRejectsDuplicateGivens(t *testing.T) {
	givens := make([]int, core.TotalCells)
	givens[0] = 5
	givens[1] = 5
	if _, err := NewSudoku(givens); err == nil {
		t.Fatal("expected an error for two 5s sharing a row")
	}
}

func TestBulkPencilMarking(t *testing.T) {
	s, err := NewSudoku(eliminateGiven)
	if err != nil {
		t.Fatalf("NewSudoku: %v", err)
	}

	cell := s.At(core.NewPosition(0, 0))
	if !cell.IsPencil() {
		t.Fatal("expected R1C1 to be a Pencil cell")
	}
	if cell.Candidates().Has(9) {
		t.Fatal("R1C1 shares a row with the given 9 at R1C5, so 9 must not be a candidate")
	}
	if cell.Candidates().Has(1) {
		t.Fatal("R1C1 shares a row with the given 1 at R1C7, so 1 must not be a candidate")
	}
}

func TestIntersectionExcludesInputs(t *testing.T) {
	p := core.NewPosition(4, 4)
	for _, other := range Intersection(p) {
		if other == p {
			t.Fatal("Intersection must not include the queried position itself")
		}
	}
}

func TestIntersectionIsDeterministic(t *testing.T) {
	a := core.NewPosition(0, 0)
	b := core.NewPosition(0, 5)
	first := Intersection(a, b)
	second := Intersection(a, b)
	if len(first) != len(second) {
		t.Fatalf("Intersection results differ in length across calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Intersection is not deterministic at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s, err := NewSudoku(eliminateGiven)
	if err != nil {
		t.Fatalf("NewSudoku: %v", err)
	}
	clone := s.Clone()
	clone.SetSolved(core.NewPosition(0, 0), 2)

	if s.At(core.NewPosition(0, 0)).IsSolved() {
		t.Fatal("mutating a clone must not affect the original board")
	}
}
