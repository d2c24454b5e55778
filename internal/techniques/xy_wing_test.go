package techniques

import (
	"testing"

	"sudoku-engine/internal/core"
)

// TestXYWingSanity is spec.md §8 scenario 6: a pivot holding {1,2} and
// two wings holding {1,3} and {2,3}, positioned so exactly one cell
// lies in the intersection of both wings and contains 3 — that cell's
// 3 must be eliminated.
func TestXYWingSanity(t *testing.T) {
	b := emptyBoard(t)

	pivot := core.NewPosition(0, 0)  // box 0, row 0
	wingA := core.NewPosition(0, 4)  // shares a row with pivot, box 1
	wingB := core.NewPosition(4, 0)  // shares a column with pivot, box 3
	victim := core.NewPosition(4, 4) // shares a column with wingA, a row with wingB

	changes := []core.CellChange{
		{Position: pivot, State: core.Pencil(core.NewCandidates([]int{1, 2}))},
		{Position: wingA, State: core.Pencil(core.NewCandidates([]int{1, 3}))},
		{Position: wingB, State: core.Pencil(core.NewCandidates([]int{2, 3}))},
		{Position: victim, State: core.Pencil(core.NewCandidates([]int{3, 4, 5}))},
	}
	b.Apply(changes)

	r, err := First(XYWing{}, b)
	if err != nil {
		t.Fatalf("expected an XY-Wing result, got error: %v", err)
	}

	out := b.Clone()
	out.Apply(r.ChangedCells)

	got := out.At(victim).Candidates()
	if got.Has(3) {
		t.Fatalf("expected 3 to be eliminated from the victim cell, got %v", got)
	}
	if !got.Has(4) || !got.Has(5) {
		t.Fatalf("expected the victim's other candidates to survive, got %v", got)
	}
}
