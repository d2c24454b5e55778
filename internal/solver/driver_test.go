package solver

import (
	"errors"
	"testing"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// eliminateGiven and eliminateExpected are ported verbatim from the
// reference test_eliminate fixture: the given puzzle, and the non-zero
// cells of the board after eliminate reaches fixpoint (no backtracking
// required).
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

var eliminateExpected = []int{
	2, 0, 0, 5, 9, 3, 1, 0, 0,
	5, 0, 1, 0, 0, 2, 3, 0, 0,
	3, 9, 7, 6, 4, 1, 8, 2, 5,
	6, 0, 4, 0, 3, 8, 9, 0, 0,
	8, 1, 0, 0, 0, 0, 0, 3, 6,
	7, 3, 9, 0, 0, 6, 0, 0, 8,
	1, 7, 0, 3, 0, 4, 6, 0, 0,
	9, 0, 0, 0, 1, 5, 7, 4, 3,
	4, 0, 3, 0, 6, 0, 0, 0, 1,
}

func TestEliminate(t *testing.T) {
	b, err := board.NewSudoku(eliminateGiven)
	if err != nil {
		t.Fatalf("NewSudoku: %v", err)
	}

	out := New().Eliminate(b)
	got := out.Grid()

	for i, want := range eliminateExpected {
		if want == 0 {
			continue
		}
		if got[i] != want {
			t.Errorf("cell %d: got %d, want %d", i, got[i], want)
		}
	}
}

// backtrackGiven is the reference test_backtrack fixture: a puzzle
// deductive techniques alone cannot finish.
var backtrackGiven = []int{
	5, 3, 4, 0, 0, 8, 0, 1, 0,
	0, 0, 0, 0, 0, 2, 0, 9, 0,
	0, 0, 0, 0, 0, 7, 6, 0, 4,
	0, 0, 0, 5, 0, 0, 1, 0, 0,
	1, 0, 0, 0, 0, 0, 0, 0, 3,
	0, 0, 9, 0, 0, 1, 0, 0, 0,
	3, 0, 5, 4, 0, 0, 0, 0, 0,
	0, 8, 0, 2, 0, 0, 0, 0, 0,
	0, 6, 0, 7, 0, 0, 3, 8, 2,
}

func TestBacktrack(t *testing.T) {
	b, err := board.NewSudoku(backtrackGiven)
	if err != nil {
		t.Fatalf("NewSudoku: %v", err)
	}

	solved, ok := Backtrack(b)
	if !ok {
		t.Fatal("expected Backtrack to find a solution")
	}
	if !solved.IsSolved() {
		t.Fatal("expected the returned board to be fully solved")
	}
	if solved.HasContradiction() {
		t.Fatal("a solved board must not carry a contradiction")
	}
}

// expectedStepSequence is the reference test_steps fixture's exact
// technique-name trace for eliminateGiven.
func expectedStepSequence() []string {
	var seq []string
	seq = append(seq, core.TechniqueBulkPencilMarking)
	seq = append(seq, repeat(core.TechniqueLoneSingle, 8)...)
	seq = append(seq, repeat(core.TechniqueHiddenSingle, 7)...)
	seq = append(seq, core.TechniqueLoneSingle)
	seq = append(seq, core.TechniqueHiddenSingle)
	seq = append(seq, repeat(core.TechniqueNakedPair, 3)...)
	seq = append(seq, core.TechniqueLockedCandidate)
	seq = append(seq, core.TechniqueXYWing)
	seq = append(seq, repeat(core.TechniqueHiddenSingle, 2)...)
	seq = append(seq, core.TechniqueUniqueRectangle)
	seq = append(seq, core.TechniqueHiddenSingle)
	seq = append(seq, repeat(core.TechniqueLoneSingle, 2)...)
	seq = append(seq, core.TechniqueHiddenSingle)
	seq = append(seq, repeat(core.TechniqueLoneSingle, 28)...)
	return seq
}

func repeat(name string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = name
	}
	return out
}

func TestStepsSequence(t *testing.T) {
	b, err := board.NewSudoku(eliminateGiven)
	if err != nil {
		t.Fatalf("NewSudoku: %v", err)
	}

	var got []string
	s := New()
	for step, stepErr := range s.Steps(b) {
		if stepErr != nil {
			t.Fatalf("unexpected error mid-sequence: %v", stepErr)
		}
		got = append(got, step.Technique)
	}

	want := expectedStepSequence()
	if len(got) != len(want) {
		t.Fatalf("step count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// unsolvableGiven is the reference test_steps_raises_unsolvable
// fixture: a puzzle with a contradiction no completion can resolve.
var unsolvableGiven = []int{
	7, 0, 0, 0, 8, 2, 5, 0, 0,
	0, 5, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 9, 0, 7, 0, 2, 6,
	0, 0, 8, 0, 9, 0, 0, 7, 5,
	3, 0, 0, 6, 7, 5, 0, 0, 0,
	0, 0, 0, 0, 2, 0, 0, 9, 0,
	9, 0, 1, 0, 0, 3, 0, 0, 0,
	0, 0, 0, 0, 6, 0, 0, 0, 3,
	6, 0, 2, 0, 0, 0, 0, 0, 0,
}

func TestStepsRaisesUnsolvable(t *testing.T) {
	b, err := board.NewSudoku(unsolvableGiven)
	if err != nil {
		t.Fatalf("NewSudoku: %v", err)
	}

	var gotErr error
	s := New()
	for _, stepErr := range s.Steps(b) {
		if stepErr != nil {
			gotErr = stepErr
			break
		}
	}

	if !errors.Is(gotErr, core.ErrUnsolvable) {
		t.Fatalf("expected ErrUnsolvable, got %v", gotErr)
	}
}

func TestFullySolvedBoardYieldsNoSteps(t *testing.T) {
	full := GenerateFullGrid(1)
	b, err := board.NewSudoku(full)
	if err != nil {
		t.Fatalf("NewSudoku: %v", err)
	}

	count := 0
	for range New().Steps(b) {
		count++
	}
	if count != 0 {
		t.Fatalf("expected a fully solved board to yield no steps, got %d", count)
	}
}
