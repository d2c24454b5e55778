// Package techniques implements the seven deduction finders of spec.md
// §4: Lone Single, Hidden Single, Naked Pair, Naked Triplet, Locked
// Candidate (Omission), XY-Wing, and Unique Rectangle. Each is a lazy
// iterator over core.Result — grounded in the teacher's detector
// functions (internal/sudoku/human/techniques/*.go,
// internal/sudoku/human/techniques_*.go), generalized from the
// teacher's "first-match *core.Move" shape to spec.md's lazy
// multi-result stream, and cross-checked for exact edge-case behavior
// against the original Python implementation kept in original_source/.
package techniques

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// Technique finds zero or more Results in a Sudoku. Find must not
// eagerly materialize its results: the driver consumes at most one per
// solving cycle, and each Result is only valid against the board state
// at the moment it is produced (spec.md §4, §9 "Lazy Result streams").
type Technique interface {
	Name() string
	Find(b *board.Sudoku) iter.Seq[core.Result]
}

// First returns t's first Result, or core.ErrNotFound if it yields none
// (spec.md §4's first() accessor).
func First(t Technique, b *board.Sudoku) (core.Result, error) {
	for r := range t.Find(b) {
		return r, nil
	}
	return core.Result{}, core.ErrNotFound
}

// pencilMarks returns the positions among ps whose current state is
// Pencil, in the order given; callers read the state back with b.At.
// Solved cells are never technique targets for elimination.
func pencilMarks(b *board.Sudoku, ps []core.Position) []core.Position {
	out := make([]core.Position, 0, len(ps))
	for _, p := range ps {
		if b.At(p).IsPencil() {
			out = append(out, p)
		}
	}
	return out
}
