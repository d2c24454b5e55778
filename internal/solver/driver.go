// Package solver drives the seven techniques package finders in a
// fixed order and falls back to a constraint-propagating backtracker
// when none apply. Grounded in the teacher's Solver.FindNextMove /
// SolveWithSteps state machine (internal/sudoku/human/solver.go),
// generalized from the teacher's pedagogical tier/registry system to
// the fixed seven-technique order spec.md §4.8 requires.
package solver

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/techniques"
)

// Solver runs the ascending-cost technique order against a board.
type Solver struct {
	order []techniques.Technique
}

// New returns a Solver configured with the fixed technique order
// spec.md §4.8 names: Lone Single, Hidden Single, Naked Pair, Naked
// Triplet, Locked Candidate, XY-Wing, Unique Rectangle.
func New() *Solver {
	return &Solver{order: []techniques.Technique{
		techniques.LoneSingle{},
		techniques.HiddenSingle{},
		techniques.NakedPair{},
		techniques.NakedTriplet{},
		techniques.LockedCandidate{},
		techniques.XYWing{},
		techniques.UniqueRectangle{},
	}}
}

// Eliminate repeatedly applies the first Result from the first
// technique (in ascending-cost order) that yields one, restarting from
// the cheapest technique each cycle, until a full pass yields nothing —
// the board's fixpoint — and returns that board (spec.md §4.8). Unlike
// Steps, it discards the history of which technique fired when.
func (s *Solver) Eliminate(b *board.Sudoku) *board.Sudoku {
	out := b.Clone()
	for {
		applied := false
		for _, t := range s.order {
			r, err := techniques.First(t, out)
			if err != nil {
				continue
			}
			out.Apply(r.ChangedCells)
			applied = true
			break
		}
		if !applied {
			return out
		}
	}
}

// Steps repeatedly applies the first Result from the first applicable
// technique, yielding one core.Step per application, until the board
// is solved, no
// technique applies (at which point the MRV backtracker takes over),
// or a contradiction is detected (spec.md §4.8, §7). The first step
// yielded is always the initial "Bulk Pencil Marking" snapshot.
//
// Steps is a lazy iter.Seq2[core.Step, error]: the caller drives
// iteration, and an error (core.ErrUnsolvable) terminates the sequence
// without a further Step.
func (s *Solver) Steps(start *board.Sudoku) iter.Seq2[core.Step, error] {
	return func(yield func(core.Step, error) bool) {
		b := start.Clone()

		// spec.md §8 Boundary: a fully solved board yields an empty
		// step stream, not even a Bulk Pencil Marking step.
		if b.IsSolved() {
			return
		}

		if !yield(core.Step{
			Technique: core.TechniqueBulkPencilMarking,
			Result:    core.Result{ChangedCells: b.Cells()},
		}, nil) {
			return
		}

		for {
			if b.IsSolved() {
				return
			}
			if b.HasContradiction() {
				yield(core.Step{}, core.ErrUnsolvable)
				return
			}

			applied := false
			for _, t := range s.order {
				r, err := techniques.First(t, b)
				if err != nil {
					continue
				}
				b.Apply(r.ChangedCells)
				if !yield(core.Step{Technique: t.Name(), Result: r}, nil) {
					return
				}
				applied = true
				break
			}
			if applied {
				continue
			}

			guess, ok := Backtrack(b)
			if !ok {
				yield(core.Step{}, core.ErrUnsolvable)
				return
			}
			b = guess
			if !yield(core.Step{
				Technique: core.TechniqueBacktrack,
				Result:    core.Result{ChangedCells: b.Cells()},
			}, nil) {
				return
			}
		}
	}
}
