package techniques

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// NakedPair finds two Pencil cells in a house that share the exact same
// two-candidate set, letting that pair be eliminated from every other
// cell in the house (spec.md §4.3). Grounded in the teacher's
// techniques.DetectNakedPair and cross-checked against
// dokusan.techniques.NakedPair, including its "group by exact candidate
// set, regardless of size" structure before filtering to size-2 groups.
type NakedPair struct{}

func (NakedPair) Name() string { return core.TechniqueNakedPair }

func (NakedPair) Find(b *board.Sudoku) iter.Seq[core.Result] {
	return func(yield func(core.Result) bool) {
		for _, unit := range board.Houses() {
			groups := make(map[core.Candidates][]core.Position)
			var order []core.Candidates
			for _, p := range pencilMarks(b, unit.Cells[:]) {
				c := b.At(p).Candidates()
				if _, seen := groups[c]; !seen {
					order = append(order, c)
				}
				groups[c] = append(groups[c], p)
			}
			for _, cands := range order {
				marks := groups[cands]
				if cands.Count() != 2 || len(marks) != 2 {
					continue
				}
				changed := eliminateFrom(b, marks, cands)
				if len(changed) == 0 {
					continue
				}
				if !yield(core.Result{
					Positions:    append([]core.Position{}, marks...),
					Values:       cands.ToSlice(),
					ChangedCells: changed,
				}) {
					return
				}
			}
		}
	}
}

// eliminateFrom removes every candidate in elim from each Pencil cell
// that shares a house with every position in from, returning the
// resulting narrowed cells. Only cells that actually lose a candidate
// are included, matching dokusan's "if mark.candidates & eliminated"
// filter.
func eliminateFrom(b *board.Sudoku, from []core.Position, elim core.Candidates) []core.CellChange {
	var changed []core.CellChange
	for _, p := range pencilMarks(b, board.Intersection(from...)) {
		cands := b.At(p).Candidates()
		if cands.Intersect(elim).IsEmpty() {
			continue
		}
		changed = append(changed, core.CellChange{Position: p, State: core.Pencil(cands.Subtract(elim))})
	}
	return changed
}
