package techniques

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// LockedCandidate finds a house in which some digit's remaining
// candidates are confined to exactly two cells, letting that digit be
// eliminated from every other cell sharing a house with both of them
// (spec.md §4.5). This is the teacher's pointing-pair and box-line
// reduction detectors unified into dokusan.techniques.Omission's single
// house-agnostic rule: the elimination reaches outward through
// Intersection rather than being special-cased per row/column/box pair.
// Digits are grouped in first-seen order while scanning the house's
// marks, matching Omission's dict-insertion-order traversal rather than
// ascending digit order.
type LockedCandidate struct{}

func (LockedCandidate) Name() string { return core.TechniqueLockedCandidate }

func (LockedCandidate) Find(b *board.Sudoku) iter.Seq[core.Result] {
	return func(yield func(core.Result) bool) {
		for _, unit := range board.Houses() {
			groups := make(map[int][]core.Position)
			var order []int
			for _, p := range pencilMarks(b, unit.Cells[:]) {
				for _, d := range b.At(p).Candidates().ToSlice() {
					if _, seen := groups[d]; !seen {
						order = append(order, d)
					}
					groups[d] = append(groups[d], p)
				}
			}

			for _, d := range order {
				holders := groups[d]
				if len(holders) != 2 {
					continue
				}

				elim := core.NewCandidates([]int{d})
				changed := eliminateFrom(b, holders, elim)
				if len(changed) == 0 {
					continue
				}
				if !yield(core.Result{
					Positions:    append([]core.Position{}, holders...),
					Values:       []int{d},
					ChangedCells: changed,
				}) {
					return
				}
			}
		}
	}
}
