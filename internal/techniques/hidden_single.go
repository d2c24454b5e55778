package techniques

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// HiddenSingle finds a house where a candidate digit appears in exactly
// one Pencil cell (spec.md §4.2). Grounded in the teacher's
// detectHiddenSingle / techniques.DetectHiddenSingle, generalized to a
// lazy multi-result stream over every house rather than the first
// match found. Digits are grouped in first-seen order while scanning
// the house's marks, matching dokusan.techniques.HiddenSingle's
// dict-insertion-order traversal rather than ascending digit order.
type HiddenSingle struct{}

func (HiddenSingle) Name() string { return core.TechniqueHiddenSingle }

func (HiddenSingle) Find(b *board.Sudoku) iter.Seq[core.Result] {
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
				if len(holders) != 1 {
					continue
				}
				if !yield(placeAndPropagate(b, holders[0], d)) {
					return
				}
			}
		}
	}
}
