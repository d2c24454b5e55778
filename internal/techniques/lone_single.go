package techniques

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// LoneSingle finds a Pencil cell with exactly one remaining candidate
// (spec.md §4.1). Grounded in the teacher's detectNakedSingle /
// techniques.DetectNakedSingle, generalized to yield every such cell
// rather than stopping at the first.
type LoneSingle struct{}

func (LoneSingle) Name() string { return core.TechniqueLoneSingle }

func (LoneSingle) Find(b *board.Sudoku) iter.Seq[core.Result] {
	return func(yield func(core.Result) bool) {
		for idx := 0; idx < core.TotalCells; idx++ {
			p := core.PositionFromIndex(idx)
			cell := b.At(p)
			if !cell.IsPencil() {
				continue
			}
			v, ok := cell.Candidates().Only()
			if !ok {
				continue
			}
			if !yield(placeAndPropagate(b, p, v)) {
				return
			}
		}
	}
}

// placeAndPropagate builds the Result for solving p to v: a Solved(v)
// overwrite plus, for every Pencil peer that still carries v as a
// candidate, a narrowed replacement (spec.md §4.1, §3 invariant 4).
func placeAndPropagate(b *board.Sudoku, p core.Position, v int) core.Result {
	changed := []core.CellChange{{Position: p, State: core.Solved(v)}}
	for _, peer := range pencilMarks(b, board.Intersection(p)) {
		cands := b.At(peer).Candidates()
		if cands.Has(v) {
			changed = append(changed, core.CellChange{Position: peer, State: core.Pencil(cands.Clear(v))})
		}
	}
	return core.Result{
		Positions:    []core.Position{p},
		Values:       []int{v},
		ChangedCells: changed,
	}
}
