package techniques

import (
	"iter"
	"sort"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// UniqueRectangle finds four cells forming a rectangle (two rows, two
// columns) where three corners are bivalue Pencil cells sharing the
// same two candidates and exactly one pair of those three shares a box,
// and the fourth corner also carries that pair among extra candidates.
// Since a valid Sudoku has a unique solution, that fourth corner cannot
// also be restricted to just the shared pair — doing so would make the
// rectangle's two solutions interchangeable — so the shared pair can be
// eliminated from it (spec.md §4.7, the Type-1 Unique Rectangle).
//
// Ported from dokusan.techniques.UniqueRectangle. One deliberate
// change: the Python original selects which corner to narrow by
// iterating corner pairs and returning the first one with a non-empty
// candidate difference, an order that depends on Python set iteration
// and is not guaranteed stable. spec.md §5 requires determinism, so
// this instead explicitly locates the one corner with more than two
// candidates and narrows exactly that one.
type UniqueRectangle struct{}

func (UniqueRectangle) Name() string { return core.TechniqueUniqueRectangle }

func (UniqueRectangle) Find(b *board.Sudoku) iter.Seq[core.Result] {
	return func(yield func(core.Result) bool) {
		var bivalue []core.Position
		for idx := 0; idx < core.TotalCells; idx++ {
			p := core.PositionFromIndex(idx)
			cell := b.At(p)
			if cell.IsPencil() && cell.Candidates().Count() == 2 {
				bivalue = append(bivalue, p)
			}
		}

		n := len(bivalue)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for k := j + 1; k < n; k++ {
					edges := [3]core.Position{bivalue[i], bivalue[j], bivalue[k]}
					if !isEdges(b, edges) {
						continue
					}

					corners, ok := rectangleCorners(edges)
					if !ok {
						continue
					}
					if !isRect(b, corners) {
						continue
					}

					changed, pair, ok := uniqueRectangleElimination(b, corners)
					if !ok {
						continue
					}

					if !yield(core.Result{
						Positions:    append([]core.Position{}, corners[:]...),
						Values:       pair.ToSlice(),
						ChangedCells: changed,
					}) {
						return
					}
				}
			}
		}
	}
}

// isEdges reports whether three bivalue marks all share the same two
// candidates and exactly one pair among them shares a box.
func isEdges(b *board.Sudoku, marks [3]core.Position) bool {
	shared := b.At(marks[0]).Candidates()
	for _, m := range marks[1:] {
		shared = shared.Intersect(b.At(m).Candidates())
	}
	if shared.Count() != 2 {
		return false
	}

	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	boxSharing := 0
	for _, pr := range pairs {
		if marks[pr[0]].SameBox(marks[pr[1]]) {
			boxSharing++
		}
	}
	return boxSharing == 1
}

// rectangleCorners derives the four rectangle corners from three edge
// positions: the distinct rows and distinct columns among them must
// each number exactly two, else no rectangle exists.
func rectangleCorners(edges [3]core.Position) ([4]core.Position, bool) {
	rowSet := map[int]bool{}
	colSet := map[int]bool{}
	for _, e := range edges {
		rowSet[e.Row] = true
		colSet[e.Col] = true
	}
	if len(rowSet) != 2 || len(colSet) != 2 {
		return [4]core.Position{}, false
	}

	var rows, cols []int
	for r := range rowSet {
		rows = append(rows, r)
	}
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Ints(rows)
	sort.Ints(cols)

	return [4]core.Position{
		core.NewPosition(rows[0], cols[0]),
		core.NewPosition(rows[0], cols[1]),
		core.NewPosition(rows[1], cols[0]),
		core.NewPosition(rows[1], cols[1]),
	}, true
}

// isRect reports whether all four corners are still Pencil cells
// (none solved) and their candidates still intersect to exactly the
// shared two-digit pair.
func isRect(b *board.Sudoku, corners [4]core.Position) bool {
	shared := core.FullCandidates()
	for _, c := range corners {
		cell := b.At(c)
		if !cell.IsPencil() {
			return false
		}
		shared = shared.Intersect(cell.Candidates())
	}
	return shared.Count() == 2
}

// uniqueRectangleElimination locates the one corner carrying more than
// the shared pair and removes the pair from it, leaving its other
// candidates — breaking the deadly pattern rather than completing it.
// If all four corners are already exactly the pair, there is nothing
// to eliminate.
func uniqueRectangleElimination(b *board.Sudoku, corners [4]core.Position) ([]core.CellChange, core.Candidates, bool) {
	pair := core.FullCandidates()
	for _, c := range corners {
		pair = pair.Intersect(b.At(c).Candidates())
	}

	for _, c := range corners {
		cands := b.At(c).Candidates()
		if cands.Count() > pair.Count() {
			return []core.CellChange{{Position: c, State: core.Pencil(cands.Subtract(pair))}}, pair, true
		}
	}
	return nil, pair, false
}
