package techniques

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// XYWing finds three bivalue (exactly two candidates) Pencil cells — a
// pivot and two wings — where the pivot shares a house with each wing,
// the wings share no house with each other, every pair shares exactly
// one candidate, and the three candidate sets together span exactly
// three digits. The digit common to the two wings can then be
// eliminated from any cell visible to both of them (spec.md §4.6).
// Ported from dokusan.techniques.XYWing and cross-checked against the
// teacher's detectXYWing (internal/sudoku/human/techniques_fish.go).
type XYWing struct{}

func (XYWing) Name() string { return core.TechniqueXYWing }

func (XYWing) Find(b *board.Sudoku) iter.Seq[core.Result] {
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
					triple := [3]core.Position{bivalue[i], bivalue[j], bivalue[k]}
					nonIntersecting, ok := isXYWing(b, triple)
					if !ok {
						continue
					}

					a, wb := nonIntersecting[0], nonIntersecting[1]
					shared := b.At(a).Candidates().Intersect(b.At(wb).Candidates())
					changed := eliminateFrom(b, []core.Position{a, wb}, shared)
					if len(changed) == 0 {
						continue
					}

					values := xyWingValues(b, triple)
					if !yield(core.Result{
						Positions:    []core.Position{triple[0], triple[1], triple[2]},
						Values:       values,
						ChangedCells: changed,
					}) {
						return
					}
				}
			}
		}
	}
}

// isXYWing reports whether the three given bivalue cells form a valid
// XY-Wing, and if so which pair is the non-intersecting "wings" pair
// (the pair the elimination reaches through).
func isXYWing(b *board.Sudoku, cells [3]core.Position) (nonIntersecting [2]core.Position, ok bool) {
	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}

	intersectCount := 0
	var nonIntersectingPair [2]int
	nonIntersectingFound := 0
	for _, pr := range pairs {
		a, bb := cells[pr[0]], cells[pr[1]]
		if a.SharesHouse(bb) {
			intersectCount++
		} else {
			nonIntersectingPair = pr
			nonIntersectingFound++
		}
	}
	if intersectCount != 2 || nonIntersectingFound != 1 {
		return nonIntersecting, false
	}

	var union core.Candidates
	for _, pr := range pairs {
		a, bb := cells[pr[0]], cells[pr[1]]
		shared := b.At(a).Candidates().Intersect(b.At(bb).Candidates())
		if shared.Count() != 1 {
			return nonIntersecting, false
		}
	}
	for _, p := range cells {
		union = union.Union(b.At(p).Candidates())
	}
	if union.Count() != 3 {
		return nonIntersecting, false
	}

	return [2]core.Position{cells[nonIntersectingPair[0]], cells[nonIntersectingPair[1]]}, true
}

// xyWingValues returns, for each non-intersecting pair among the three
// cells, the single candidate they share — matching dokusan's value
// list, which (for a valid XY-Wing) always has exactly one element: the
// shared digit of the wings pair.
func xyWingValues(b *board.Sudoku, cells [3]core.Position) []int {
	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	var values []int
	for _, pr := range pairs {
		a, bb := cells[pr[0]], cells[pr[1]]
		if a.SharesHouse(bb) {
			continue
		}
		shared := b.At(a).Candidates().Intersect(b.At(bb).Candidates())
		if d, ok := shared.Only(); ok {
			values = append(values, d)
		}
	}
	return values
}
