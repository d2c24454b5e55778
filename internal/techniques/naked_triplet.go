package techniques

import (
	"iter"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
)

// NakedTriplet finds three Pencil cells in a house whose candidates
// together span only three digits, letting those digits be eliminated
// from every other cell in the house (spec.md §4.4). This ports
// dokusan.techniques.NakedTriplet's algorithm literally, including its
// quirk: marks are grouped by exact candidate-set signature regardless
// of size, a signature occurring 2 or 3 times is tried, and the triplet
// is every mark in the house whose candidates, unioned with that
// signature, still span fewer than 4 digits — only emitted when exactly
// three such marks exist. spec.md §4.4 flags this as "not a guess";
// it is preserved rather than replaced with a cleaner from-scratch
// triplet search.
type NakedTriplet struct{}

func (NakedTriplet) Name() string { return core.TechniqueNakedTriplet }

func (NakedTriplet) Find(b *board.Sudoku) iter.Seq[core.Result] {
	return func(yield func(core.Result) bool) {
		for _, unit := range board.Houses() {
			marks := pencilMarks(b, unit.Cells[:])

			counts := make(map[core.Candidates]int)
			var order []core.Candidates
			for _, p := range marks {
				c := b.At(p).Candidates()
				if counts[c] == 0 {
					order = append(order, c)
				}
				counts[c]++
			}

			for _, signature := range order {
				count := counts[signature]
				if count < 2 || count >= 4 {
					continue
				}

				var triplet []core.Position
				for _, p := range marks {
					if b.At(p).Candidates().Union(signature).Count() < 4 {
						triplet = append(triplet, p)
					}
				}
				if len(triplet) != 3 {
					continue
				}

				var union core.Candidates
				for _, p := range triplet {
					union = union.Union(b.At(p).Candidates())
				}

				changed := eliminateFrom(b, triplet, union)
				if len(changed) == 0 {
					continue
				}
				if !yield(core.Result{
					Positions:    append([]core.Position{}, triplet...),
					Values:       union.ToSlice(),
					ChangedCells: changed,
				}) {
					return
				}
			}
		}
	}
}
