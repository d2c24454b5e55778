package board

import "sudoku-engine/internal/core"

// peers[i] holds the set of cell indices sharing a row, column, or box
// with cell i (excluding i itself), precomputed once at init.
var peers [core.TotalCells]map[int]bool

func init() {
	for idx := 0; idx < core.TotalCells; idx++ {
		p := core.PositionFromIndex(idx)
		set := make(map[int]bool)
		for _, unit := range HousesOf(p) {
			for _, c := range unit.Cells {
				if c != p {
					set[c.Index()] = true
				}
			}
		}
		peers[idx] = set
	}
}

// Intersection returns the cells that share at least one house with
// every position in of, excluding the positions in of themselves. This
// is the single "share-any-house" primitive the Design Notes call for
// (spec.md §9): Intersection({p}) is p's peers; Intersection(a, b, ...)
// narrows that to cells visible from every one of the given positions.
// The result is returned in ascending cell-index order for determinism.
func Intersection(of ...core.Position) []core.Position {
	if len(of) == 0 {
		return nil
	}

	excluded := make(map[int]bool, len(of))
	for _, p := range of {
		excluded[p.Index()] = true
	}

	shared := peers[of[0].Index()]
	candidates := make(map[int]bool, len(shared))
	for idx := range shared {
		candidates[idx] = true
	}
	for _, p := range of[1:] {
		next := peers[p.Index()]
		for idx := range candidates {
			if !next[idx] {
				delete(candidates, idx)
			}
		}
	}

	out := make([]core.Position, 0, len(candidates))
	for idx := 0; idx < core.TotalCells; idx++ {
		if candidates[idx] && !excluded[idx] {
			out = append(out, core.PositionFromIndex(idx))
		}
	}
	return out
}
