package solver

import (
	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
	"sudoku-engine/pkg/constants"
)

// rng is a small linear congruential generator used for deterministic,
// seed-reproducible puzzle generation, ported from the teacher's
// internal/sudoku/dp/solver.go rng (no third-party PRNG appears
// anywhere in the example pack, and a from-scratch LCG is exactly what
// the teacher reaches for here, so this is carried over rather than
// switched to math/rand).
type rng struct {
	state int64
}

func newRNG(seed int64) *rng {
	return &rng{state: seed}
}

func (r *rng) next() int {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return int(r.state)
}

func (r *rng) shuffle(arr []int) {
	for i := len(arr) - 1; i > 0; i-- {
		j := r.next() % (i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// GenerateFullGrid returns a complete, randomly-filled valid 9x9 grid
// for the given seed, via randomized backtracking (teacher's
// GenerateFullGrid/fillGrid).
func GenerateFullGrid(seed int64) []int {
	grid := make([]int, core.TotalCells)
	fillGrid(grid, newRNG(seed))
	return grid
}

func fillGrid(grid []int, r *rng) bool {
	idx := -1
	for i, v := range grid {
		if v == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}

	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.shuffle(digits)

	p := core.PositionFromIndex(idx)
	for _, d := range digits {
		if gridCanPlace(grid, p, d) {
			grid[idx] = d
			if fillGrid(grid, r) {
				return true
			}
			grid[idx] = 0
		}
	}
	return false
}

func gridCanPlace(grid []int, p core.Position, digit int) bool {
	for i, v := range grid {
		if v != digit {
			continue
		}
		if core.PositionFromIndex(i).SharesHouse(p) {
			return false
		}
	}
	return true
}

// CarveGivens removes cells from a complete grid one at a time, in a
// seeded random order, stopping once targetGivens remain. A removal
// that would destroy the puzzle's unique solution is undone and that
// cell is kept as a given, so fewer cells than requested may be removed
// once every position has been tried (teacher's CarveGivens; uniqueness
// is checked with countSolutions, an MRV search capped at two
// solutions). targetGivens is clamped to
// constants.MinGivens: below that floor no 9x9 Sudoku can have a unique
// solution, so carving further would be pointless.
func CarveGivens(full []int, targetGivens int, seed int64) []int {
	if targetGivens < constants.MinGivens {
		targetGivens = constants.MinGivens
	}

	puzzle := make([]int, len(full))
	copy(puzzle, full)

	r := newRNG(seed + 1)
	positions := make([]int, len(full))
	for i := range positions {
		positions[i] = i
	}
	r.shuffle(positions)

	target := len(full) - targetGivens
	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		old := puzzle[pos]
		puzzle[pos] = 0
		if hasUniqueSolution(puzzle) {
			removed++
		} else {
			puzzle[pos] = old
		}
	}
	return puzzle
}

func hasUniqueSolution(givens []int) bool {
	b, err := board.NewSudoku(givens)
	if err != nil {
		return false
	}
	count := countSolutions(b, 2)
	return count == 1
}

func countSolutions(b *board.Sudoku, limit int) int {
	if b.HasContradiction() {
		return 0
	}
	if b.IsSolved() {
		return 1
	}
	p, ok := nextMRVCell(b)
	if !ok {
		return 0
	}

	total := 0
	for _, d := range b.At(p).Candidates().ToSlice() {
		trial := b.Clone()
		trial.SetSolved(p, d)
		total += countSolutions(trial, limit-total)
		if total >= limit {
			return total
		}
	}
	return total
}

// Classify runs the step driver (Solver.Steps) against givens and
// reports the difficulty implied by the hardest technique required to
// finish it, or "expert" if propagation stalls and the driver's
// backtracking fallback is needed at all. Mirrors the teacher's
// AnalyzePuzzleDifficulty, generalized to this package's seven fixed
// techniques instead of its pedagogical tier registry.
func Classify(givens []int) (string, error) {
	b, err := board.NewSudoku(givens)
	if err != nil {
		return "", err
	}

	s := New()
	hardest := "easy"
	for step, stepErr := range s.Steps(b) {
		if stepErr != nil {
			return "", stepErr
		}
		if tier := techniqueTier(step.Technique); tierRank(tier) > tierRank(hardest) {
			hardest = tier
		}
		if step.Technique == core.TechniqueBacktrack {
			return "expert", nil
		}
	}
	return hardest, nil
}

func techniqueTier(technique string) string {
	switch technique {
	case core.TechniqueBulkPencilMarking, core.TechniqueLoneSingle, core.TechniqueHiddenSingle:
		return "easy"
	case core.TechniqueNakedPair, core.TechniqueNakedTriplet, core.TechniqueLockedCandidate:
		return "medium"
	case core.TechniqueXYWing:
		return "hard"
	case core.TechniqueUniqueRectangle, core.TechniqueBacktrack:
		return "expert"
	default:
		return "easy"
	}
}

func tierRank(tier string) int {
	switch tier {
	case "easy":
		return 0
	case "medium":
		return 1
	case "hard":
		return 2
	case "expert":
		return 3
	default:
		return 0
	}
}
