// Package constants holds the small, shared magic numbers and labels
// that don't belong to any one package: puzzle generation targets,
// difficulty labels, and API version/port defaults. Trimmed from the
// teacher's pkg/constants/constants.go down to what this solver and
// its generator actually use.
package constants

// MinGivens is the fewest givens a generated puzzle may carry; below
// this a 9x9 Sudoku cannot have a unique solution.
const MinGivens = 17

// Difficulty labels, ordered easiest to hardest.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

// TargetGivens is the number of givens cmd/generate aims to leave on
// the board for each difficulty, mirroring the teacher's
// difficulty-by-given-count calibration.
var TargetGivens = map[string]int{
	DifficultyEasy:   40,
	DifficultyMedium: 32,
	DifficultyHard:   28,
	DifficultyExpert: 22,
}

// APIVersion is reported by the health endpoint.
const APIVersion = "0.1.0"

// DefaultPort is used when the PORT environment variable is unset.
const DefaultPort = "8080"
