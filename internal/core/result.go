package core

// CellChange pairs a Position with the CellState it should be
// overwritten with. Result.ChangedCells is a list of these; applying
// them is how technique results mutate the board (spec.md §3
// lifecycle).
type CellChange struct {
	Position Position
	State    CellState
}

// Result is the record a technique emits for one finding: which
// positions were implicated, which digits the finding is about, and the
// exact cell overwrites applying it performs. Results are ephemeral and
// own no reference back into the board they were computed from (spec.md
// §3 ownership note).
type Result struct {
	Positions    []Position
	Values       []int
	ChangedCells []CellChange
}

// Step is a Result tagged with the human-readable technique name that
// produced it, as emitted by Solver.Steps (spec.md §4.8).
type Step struct {
	Technique string
	Result
}

// Technique name constants, used both as Step.Technique values and as
// registry keys. Keeping them as constants avoids typos propagating
// silently between the driver and its tests.
const (
	TechniqueBulkPencilMarking = "Bulk Pencil Marking"
	TechniqueLoneSingle        = "Lone Single"
	TechniqueHiddenSingle      = "Hidden Single"
	TechniqueNakedPair         = "Naked Pair"
	TechniqueNakedTriplet      = "Naked Triplet"
	TechniqueLockedCandidate   = "Locked Candidate"
	TechniqueXYWing            = "XY Wing"
	TechniqueUniqueRectangle   = "Unique Rectangle"
	TechniqueBacktrack         = "Backtrack"
)
