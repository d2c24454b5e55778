package core

// Kind tags which variant a CellState holds.
type Kind int

const (
	// KindSolved marks a cell carrying a final digit.
	KindSolved Kind = iota
	// KindPencil marks a cell carrying a set of remaining candidates.
	KindPencil
)

// CellState is the tagged union spec.md §3 calls for: a cell is either
// Solved(v) or Pencil(C). Consumers must switch on Kind() rather than
// infer the variant from zero values, since Pencil({}) (the contradiction
// state) and the zero value both have Value == 0.
type CellState struct {
	kind       Kind
	value      int
	candidates Candidates
}

// Solved builds a Solved(v) cell state.
func Solved(v int) CellState {
	return CellState{kind: KindSolved, value: v}
}

// Pencil builds a Pencil(c) cell state.
func Pencil(c Candidates) CellState {
	return CellState{kind: KindPencil, candidates: c}
}

// Kind reports which variant this state holds.
func (s CellState) Kind() Kind { return s.kind }

// IsSolved reports whether this is a Solved(v) state.
func (s CellState) IsSolved() bool { return s.kind == KindSolved }

// IsPencil reports whether this is a Pencil(C) state.
func (s CellState) IsPencil() bool { return s.kind == KindPencil }

// Value returns the solved digit. Only meaningful when IsSolved().
func (s CellState) Value() int { return s.value }

// Candidates returns the candidate bitmask. Only meaningful when
// IsPencil().
func (s CellState) Candidates() Candidates { return s.candidates }

// IsContradiction reports whether this is a Pencil cell with no
// remaining candidates — the signal for an unsolvable board (spec.md
// §3 invariant on CellState, §7).
func (s CellState) IsContradiction() bool {
	return s.kind == KindPencil && s.candidates.IsEmpty()
}
