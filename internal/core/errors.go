package core

import "errors"

// ErrNotFound is the internal signal that a technique produced no
// Result. It is only returned from a technique's First helper and is
// never surfaced past the techniques/solver boundary (spec.md §7).
var ErrNotFound = errors.New("sudoku: technique found no result")

// ErrUnsolvable is surfaced from Solver.Steps and from the backtracker
// when the deductive pipeline stalls and backtracking finds no
// completion, or when propagation yields an empty candidate set on some
// unsolved cell (spec.md §7).
var ErrUnsolvable = errors.New("sudoku: puzzle is unsolvable")
