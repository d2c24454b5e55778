// Command solve reads an 81-character puzzle string from argv, runs
// the step-by-step solver, prints one line per technique applied (its
// name and positions), and then prints the final grid once. Grounded
// in kpitt-sudoku's internal/board
// printer for the colorized grid, generalized to also narrate the
// technique trace the way a human solver would explain their moves.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"sudoku-engine/internal/board"
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/solver"
)

func main() {
	if len(os.Args) != 2 || len(os.Args[1]) != core.TotalCells {
		fmt.Fprintln(os.Stderr, "usage: solve <81-character puzzle, 0 for blank cells>")
		os.Exit(1)
	}

	givens, err := parsePuzzle(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(1)
	}

	b, err := board.NewSudoku(givens)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(1)
	}

	s := solver.New()
	var final *board.Sudoku
	for step, stepErr := range s.Steps(b) {
		if stepErr != nil {
			color.Red("solve: %v", stepErr)
			os.Exit(1)
		}
		final = applyStep(final, b, step)
		color.HiCyan("%s: %v", step.Technique, step.Positions)
	}

	if final == nil {
		final = b
	}
	final.Print()
}

func parsePuzzle(s string) ([]int, error) {
	out := make([]int, len(s))
	for i, ch := range s {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
		out[i] = int(ch - '0')
	}
	return out, nil
}

// applyStep reconstructs the board after each reported step so the
// final grid can be printed; the first call seeds final from the
// starting board.
func applyStep(final, start *board.Sudoku, step core.Step) *board.Sudoku {
	if final == nil {
		final = start.Clone()
	}
	final.Apply(step.ChangedCells)
	return final
}
