package board

import (
	"fmt"

	"github.com/fatih/color"

	"sudoku-engine/internal/core"
)

// Box-drawing borders for a 9x9 grid with heavy dividers every three
// rows/columns, adapted from kpitt-sudoku's internal/board/printer.go.
const (
	borderTop    = "┌───┬───┬───╥───┬───┬───╥───┬───┬───┐"
	borderBot    = "└───┴───┴───╨───┴───┴───╨───┴───┴───┘"
	dividerMinor = "├───┼───┼───╫───┼───┼───╫───┼───┼───┤"
	dividerMajor = "╞═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

// Print renders s as a bordered grid: every Solved cell in bright
// white, whether given or deduced, and Pencil cells shown blank.
// Intended for cmd/solve's terminal trace.
func (s *Sudoku) Print() {
	color.HiWhite(borderTop)
	for r := 0; r < core.GridSize; r++ {
		if r != 0 {
			if r%core.BoxSize == 0 {
				color.HiWhite(dividerMajor)
			} else {
				color.HiWhite(dividerMinor)
			}
		}
		s.printRow(r)
	}
	color.HiWhite(borderBot)
}

func (s *Sudoku) printRow(row int) {
	for c := 0; c < core.GridSize; c++ {
		if c != 0 && c%core.BoxSize == 0 {
			fmt.Print(color.HiWhiteString(edgeMajor))
		} else {
			fmt.Print(color.HiWhiteString(edgeMinor))
		}

		cell := s.At(core.NewPosition(row, c))
		if cell.IsSolved() {
			fmt.Print(color.HiWhiteString(" %d ", cell.Value()))
		} else {
			fmt.Print("   ")
		}
	}
	color.HiWhite(edgeMinor)
}
