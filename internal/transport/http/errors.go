package http

import "fmt"

func errInvalidLength(got int) error {
	return fmt.Errorf("givens must contain exactly 81 entries, got %d", got)
}

func errInvalidDigit(got, pos int) error {
	return fmt.Errorf("invalid given %d at position %d: must be 0-9", got, pos)
}
