package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a cell the decoder could not interpret.
	ErrBadCell = errors.New("grid: invalid cell")
)

// MalformedGridError reports the first row whose length differs from row 0.
type MalformedGridError struct {
	Row  int // offending row index
	Want int // length of row 0
	Got  int // length of the offending row
}

func (e *MalformedGridError) Error() string {
	return fmt.Sprintf("grid: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrNonRectangular.
func (e *MalformedGridError) Unwrap() error { return ErrNonRectangular }
