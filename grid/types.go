// Package grid defines the Grid and Position types, the diagram alphabet,
// and sentinel errors for the grid package.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths where a rectangle was required.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")
)

// Diagram alphabet.
const (
	Start      = '@' // unique start marker
	End        = 'x' // unique end marker
	Horizontal = '-' // horizontal segment
	Vertical   = '|' // vertical segment
	Junction   = '+' // turn marker
	Blank      = ' ' // empty cell, also written over consumed cells
)

// Grid is a matrix of single-character cells, indexed [row][col].
// A Grid built by Parse, FromRows or Read is rectangular; a literal
// Grid may be ragged, in which case At treats missing cells as Blank.
type Grid [][]rune

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row, Col int
}

// Add returns p shifted by the given row and column deltas.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// IsLetter reports whether r is an uppercase waypoint letter A..Z.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsAllowed reports whether r may appear on a traced route: a segment,
// a junction, either marker, or a waypoint letter. Blank is not allowed.
func IsAllowed(r rune) bool {
	switch r {
	case Horizontal, Vertical, Junction, End, Start:
		return true
	}
	return IsLetter(r)
}
