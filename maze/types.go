// Package maze types and sentinel errors for grid parsing.
package maze

import "errors"

// Cell markers recognized by Parse.
const (
	Wall  = '#'
	Start = 'S'
	End   = 'E'
)

// Sentinel errors for maze parsing.
var (
	// ErrEmptyMaze indicates the input has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrMissingStart indicates no 'S' cell was found.
	ErrMissingStart = errors.New("maze: start marker 'S' not found")

	// ErrMissingEnd indicates no 'E' cell was found.
	ErrMissingEnd = errors.New("maze: end marker 'E' not found")

	// ErrDuplicateStart indicates more than one 'S' cell.
	ErrDuplicateStart = errors.New("maze: more than one start marker 'S'")

	// ErrDuplicateEnd indicates more than one 'E' cell.
	ErrDuplicateEnd = errors.New("maze: more than one end marker 'E'")
)

// Cell is a grid position, row first.
type Cell struct {
	Row, Col int
}

// Maze is an immutable parsed grid. Rows and Cols are its dimensions;
// the start and end cells are the unique 'S' and 'E' markers.
type Maze struct {
	Rows, Cols int

	cells []string
	start Cell
	end   Cell
}
