package maze

import "errors"

var (
	// ErrInvalidDimension is returned when rows or cols is not positive.
	ErrInvalidDimension = errors.New("maze: rows and cols must be positive")
	// ErrOutOfBounds is returned when a cell lies outside the grid.
	ErrOutOfBounds = errors.New("maze: cell is out of bounds")
	// ErrInvalidDirection is returned for an unknown direction.
	ErrInvalidDirection = errors.New("maze: invalid direction")
	// ErrMalformedTopology is returned when a snapshot's wall arrays do not match its dimensions.
	ErrMalformedTopology = errors.New("maze: malformed topology")
	// ErrInvalidMove is returned when a move crosses a wall or leaves the grid.
	ErrInvalidMove = errors.New("maze: invalid move")
	// ErrNoPath is returned when two cells are not connected.
	ErrNoPath = errors.New("maze: no path between cells")
)
