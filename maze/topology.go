package maze

import (
	"fmt"
	"strings"
)

// Topology is a finished maze: which passages between adjacent cells are open.
// It is immutable once returned by Generate or FromSnapshot.
type Topology struct {
	rows        int
	cols        int
	horizontals [][]bool // (rows-1) x cols; [r][c] opens (r,c)-(r+1,c)
	verticals   [][]bool // rows x (cols-1); [r][c] opens (r,c)-(r,c+1)
}

// Snapshot is the plain, serializable form of a Topology.
type Snapshot struct {
	Rows        int      `json:"rows" bson:"rows"`
	Cols        int      `json:"cols" bson:"cols"`
	Horizontals [][]bool `json:"horizontals" bson:"horizontals"`
	Verticals   [][]bool `json:"verticals" bson:"verticals"`
}

// newTopology allocates a topology with every passage closed.
func newTopology(rows, cols int) *Topology {
	return &Topology{
		rows:        rows,
		cols:        cols,
		horizontals: newBoolGrid(rows-1, cols),
		verticals:   newBoolGrid(rows, cols-1),
	}
}

// FromSnapshot validates s and builds a Topology from a copy of its arrays.
// It checks shapes only; use IsPerfect to check the spanning-tree property.
func FromSnapshot(s Snapshot) (*Topology, error) {
	if s.Rows <= 0 || s.Cols <= 0 {
		return nil, ErrInvalidDimension
	}
	if err := checkShape(s.Horizontals, s.Rows-1, s.Cols); err != nil {
		return nil, fmt.Errorf("horizontals: %w", err)
	}
	if err := checkShape(s.Verticals, s.Rows, s.Cols-1); err != nil {
		return nil, fmt.Errorf("verticals: %w", err)
	}

	return &Topology{
		rows:        s.Rows,
		cols:        s.Cols,
		horizontals: copyBoolGrid(s.Horizontals, s.Rows-1, s.Cols),
		verticals:   copyBoolGrid(s.Verticals, s.Rows, s.Cols-1),
	}, nil
}

// Snapshot returns a deep copy of the topology in serializable form.
func (t *Topology) Snapshot() Snapshot {
	return Snapshot{
		Rows:        t.rows,
		Cols:        t.cols,
		Horizontals: t.Horizontals(),
		Verticals:   t.Verticals(),
	}
}

// Rows returns the number of cell rows.
func (t *Topology) Rows() int { return t.rows }

// Cols returns the number of cell columns.
func (t *Topology) Cols() int { return t.cols }

// Horizontals returns a copy of the horizontal passage array, shape (rows-1) x cols.
func (t *Topology) Horizontals() [][]bool {
	return copyBoolGrid(t.horizontals, t.rows-1, t.cols)
}

// Verticals returns a copy of the vertical passage array, shape rows x (cols-1).
func (t *Topology) Verticals() [][]bool {
	return copyBoolGrid(t.verticals, t.rows, t.cols-1)
}

// InBound reports whether (row, col) lies inside the grid. A nil topology has no cells.
func (t *Topology) InBound(row, col int) bool {
	return t != nil && row >= 0 && row < t.rows && col >= 0 && col < t.cols
}

// Start is the conventional player start cell, the top-left corner.
func (t *Topology) Start() CellPosition {
	return CellPosition{Row: 0, Col: 0}
}

// Goal is the conventional goal cell, the bottom-right corner.
func (t *Topology) Goal() CellPosition {
	return CellPosition{Row: t.rows - 1, Col: t.cols - 1}
}

// IsOpen reports whether the passage leaving pos in direction d is open.
// Passages leading off the grid are always closed.
func (t *Topology) IsOpen(pos CellPosition, d Direction) bool {
	if !d.Valid() || !t.InBound(pos.Row, pos.Col) {
		return false
	}
	next := pos.Step(d)
	if !t.InBound(next.Row, next.Col) {
		return false
	}

	switch d {
	case Up:
		return t.horizontals[pos.Row-1][pos.Col]
	case Down:
		return t.horizontals[pos.Row][pos.Col]
	case Left:
		return t.verticals[pos.Row][pos.Col-1]
	default:
		return t.verticals[pos.Row][pos.Col]
	}
}

// OpenDirections lists the directions with an open passage from pos, in declaration order.
func (t *Topology) OpenDirections(pos CellPosition) []Direction {
	var open []Direction
	for _, d := range directions {
		if t.IsOpen(pos, d) {
			open = append(open, d)
		}
	}
	return open
}

// Passages counts the open passages.
func (t *Topology) Passages() int {
	count := 0
	for _, row := range t.horizontals {
		for _, open := range row {
			if open {
				count++
			}
		}
	}
	for _, row := range t.verticals {
		for _, open := range row {
			if open {
				count++
			}
		}
	}
	return count
}

// open removes the wall between pos and its neighbour in direction d.
// The caller guarantees both cells are in bounds.
func (t *Topology) open(pos CellPosition, d Direction) {
	switch d {
	case Up:
		t.horizontals[pos.Row-1][pos.Col] = true
	case Down:
		t.horizontals[pos.Row][pos.Col] = true
	case Left:
		t.verticals[pos.Row][pos.Col-1] = true
	case Right:
		t.verticals[pos.Row][pos.Col] = true
	}
}

// String provides a textual representation of the maze.
func (t *Topology) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", t.cols) + "\n")

	for row := 0; row < t.rows; row++ {
		// Cell row with east walls
		b.WriteString("|")
		for col := 0; col < t.cols; col++ {
			if t.IsOpen(CellPosition{Row: row, Col: col}, Right) {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n")

		// South walls
		b.WriteString("+")
		for col := 0; col < t.cols; col++ {
			if t.IsOpen(CellPosition{Row: row, Col: col}, Down) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func newBoolGrid(rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}
	return grid
}

func copyBoolGrid(src [][]bool, rows, cols int) [][]bool {
	dst := newBoolGrid(rows, cols)
	for i := range dst {
		copy(dst[i], src[i])
	}
	return dst
}

func checkShape(grid [][]bool, rows, cols int) error {
	if len(grid) != rows {
		return fmt.Errorf("%w: want %d rows, got %d", ErrMalformedTopology, rows, len(grid))
	}
	for i, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d: want %d columns, got %d", ErrMalformedTopology, i, cols, len(row))
		}
	}
	return nil
}
