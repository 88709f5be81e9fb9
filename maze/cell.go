package maze

import "fmt"

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Step returns the position one cell away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	dRow, dCol := d.Delta()
	return CellPosition{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the position as "(row,col)".
func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move represents a movement from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move
}
