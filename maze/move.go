package maze

// NewMove builds the move from from in direction d, failing with
// ErrInvalidMove if it would leave the grid or cross a wall.
func NewMove(t *Topology, from CellPosition, d Direction) (Move, error) {
	if !d.Valid() {
		return Move{}, ErrInvalidDirection
	}
	move := Move{From: from, To: from.Step(d), Direction: d}
	if !IsValidMove(t, move) {
		return Move{}, ErrInvalidMove
	}
	return move, nil
}

// IsValidMove checks if a move is valid: both cells are inside the maze, they
// are adjacent in the move's direction and the connecting wall is down.
func IsValidMove(t *Topology, move Move) bool {
	if !t.InBound(move.From.Row, move.From.Col) || !t.InBound(move.To.Row, move.To.Col) {
		return false
	}
	if move.From.Step(move.Direction) != move.To {
		return false
	}
	return t.IsOpen(move.From, move.Direction)
}
