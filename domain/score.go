package domain

import "github.com/google/uuid"

// Score is a player's best result on one maze. Fewer moves rank higher.
type Score struct {
	MazeID   uuid.UUID `json:"mazeId"`
	PlayerID uuid.UUID `json:"playerId"`
	Username string    `json:"username"`
	Moves    int       `json:"moves"`
}
