// Package gameapi handles single player maze games over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
)

// NewGameRequest starts a game. Zero fields fall back to server defaults
// and a zero seed picks a random maze.
type NewGameRequest struct {
	Rows int   `json:"rows"`
	Cols int   `json:"cols"`
	Seed int64 `json:"seed"`
}

// MoveRequest moves the ball one cell.
type MoveRequest struct {
	Direction *maze.Direction `json:"direction" binding:"required"`
}
