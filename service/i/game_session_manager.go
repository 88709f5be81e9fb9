package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GameSessionManager keeps one active maze game per player.
type GameSessionManager interface {
	// NewSession starts a game on a rows x cols maze generated from seed (0 picks a random seed).
	NewSession(ctx context.Context, playerID uuid.UUID, rows, cols int, seed int64) (game.State, error)

	// Move moves the player's ball one cell.
	Move(ctx context.Context, playerID uuid.UUID, d maze.Direction) (game.State, error)

	// Replay starts a fresh game with a new maze of the same size.
	Replay(ctx context.Context, playerID uuid.UUID) (game.State, error)

	// State returns the player's current game.
	State(playerID uuid.UUID) (game.State, error)
}

// MazeProvider generates and looks up mazes.
type MazeProvider interface {
	Generate(ctx context.Context, rows, cols int, seed int64) (*dmn.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
}
