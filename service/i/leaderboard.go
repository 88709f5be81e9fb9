package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// Leaderboard ranks players per maze by their fewest moves.
type Leaderboard interface {
	// Record stores score unless the player already has a better one on that maze.
	Record(ctx context.Context, score dmn.Score) error

	// Top returns up to limit best scores for the maze, best first.
	Top(ctx context.Context, mazeID uuid.UUID, limit int64) ([]dmn.Score, error)
}
