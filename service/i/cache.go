package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// MazeCache caches generated mazes by a key derived from their generation parameters.
type MazeCache interface {
	// GetOrCreate returns the cached maze under key, or calls create, caches and
	// returns its result. Concurrent callers for the same key run create at most once.
	GetOrCreate(ctx context.Context, key string, create func(context.Context) (*dmn.Maze, error)) (*dmn.Maze, error)
}
