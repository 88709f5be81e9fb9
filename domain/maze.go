package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Maze is a generated maze together with the seed that reproduces it.
type Maze struct {
	ID        uuid.UUID
	Seed      int64
	Topology  *maze.Topology
	CreatedAt time.Time
}

// MazeDocument is the storage form of a Maze, shared by the database and the cache.
type MazeDocument struct {
	ID        uuid.UUID     `bson:"_id" json:"id"`
	Seed      int64         `bson:"seed" json:"seed"`
	Topology  maze.Snapshot `bson:"topology" json:"topology"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// Document converts m into its storage form.
func (m *Maze) Document() MazeDocument {
	return MazeDocument{
		ID:        m.ID,
		Seed:      m.Seed,
		Topology:  m.Topology.Snapshot(),
		CreatedAt: m.CreatedAt,
	}
}

// Maze rebuilds the Maze, validating the stored topology.
func (d MazeDocument) Maze() (*Maze, error) {
	topology, err := maze.FromSnapshot(d.Topology)
	if err != nil {
		return nil, err
	}
	return &Maze{
		ID:        d.ID,
		Seed:      d.Seed,
		Topology:  topology,
		CreatedAt: d.CreatedAt,
	}, nil
}
