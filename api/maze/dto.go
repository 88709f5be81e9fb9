package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest asks for a maze. Zero fields fall back to server defaults
// and a zero seed picks a random one.
type GenerateRequest struct {
	Rows int   `json:"rows"`
	Cols int   `json:"cols"`
	Seed int64 `json:"seed"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID          uuid.UUID         `json:"id"`
	Seed        int64             `json:"seed"`
	Rows        int               `json:"rows"`
	Cols        int               `json:"cols"`
	Horizontals [][]bool          `json:"horizontals"`
	Verticals   [][]bool          `json:"verticals"`
	Start       maze.CellPosition `json:"start"`
	Goal        maze.CellPosition `json:"goal"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// SolutionResponse is the path from the start corner to the goal corner.
type SolutionResponse struct {
	Path  []maze.CellPosition `json:"path"`
	Moves int                 `json:"moves"`
}

// LeaderboardResponse lists the best scores on a maze.
type LeaderboardResponse struct {
	MazeID uuid.UUID   `json:"mazeId"`
	Scores []dmn.Score `json:"scores"`
}

func newMazeResponse(m *dmn.Maze) *MazeResponse {
	t := m.Topology
	return &MazeResponse{
		ID:          m.ID,
		Seed:        m.Seed,
		Rows:        t.Rows(),
		Cols:        t.Cols(),
		Horizontals: t.Horizontals(),
		Verticals:   t.Verticals(),
		Start:       t.Start(),
		Goal:        t.Goal(),
		CreatedAt:   m.CreatedAt,
	}
}
