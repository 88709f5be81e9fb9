package game

import (
	"errors"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrNilMaze  = errors.New("game: maze is required")
	ErrGameOver = errors.New("game: the goal has already been reached")
)

// State is a point-in-time view of a game.
type State struct {
	ID         uuid.UUID         `json:"id"`
	PlayerID   uuid.UUID         `json:"playerId"`
	MazeID     uuid.UUID         `json:"mazeId"`
	Position   maze.CellPosition `json:"position"`
	Goal       maze.CellPosition `json:"goal"`
	Moves      int               `json:"moves"`
	Won        bool              `json:"won"`
	StartedAt  time.Time         `json:"startedAt"`
	FinishedAt time.Time         `json:"finishedAt"`
}

// Elapsed is the time between the start and the winning move, or zero if the
// game is still running.
func (s State) Elapsed() time.Duration {
	if !s.Won {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Game is a single player's run through a maze, from the start corner to the goal corner.
// It tracks the player's cell and the number of moves and detects the win.
type Game struct {
	id         uuid.UUID
	playerID   uuid.UUID
	mazeID     uuid.UUID
	topology   *maze.Topology
	position   maze.CellPosition
	moves      int
	startedAt  time.Time
	finishedAt time.Time
	now        func() time.Time
	sync.RWMutex
}

// Option configures a Game.
type Option func(*Game)

// WithClock overrides the clock used for start and finish times.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New creates a game for playerID on the given maze with the player at the start cell.
func New(id, playerID, mazeID uuid.UUID, t *maze.Topology, opts ...Option) (*Game, error) {
	if t == nil {
		return nil, ErrNilMaze
	}

	g := &Game{
		id:       id,
		playerID: playerID,
		mazeID:   mazeID,
		topology: t,
		position: t.Start(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.startedAt = g.now()
	if g.position == t.Goal() {
		g.finishedAt = g.startedAt
	}
	return g, nil
}

// Move steps the player one cell in direction d.
func (g *Game) Move(d maze.Direction) (State, error) {
	g.Lock()
	defer g.Unlock()

	if g.won() {
		return g.snapshot(), ErrGameOver
	}

	move, err := maze.NewMove(g.topology, g.position, d)
	if err != nil {
		return g.snapshot(), err
	}

	g.position = move.To
	g.moves++
	if g.position == g.topology.Goal() {
		g.finishedAt = g.now()
	}

	return g.snapshot(), nil
}

// Snapshot returns the current state of the game.
func (g *Game) Snapshot() State {
	g.RLock()
	defer g.RUnlock()
	return g.snapshot()
}

func (g *Game) won() bool {
	return !g.finishedAt.IsZero()
}

func (g *Game) snapshot() State {
	return State{
		ID:         g.id,
		PlayerID:   g.playerID,
		MazeID:     g.mazeID,
		Position:   g.position,
		Goal:       g.topology.Goal(),
		Moves:      g.moves,
		Won:        g.won(),
		StartedAt:  g.startedAt,
		FinishedAt: g.finishedAt,
	}
}
