package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultGameDuration = 10 * time.Minute
)

var (
	ErrNoSession = errors.New("player does not have a game session")
)

type session struct {
	game  *game.Game
	rows  int
	cols  int
	timer *time.Timer
}

// GameSessionManager keeps one active game per player. Unfinished games are
// dropped once the game duration elapses.
type GameSessionManager struct {
	mazes        i.MazeProvider
	leaderboard  i.Leaderboard
	userRepo     i.UserRepo
	logger       i.Logger
	gameDuration time.Duration
	sessions     map[uuid.UUID]*session // indexed by player ID
	sync.RWMutex
}

// Config holds the dependencies of a GameSessionManager.
type Config struct {
	Mazes        i.MazeProvider
	Leaderboard  i.Leaderboard
	UserRepo     i.UserRepo
	Logger       i.Logger
	GameDuration time.Duration
}

// NewGameSessionManager creates a GameSessionManager.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c == nil || c.Mazes == nil || c.Leaderboard == nil || c.UserRepo == nil || c.Logger == nil {
		return nil, errors.New("game session manager: mazes, leaderboard, user repo and logger are required")
	}

	gameDuration := c.GameDuration
	if gameDuration <= 0 {
		gameDuration = defaultGameDuration
	}

	return &GameSessionManager{
		mazes:        c.Mazes,
		leaderboard:  c.Leaderboard,
		userRepo:     c.UserRepo,
		logger:       c.Logger,
		gameDuration: gameDuration,
		sessions:     make(map[uuid.UUID]*session),
	}, nil
}

// NewSession starts a game for the player, replacing any game in progress.
func (g *GameSessionManager) NewSession(ctx context.Context, playerID uuid.UUID, rows, cols int, seed int64) (game.State, error) {
	m, err := g.mazes.Generate(ctx, rows, cols, seed)
	if err != nil {
		return game.State{}, err
	}

	gm, err := game.New(uuid.New(), playerID, m.ID, m.Topology)
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating game for player %s: %s", playerID, err))
		return game.State{}, err
	}

	g.Lock()
	if old, ok := g.sessions[playerID]; ok {
		old.timer.Stop()
	}
	s := &session{game: gm, rows: rows, cols: cols}
	gameID := gm.Snapshot().ID
	s.timer = time.AfterFunc(g.gameDuration, func() { g.expire(playerID, gameID) })
	g.sessions[playerID] = s
	g.Unlock()

	g.logger.Info(fmt.Sprintf("started game %s on maze %s for player %s", gameID, m.ID, playerID))

	// A single cell maze is solved before the first move.
	state := gm.Snapshot()
	if state.Won {
		g.recordWin(ctx, state)
	}
	return state, nil
}

// Move moves the player one cell. The winning move records the score.
func (g *GameSessionManager) Move(ctx context.Context, playerID uuid.UUID, d maze.Direction) (game.State, error) {
	s, err := g.session(playerID)
	if err != nil {
		return game.State{}, err
	}

	state, err := s.game.Move(d)
	if err != nil {
		return state, err
	}

	if state.Won {
		g.recordWin(ctx, state)
	}
	return state, nil
}

// Replay starts a new game on a freshly generated maze of the same size.
func (g *GameSessionManager) Replay(ctx context.Context, playerID uuid.UUID) (game.State, error) {
	s, err := g.session(playerID)
	if err != nil {
		return game.State{}, err
	}
	return g.NewSession(ctx, playerID, s.rows, s.cols, 0)
}

// State returns the player's current game.
func (g *GameSessionManager) State(playerID uuid.UUID) (game.State, error) {
	s, err := g.session(playerID)
	if err != nil {
		return game.State{}, err
	}
	return s.game.Snapshot(), nil
}

// StopAll drops every session.
func (g *GameSessionManager) StopAll() {
	g.Lock()
	defer g.Unlock()

	for playerID, s := range g.sessions {
		s.timer.Stop()
		delete(g.sessions, playerID)
	}
}

func (g *GameSessionManager) session(playerID uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[playerID]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// expire removes the player's session if it still holds the given game.
func (g *GameSessionManager) expire(playerID, gameID uuid.UUID) {
	g.Lock()
	defer g.Unlock()
	s, ok := g.sessions[playerID]
	if !ok || s.game.Snapshot().ID != gameID {
		return
	}
	delete(g.sessions, playerID)
	g.logger.Info(fmt.Sprintf("game %s for player %s expired", gameID, playerID))
}

// recordWin stores the score and bumps the player's solved counter. Failures are
// logged; the win itself stands.
func (g *GameSessionManager) recordWin(ctx context.Context, state game.State) {
	score := dmn.Score{
		MazeID:   state.MazeID,
		PlayerID: state.PlayerID,
		Moves:    state.Moves,
	}

	user, err := g.userRepo.ByID(state.PlayerID)
	if err != nil {
		g.logger.Warning(fmt.Sprintf("looking up winner %s: %s", state.PlayerID, err))
	} else {
		score.Username = user.Username
		user.Solved++
		if err := g.userRepo.Save(user); err != nil {
			g.logger.Error(fmt.Sprintf("updating solved count for %s: %s", user.ID, err))
		}
	}

	if err := g.leaderboard.Record(ctx, score); err != nil {
		g.logger.Error(fmt.Sprintf("recording score for %s on maze %s: %s", state.PlayerID, state.MazeID, err))
		return
	}

	g.logger.Info(fmt.Sprintf("player %s solved maze %s in %d moves", state.PlayerID, state.MazeID, state.Moves))
}
