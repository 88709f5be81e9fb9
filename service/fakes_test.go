package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type fakeMazeRepo struct {
	mazes   map[uuid.UUID]*dmn.Maze
	saveErr error
	byIDErr error
	saves   int
	sync.Mutex
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{mazes: map[uuid.UUID]*dmn.Maze{}}
}

func (r *fakeMazeRepo) Save(_ context.Context, m *dmn.Maze) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.mazes[m.ID] = m
	return nil
}

func (r *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Maze, error) {
	r.Lock()
	defer r.Unlock()
	if r.byIDErr != nil {
		return nil, r.byIDErr
	}
	m, ok := r.mazes[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return m, nil
}

type fakeCache struct {
	entries map[string]*dmn.Maze
	sync.Mutex
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*dmn.Maze{}}
}

func (c *fakeCache) GetOrCreate(ctx context.Context, key string, create func(context.Context) (*dmn.Maze, error)) (*dmn.Maze, error) {
	c.Lock()
	defer c.Unlock()
	if m, ok := c.entries[key]; ok {
		return m, nil
	}
	m, err := create(ctx)
	if err != nil {
		return nil, err
	}
	c.entries[key] = m
	return m, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*dmn.User
	sync.Mutex
}

func newFakeUserRepo(users ...*dmn.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*dmn.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	r.Lock()
	defer r.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, dmn.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type fakeLeaderboard struct {
	scores map[uuid.UUID]map[uuid.UUID]dmn.Score
	sync.Mutex
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: map[uuid.UUID]map[uuid.UUID]dmn.Score{}}
}

func (l *fakeLeaderboard) Record(_ context.Context, score dmn.Score) error {
	l.Lock()
	defer l.Unlock()
	board, ok := l.scores[score.MazeID]
	if !ok {
		board = map[uuid.UUID]dmn.Score{}
		l.scores[score.MazeID] = board
	}
	if prev, ok := board[score.PlayerID]; !ok || score.Moves < prev.Moves {
		board[score.PlayerID] = score
	}
	return nil
}

func (l *fakeLeaderboard) Top(_ context.Context, mazeID uuid.UUID, limit int64) ([]dmn.Score, error) {
	l.Lock()
	defer l.Unlock()
	var scores []dmn.Score
	for _, s := range l.scores[mazeID] {
		scores = append(scores, s)
	}
	sort.Slice(scores, func(a, b int) bool { return scores[a].Moves < scores[b].Moves })
	if int64(len(scores)) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

type fakeTokenizer struct {
	claims map[string]interface{}
	err    error
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.claims = claims
	return "signed-token", nil
}

func (f *fakeTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "signed-token" {
		return nil, errors.New("invalid token")
	}
	return f.claims, nil
}
