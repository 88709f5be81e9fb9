package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 50
	mazeCacheKeyFmt     = "maze:%d:%d:%d"
)

var (
	ErrMazeTooLarge = errors.New("maze dimensions exceed the allowed maximum")
)

// MazeService generates mazes reproducibly from a seed, caches them by their
// generation parameters and persists them.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.MazeCache
	logger       i.Logger
	maxDimension int
	seeds        func() int64
	now          func() time.Time
}

// MazeServiceConfig holds the dependencies of a MazeService.
type MazeServiceConfig struct {
	Repo         i.MazeRepo
	Cache        i.MazeCache
	Logger       i.Logger
	MaxDimension int          // Largest accepted rows or cols; defaults to 50
	Seeds        func() int64 // Seeds used when the caller passes 0; must be safe for concurrent use. Defaults to rand.Int63
}

// NewMazeService creates a MazeService.
func NewMazeService(c MazeServiceConfig) (*MazeService, error) {
	if c.Repo == nil || c.Cache == nil || c.Logger == nil {
		return nil, errors.New("maze service: repo, cache and logger are required")
	}

	if c.MaxDimension <= 0 {
		c.MaxDimension = defaultMaxDimension
	}

	if c.Seeds == nil {
		c.Seeds = rand.Int63
	}

	return &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		logger:       c.Logger,
		maxDimension: c.MaxDimension,
		seeds:        c.Seeds,
		now:          time.Now,
	}, nil
}

// Generate returns the rows x cols maze for seed, generating and storing it on first request.
// A zero seed is replaced by a fresh random one.
func (s *MazeService) Generate(ctx context.Context, rows, cols int, seed int64) (*dmn.Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, maze.ErrInvalidDimension
	}
	if rows > s.maxDimension || cols > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrMazeTooLarge, rows, cols, s.maxDimension)
	}

	for seed == 0 {
		seed = s.seeds()
	}

	key := fmt.Sprintf(mazeCacheKeyFmt, rows, cols, seed)
	id := mazeID(key)
	return s.cache.GetOrCreate(ctx, key, func(ctx context.Context) (*dmn.Maze, error) {
		// The cache entry may have expired while the maze is still stored.
		stored, err := s.repo.ByID(ctx, id)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, dmn.ErrMazeNotFound) {
			s.logger.Error(fmt.Sprintf("loading maze %s: %s", id, err))
			return nil, err
		}

		topology, err := maze.Generate(rows, cols, maze.NewSource(seed))
		if err != nil {
			return nil, err
		}

		m := &dmn.Maze{
			ID:        id,
			Seed:      seed,
			Topology:  topology,
			CreatedAt: s.now().UTC(),
		}
		if err := s.repo.Save(ctx, m); err != nil {
			s.logger.Error(fmt.Sprintf("saving maze %s: %s", m.ID, err))
			return nil, err
		}

		s.logger.Info(fmt.Sprintf("generated %dx%d maze %s with seed %d", rows, cols, m.ID, seed))
		return m, nil
	})
}

// mazeID derives the maze ID from its generation parameters, so the same
// parameters always name the same maze.
func mazeID(key string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}

// ByID returns a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return s.repo.ByID(ctx, id)
}
