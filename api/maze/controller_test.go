package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/scene"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMazes struct {
	byID map[uuid.UUID]*dmn.Maze
}

func (f *fakeMazes) Generate(ctx context.Context, rows, cols int, seed int64) (*dmn.Maze, error) {
	if seed == 0 {
		seed = 7
	}
	t, err := maze.Generate(rows, cols, maze.NewSource(seed))
	if err != nil {
		return nil, err
	}
	m := &dmn.Maze{ID: uuid.New(), Seed: seed, Topology: t, CreatedAt: time.Now()}
	f.byID[m.ID] = m
	return m, nil
}

func (f *fakeMazes) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return m, nil
}

type fakeLeaderboard struct {
	scores []dmn.Score
	limit  int64
}

func (f *fakeLeaderboard) Record(ctx context.Context, score dmn.Score) error {
	f.scores = append(f.scores, score)
	return nil
}

func (f *fakeLeaderboard) Top(ctx context.Context, mazeID uuid.UUID, limit int64) ([]dmn.Score, error) {
	f.limit = limit
	return f.scores, nil
}

type harness struct {
	router *gin.Engine
	mazes  *fakeMazes
	board  *fakeLeaderboard
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &harness{
		router: gin.New(),
		mazes:  &fakeMazes{byID: make(map[uuid.UUID]*dmn.Maze)},
		board:  &fakeLeaderboard{},
	}
	c, err := NewController(Config{Mazes: h.mazes, Leaderboard: h.board, DefaultRows: 4, DefaultCols: 6})
	require.NoError(t, err)
	c.RegisterPublic(h.router.Group("/api/v1"))
	return h
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) seed(t *testing.T, rows, cols int) *dmn.Maze {
	t.Helper()
	m, err := h.mazes.Generate(context.Background(), rows, cols, 42)
	require.NoError(t, err)
	return m
}

func TestNewController(t *testing.T) {
	_, err := NewController(Config{Leaderboard: &fakeLeaderboard{}, DefaultRows: 1, DefaultCols: 1})
	assert.Error(t, err)

	_, err = NewController(Config{Mazes: &fakeMazes{}, Leaderboard: &fakeLeaderboard{}})
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

func TestGenerate(t *testing.T) {
	t.Run("explicit size", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodPost, "/api/v1/mazes", `{"rows":3,"cols":5,"seed":9}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Rows)
		assert.Equal(t, 5, resp.Cols)
		assert.Equal(t, int64(9), resp.Seed)
		assert.Len(t, resp.Horizontals, 2)
		assert.Len(t, resp.Verticals, 3)
		assert.Equal(t, maze.CellPosition{Row: 2, Col: 4}, resp.Goal)

		snapshot := maze.Snapshot{Rows: resp.Rows, Cols: resp.Cols, Horizontals: resp.Horizontals, Verticals: resp.Verticals}
		topology, err := maze.FromSnapshot(snapshot)
		require.NoError(t, err)
		assert.True(t, maze.IsPerfect(topology))
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodPost, "/api/v1/mazes", "")
		require.Equal(t, http.StatusCreated, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Rows)
		assert.Equal(t, 6, resp.Cols)
	})

	t.Run("negative size", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodPost, "/api/v1/mazes", `{"rows":-1,"cols":5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodPost, "/api/v1/mazes", `{"rows":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestByID(t *testing.T) {
	h := newHarness(t)
	m := h.seed(t, 3, 3)

	t.Run("found", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+m.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, m.ID, resp.ID)
		assert.Equal(t, m.Topology.Horizontals(), resp.Horizontals)
	})

	t.Run("unknown", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestASCII(t *testing.T) {
	h := newHarness(t)
	m := h.seed(t, 2, 2)

	w := h.do(http.MethodGet, "/api/v1/mazes/"+m.ID.String()+"/ascii", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, m.Topology.String(), w.Body.String())
}

func TestSolution(t *testing.T) {
	h := newHarness(t)
	m := h.seed(t, 5, 7)

	w := h.do(http.MethodGet, "/api/v1/mazes/"+m.ID.String()+"/solution", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SolutionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Path)
	assert.Equal(t, m.Topology.Start(), resp.Path[0])
	assert.Equal(t, m.Topology.Goal(), resp.Path[len(resp.Path)-1])
	assert.Equal(t, len(resp.Path)-1, resp.Moves)
}

func TestScene(t *testing.T) {
	h := newHarness(t)
	m := h.seed(t, 3, 4)

	t.Run("custom viewport", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+m.ID.String()+"/scene?width=400&height=300", "")
		require.Equal(t, http.StatusOK, w.Code)

		var s scene.Scene
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
		assert.Equal(t, 400.0, s.Width)
		assert.Equal(t, 300.0, s.Height)
		assert.Len(t, s.Borders, 4)
	})

	t.Run("default viewport", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+m.ID.String()+"/scene", "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non numeric width", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+m.ID.String()+"/scene?width=wide", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero height", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+m.ID.String()+"/scene?height=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaderboard(t *testing.T) {
	h := newHarness(t)
	mazeID := uuid.New()
	h.board.scores = []dmn.Score{{MazeID: mazeID, PlayerID: uuid.New(), Username: "runner", Moves: 12}}

	t.Run("default limit", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+mazeID.String()+"/leaderboard", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(defaultTopLimit), h.board.limit)

		var resp LeaderboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, mazeID, resp.MazeID)
		assert.Equal(t, h.board.scores, resp.Scores)
	})

	t.Run("explicit limit", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mazes/"+mazeID.String()+"/leaderboard?limit=3", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(3), h.board.limit)
	})

	t.Run("limit out of range", func(t *testing.T) {
		for _, limit := range []string{"0", "-2", "101", "many"} {
			w := h.do(http.MethodGet, "/api/v1/mazes/"+mazeID.String()+"/leaderboard?limit="+limit, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, limit)
		}
	})
}
