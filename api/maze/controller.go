// Package mazeapi exposes maze generation, rendering and rankings over HTTP.
package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/httputil"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/scene"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultSceneWidth  = 800
	defaultSceneHeight = 600
	defaultTopLimit    = 10
	maxTopLimit        = 100
)

// Controller serves the public maze routes.
type Controller struct {
	mazes       i.MazeProvider
	leaderboard i.Leaderboard
	defaultRows int
	defaultCols int
}

// Config holds the dependencies of a Controller.
type Config struct {
	Mazes       i.MazeProvider
	Leaderboard i.Leaderboard
	DefaultRows int
	DefaultCols int
}

// NewController creates a maze Controller.
func NewController(c Config) (*Controller, error) {
	if c.Mazes == nil || c.Leaderboard == nil {
		return nil, errors.New("maze controller: mazes and leaderboard are required")
	}
	if c.DefaultRows <= 0 || c.DefaultCols <= 0 {
		return nil, maze.ErrInvalidDimension
	}
	return &Controller{
		mazes:       c.Mazes,
		leaderboard: c.Leaderboard,
		defaultRows: c.DefaultRows,
		defaultCols: c.DefaultCols,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/:id", mc.byID)
		mazes.GET("/:id/ascii", mc.ascii)
		mazes.GET("/:id/solution", mc.solution)
		mazes.GET("/:id/scene", mc.scene)
		mazes.GET("/:id/leaderboard", mc.top)
	}
}

// RegisterProtected registers protected routes.
func (mc *Controller) RegisterProtected(route *gin.RouterGroup) {}

func (mc *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			httputil.BadRequest(ctx, err.Error())
			return
		}
	}
	if request.Rows == 0 {
		request.Rows = mc.defaultRows
	}
	if request.Cols == 0 {
		request.Cols = mc.defaultCols
	}

	m, err := mc.mazes.Generate(ctx, request.Rows, request.Cols, request.Seed)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMazeResponse(m))
}

func (mc *Controller) byID(ctx *gin.Context) {
	m, ok := mc.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

func (mc *Controller) ascii(ctx *gin.Context) {
	m, ok := mc.load(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, m.Topology.String())
}

func (mc *Controller) solution(ctx *gin.Context) {
	m, ok := mc.load(ctx)
	if !ok {
		return
	}
	t := m.Topology
	path, err := maze.Solve(t, t.Start(), t.Goal())
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &SolutionResponse{Path: path, Moves: len(path) - 1})
}

func (mc *Controller) scene(ctx *gin.Context) {
	width, err := floatQuery(ctx, "width", defaultSceneWidth)
	if err != nil {
		httputil.BadRequest(ctx, "width must be a number")
		return
	}
	height, err := floatQuery(ctx, "height", defaultSceneHeight)
	if err != nil {
		httputil.BadRequest(ctx, "height must be a number")
		return
	}

	m, ok := mc.load(ctx)
	if !ok {
		return
	}
	s, err := scene.Build(m.Topology, width, height)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}

func (mc *Controller) top(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		httputil.BadRequest(ctx, "invalid maze id")
		return
	}

	limit := int64(defaultTopLimit)
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 || limit > maxTopLimit {
			httputil.BadRequest(ctx, "limit must be between 1 and 100")
			return
		}
	}

	scores, err := mc.leaderboard.Top(ctx, id, limit)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &LeaderboardResponse{MazeID: id, Scores: scores})
}

// load resolves the :id parameter, writing the error response on failure.
func (mc *Controller) load(ctx *gin.Context) (*dmn.Maze, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		httputil.BadRequest(ctx, "invalid maze id")
		return nil, false
	}
	m, err := mc.mazes.ByID(ctx, id)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return nil, false
	}
	return m, true
}

func floatQuery(ctx *gin.Context, key string, def float64) (float64, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
