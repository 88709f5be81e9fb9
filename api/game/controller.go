package gameapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/httputil"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameController manages the authenticated player's current game.
type GameController struct {
	gameSessionManager i.GameSessionManager
	defaultRows        int
	defaultCols        int
}

// NewGameController initializes a GameController.
func NewGameController(gsm i.GameSessionManager, defaultRows, defaultCols int) (*GameController, error) {
	if gsm == nil {
		return nil, errors.New("game controller: session manager is required")
	}
	if defaultRows <= 0 || defaultCols <= 0 {
		return nil, maze.ErrInvalidDimension
	}
	return &GameController{
		gameSessionManager: gsm,
		defaultRows:        defaultRows,
		defaultCols:        defaultCols,
	}, nil
}

// RegisterPublic registers public routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (gc *GameController) RegisterProtected(route *gin.RouterGroup) {
	games := route.Group("/games")
	{
		games.POST("", gc.start)
		games.GET("/current", gc.current)
		games.POST("/current/moves", gc.move)
		games.POST("/current/replay", gc.replay)
		games.GET("/current/ws", gc.play)
	}
}

func (gc *GameController) start(ctx *gin.Context) {
	playerID, ok := player(ctx)
	if !ok {
		return
	}

	var request NewGameRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			httputil.BadRequest(ctx, err.Error())
			return
		}
	}
	if request.Rows == 0 {
		request.Rows = gc.defaultRows
	}
	if request.Cols == 0 {
		request.Cols = gc.defaultCols
	}

	state, err := gc.gameSessionManager.NewSession(ctx, playerID, request.Rows, request.Cols, request.Seed)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

func (gc *GameController) current(ctx *gin.Context) {
	playerID, ok := player(ctx)
	if !ok {
		return
	}

	state, err := gc.gameSessionManager.State(playerID)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

func (gc *GameController) move(ctx *gin.Context) {
	playerID, ok := player(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		httputil.BadRequest(ctx, err.Error())
		return
	}

	state, err := gc.gameSessionManager.Move(ctx, playerID, *request.Direction)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

func (gc *GameController) replay(ctx *gin.Context) {
	playerID, ok := player(ctx)
	if !ok {
		return
	}

	state, err := gc.gameSessionManager.Replay(ctx, playerID)
	if err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// player returns the authenticated player, answering 401 when the claims are unusable.
func player(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := identity.UserID(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user claims"})
		return uuid.Nil, false
	}
	return id, true
}
