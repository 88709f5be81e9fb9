package gameapi

import (
	"encoding/json"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/httputil"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// MoveReply answers one move sent over the game socket. Exactly one field is set.
type MoveReply struct {
	State *game.State `json:"state,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// play upgrades to a websocket and applies each MoveRequest it reads to the
// player's current game, replying with the new state or the error.
func (gc *GameController) play(ctx *gin.Context) {
	playerID, ok := player(ctx)
	if !ok {
		return
	}
	if _, err := gc.gameSessionManager.State(playerID); err != nil {
		httputil.AbortWithError(ctx, err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var reply MoveReply
		var request MoveRequest
		if err := json.Unmarshal(data, &request); err != nil {
			reply.Error = err.Error()
		} else if request.Direction == nil {
			reply.Error = "direction is required"
		} else if state, err := gc.gameSessionManager.Move(ctx, playerID, *request.Direction); err != nil {
			reply.Error = err.Error()
		} else {
			reply.State = &state
		}

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
