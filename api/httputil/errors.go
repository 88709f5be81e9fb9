// Package httputil maps service errors onto HTTP responses.
package httputil

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/scene"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
)

var statusByErr = []struct {
	err    error
	status int
}{
	{maze.ErrInvalidDimension, http.StatusBadRequest},
	{maze.ErrInvalidDirection, http.StatusBadRequest},
	{maze.ErrOutOfBounds, http.StatusBadRequest},
	{service.ErrMazeTooLarge, http.StatusBadRequest},
	{scene.ErrInvalidViewport, http.StatusBadRequest},
	{dmn.ErrUsernameTooShort, http.StatusBadRequest},
	{dmn.ErrUsernameTooLong, http.StatusBadRequest},
	{dmn.ErrInvalidUsernameChars, http.StatusBadRequest},
	{dmn.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{dmn.ErrMazeNotFound, http.StatusNotFound},
	{dmn.ErrUserNotFound, http.StatusNotFound},
	{service.ErrNoSession, http.StatusNotFound},
	{dmn.ErrUsernameConflict, http.StatusConflict},
	{maze.ErrInvalidMove, http.StatusConflict},
	{game.ErrGameOver, http.StatusConflict},
}

// StatusFor returns the HTTP status for err. Unknown errors are internal.
func StatusFor(err error) int {
	for _, e := range statusByErr {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// AbortWithError writes {"error": ...} with the status matching err.
// Internal errors are not echoed to the client.
func AbortWithError(ctx *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// BadRequest writes a 400 with msg.
func BadRequest(ctx *gin.Context, msg string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
