package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"

	// ClaimUserID is the token claim that carries the user's ID.
	ClaimUserID = "userID"
)

var (
	ErrMissingClaims = errors.New("request carries no user claims")
)

// Authoriz rejects requests without a valid bearer token and stores the
// token's claims under ContextUserClaims.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// UserID reads the authenticated user's ID from the claims set by Authoriz.
func UserID(c *gin.Context) (uuid.UUID, error) {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, ErrMissingClaims
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, ErrMissingClaims
	}
	id, ok := claims[ClaimUserID].(string)
	if !ok {
		return uuid.Nil, ErrMissingClaims
	}
	return uuid.Parse(id)
}
