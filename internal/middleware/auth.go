package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/pkg/auth"
)

const TokenKey = "sessionToken"

// AuthMiddleware extracts the session token from the request and stashes it
// in the gin context. Whether the session behind it is still alive is decided
// by the service layer against the store, so this only rejects requests that
// carry no token at all.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c.Request)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}
		c.Set(TokenKey, token)
		c.Next()
	}
}

// Token returns the session token stashed by AuthMiddleware.
func Token(c *gin.Context) string {
	return c.GetString(TokenKey)
}
