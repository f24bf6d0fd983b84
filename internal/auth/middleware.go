package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenRequired is a Gin middleware that loads the user's OAuth token from
// the session cookie. Requests without a usable token get 401 and the
// frontend restarts the consent flow.
func TokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := TokenFromCookie(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing or invalid provider token",
			})
			return
		}

		// Store the token into Gin context for later handlers.
		c.Set(contextTokenKey, token)

		c.Next()
	}
}
