package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const contextTokenKey = "googleToken"

// GetToken returns the authenticated user's OAuth token or nil.
func GetToken(c *gin.Context) *oauth2.Token {
	if v, ok := c.Get(contextTokenKey); ok {
		if t, ok := v.(*oauth2.Token); ok {
			return t
		}
	}
	return nil
}
