package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/nekogravitycat/meeting-booking-backend/internal/auth"
)

// AuthHandler drives the Google OAuth consent flow and stores the resulting
// token in the session cookie.
type AuthHandler struct {
	oauthCfg     *oauth2.Config
	isProduction bool
}

func NewAuthHandler(oauthCfg *oauth2.Config, isProduction bool) *AuthHandler {
	return &AuthHandler{
		oauthCfg:     oauthCfg,
		isProduction: isProduction,
	}
}

//
// GET /v1/auth/google
//

// Redirect sends the browser to the provider's consent page. A fresh state
// token goes into a short-lived cookie for CSRF verification on callback.
func (h *AuthHandler) Redirect(c *gin.Context) {
	state := uuid.NewString()
	auth.SetStateCookie(c, state, h.isProduction)

	c.Redirect(http.StatusFound, auth.AuthURL(h.oauthCfg, state))
}

//
// GET /v1/auth/google/callback
//

// Callback verifies the CSRF state, exchanges the authorization code for a
// token set, and stores it in the session cookie before bouncing back to
// the app root.
func (h *AuthHandler) Callback(c *gin.Context) {
	state, ok := auth.StateFromCookie(c)
	if !ok || state != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	token, err := auth.Exchange(c.Request.Context(), h.oauthCfg, code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to exchange authorization code"})
		return
	}

	if err := auth.SetTokenCookie(c, token, h.isProduction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store token"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}
