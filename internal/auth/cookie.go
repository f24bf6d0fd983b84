package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const (
	// TokenCookieName holds the JSON-serialized oauth2.Token.
	TokenCookieName = "google_token"
	// StateCookieName holds the CSRF state for the in-flight consent flow.
	StateCookieName = "oauth_state"

	tokenCookieMaxAge = 3600 * 24 * 30
	stateCookieMaxAge = 600
)

// SetTokenCookie stores the user's OAuth token as an httpOnly cookie,
// mirroring the provider token lifetime of 30 days.
func SetTokenCookie(c *gin.Context, token *oauth2.Token, secure bool) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookieName, string(data), tokenCookieMaxAge, "/", "", secure, true)
	return nil
}

// TokenFromCookie reads and unmarshals the OAuth token cookie. The boolean
// is false when the cookie is absent or malformed.
func TokenFromCookie(c *gin.Context) (*oauth2.Token, bool) {
	raw, err := c.Cookie(TokenCookieName)
	if err != nil || raw == "" {
		return nil, false
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return nil, false
	}
	if token.AccessToken == "" {
		return nil, false
	}

	return &token, true
}

// SetStateCookie stores the consent-flow CSRF state. Short-lived: the
// round-trip to the provider takes seconds, not hours.
func SetStateCookie(c *gin.Context, state string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(StateCookieName, state, stateCookieMaxAge, "/", "", secure, true)
}

// StateFromCookie reads and clears the consent-flow CSRF state.
func StateFromCookie(c *gin.Context) (string, bool) {
	state, err := c.Cookie(StateCookieName)
	if err != nil || state == "" {
		return "", false
	}
	c.SetCookie(StateCookieName, "", -1, "/", "", false, true)
	return state, true
}
