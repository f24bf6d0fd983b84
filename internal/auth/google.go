package auth

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

var scopes = []string{
	gcal.CalendarScope,
	"https://www.googleapis.com/auth/userinfo.email",
}

// NewOAuthConfig builds the OAuth2 config for the Google consent flow.
// redirectURL must be the absolute callback endpoint registered with the
// provider.
func NewOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
}

// AuthURL returns the provider consent URL for the given CSRF state token.
// Offline access is requested so a refresh token comes back, and consent is
// forced so the refresh token is issued on every connect.
func AuthURL(cfg *oauth2.Config, state string) string {
	return cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange swaps the callback authorization code for a token set.
func Exchange(ctx context.Context, cfg *oauth2.Config, code string) (*oauth2.Token, error) {
	return cfg.Exchange(ctx, code)
}
