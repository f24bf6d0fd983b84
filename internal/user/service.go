package user

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/nekogravitycat/meeting-booking-backend/internal/pkg/apperror"
)

var ErrEmailNotFound = apperror.New(http.StatusUnauthorized, "no email found in user info")

// Service resolves identity details for the authenticated account.
type Service interface {
	Email(ctx context.Context, token *oauth2.Token) (string, error)
}

type service struct {
	oauthCfg *oauth2.Config
}

func NewService(oauthCfg *oauth2.Config) Service {
	return &service{oauthCfg: oauthCfg}
}

// Email fetches the account's email address from the provider's userinfo
// endpoint. Nothing is cached; the token is the single source of identity.
func (s *service) Email(ctx context.Context, token *oauth2.Token) (string, error) {
	httpClient := s.oauthCfg.Client(ctx, token)
	svc, err := goauth.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return "", apperror.Wrap(err, http.StatusInternalServerError, "failed to initialize userinfo service")
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", apperror.Wrap(err, http.StatusUnauthorized, "failed to fetch user info")
	}
	if info.Email == "" {
		return "", ErrEmailNotFound
	}

	return info.Email, nil
}
