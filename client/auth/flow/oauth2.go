package flow

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// OAuth2Refresher performs the refresh_token grant against an OAuth2 token endpoint.
type OAuth2Refresher struct {
	Config *oauth2.Config
	// HTTPClient is used for the token endpoint when set.
	HTTPClient *http.Client
}

func (r *OAuth2Refresher) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if r.Config == nil {
		return nil, errors.New("oauth2 config was empty")
	}
	if refreshToken == "" {
		return nil, errors.New("refresh token was empty")
	}
	if r.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, r.HTTPClient)
	}
	// an expired token without access token forces the source to use the refresh grant
	source := r.Config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	refreshed, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	return preserveRefreshToken(refreshed, refreshToken), nil
}

// NewOAuth2Refresher creates an OAuth2 refresher
func NewOAuth2Refresher(config *oauth2.Config) *OAuth2Refresher {
	return &OAuth2Refresher{Config: config}
}
