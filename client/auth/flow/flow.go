package flow

import (
	"context"

	"golang.org/x/oauth2"
)

// Refresher exchanges a refresh token for a new token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(ctx context.Context, refreshToken string) (*oauth2.Token, error)

func (f RefresherFunc) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	return f(ctx, refreshToken)
}

// preserveRefreshToken keeps the previous refresh token when the provider omitted it.
func preserveRefreshToken(token *oauth2.Token, previous string) *oauth2.Token {
	if token != nil && token.RefreshToken == "" {
		token.RefreshToken = previous
	}
	return token
}
