package flow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/viant/finsync/client/auth/transport"
	"golang.org/x/oauth2"
)

// DefaultRefreshPath is the server route exchanging a refresh token.
const DefaultRefreshPath = "/auth/refresh"

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
}

// EndpointRefresher exchanges a refresh token through the server refresh route.
// The call never triggers a nested refresh.
type EndpointRefresher struct {
	Client *transport.Client
	Path   string
}

func (r *EndpointRefresher) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token was empty")
	}
	path := r.Path
	if path == "" {
		path = DefaultRefreshPath
	}
	resp, err := r.Client.Request(ctx, path,
		transport.WithMethod(http.MethodPost),
		transport.WithBody(&refreshRequest{RefreshToken: refreshToken}),
		transport.WithSkipAuthRefresh(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	output, err := transport.Decode[refreshResponse](resp)
	if err != nil {
		return nil, err
	}
	if output.Token == "" {
		return nil, errors.New("refresh response did not include a token")
	}
	ret := &oauth2.Token{AccessToken: output.Token, TokenType: "Bearer", RefreshToken: output.RefreshToken}
	if output.ExpiresIn > 0 {
		ret.Expiry = time.Now().Add(time.Duration(output.ExpiresIn) * time.Second)
	}
	return preserveRefreshToken(ret, refreshToken), nil
}

// NewEndpointRefresher creates an endpoint refresher
func NewEndpointRefresher(client *transport.Client, path string) *EndpointRefresher {
	return &EndpointRefresher{Client: client, Path: path}
}
