package mock

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

const (
	accessTokenType  = "access_token"
	refreshTokenType = "refresh_token"
)

// AuthorizationService simulates the finance server's token endpoints
type AuthorizationService struct {
	PrivateKey      *rsa.PrivateKey
	Issuer          string
	ClientID        string
	ClientSecret    string
	Subject         string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	TokenHandler    func(w http.ResponseWriter, r *http.Request)
	RefreshHandler  func(w http.ResponseWriter, r *http.Request)
	ResourceHandler func(w http.ResponseWriter, r *http.Request)

	refreshCount int64
	mux          sync.RWMutex
	revoked      map[string]bool
}

type Option func(*AuthorizationService)

// WithAccessTokenTTL sets access token lifetime
func WithAccessTokenTTL(ttl time.Duration) Option {
	return func(s *AuthorizationService) {
		s.AccessTokenTTL = ttl
	}
}

// WithClient sets OAuth2 client credentials
func WithClient(clientID, clientSecret string) Option {
	return func(s *AuthorizationService) {
		s.ClientID = clientID
		s.ClientSecret = clientSecret
	}
}

// NewAuthorizationService creates a new mock authorization server
func NewAuthorizationService(opts ...Option) (*AuthorizationService, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %v", err)
	}
	service := &AuthorizationService{
		PrivateKey:      privateKey,
		ClientID:        "test_client_id",
		ClientSecret:    "test_client_secret",
		Subject:         "test_subject",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
		revoked:         map[string]bool{},
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// RefreshCount returns the number of successful token refreshes.
func (m *AuthorizationService) RefreshCount() int {
	return int(atomic.LoadInt64(&m.refreshCount))
}

// Revoke makes the resource endpoint reject token.
func (m *AuthorizationService) Revoke(token string) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.revoked[token] = true
}

func (m *AuthorizationService) isRevoked(token string) bool {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return m.revoked[token]
}

// IssueTokens mints an access and refresh token pair.
func (m *AuthorizationService) IssueTokens() (accessToken, refreshToken string, err error) {
	if accessToken, err = m.createJWT(m.ClientID, accessTokenType, m.AccessTokenTTL); err != nil {
		return "", "", err
	}
	if refreshToken, err = m.createJWT(m.ClientID, refreshTokenType, m.RefreshTokenTTL); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ServeHTTP dispatches incoming requests based on URL path.
func (m *AuthorizationService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/token":
		m.dispatch(w, r, m.TokenHandler, m.defaultTokenHandler)
	case "/auth/refresh":
		m.dispatch(w, r, m.RefreshHandler, m.defaultRefreshHandler)
	case "/resource":
		m.dispatch(w, r, m.ResourceHandler, m.defaultResourceHandler)
	default:
		http.NotFound(w, r)
	}
}

func (m *AuthorizationService) dispatch(w http.ResponseWriter, r *http.Request, custom, fallback http.HandlerFunc) {
	if custom != nil {
		custom(w, r)
		return
	}
	fallback(w, r)
}

// Handler returns an http.Handler for all mock endpoints
func (m *AuthorizationService) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", m)
	return mux
}
