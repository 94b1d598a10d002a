package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/finsync/client/auth/store"
)

// Record is the persisted session.
type Record struct {
	ID           string    `json:"id" yaml:"id"`
	BaseURL      string    `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	APIKey       string    `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	Token        string    `json:"token" yaml:"token"`
	RefreshToken string    `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt" yaml:"expiresAt"`
	ConnectedAt  time.Time `json:"connectedAt" yaml:"connectedAt"`
	RefreshedAt  time.Time `json:"refreshedAt" yaml:"refreshedAt"`
}

// Config returns the transport configuration of the record.
func (r *Record) Config() store.Config {
	return store.Config{BaseURL: r.BaseURL, APIKey: r.APIKey, Token: r.Token}
}

// Expired reports whether the token expiry is known and not after now.
func (r *Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// Clone returns a copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	ret := *r
	return &ret
}

// tokenExpiry returns the exp claim of a JWT token, zero when token is opaque.
// The signature is not verified; the value is informational.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}
	}
	return expiry.Time
}
