package transport

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/viant/finsync/client/auth/store"
)

type Option func(*Client)

// WithStore sets the credential store
func WithStore(store store.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithTransport sets the underlying transport used to perform requests
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics sets metrics collectors
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithAuthExpiredMessage overrides the message carried by *AuthExpiredError
func WithAuthExpiredMessage(message string) Option {
	return func(c *Client) {
		c.authExpiredMessage = message
	}
}

// WithRequestIDHeader attaches a generated request ID under header unless the caller sets one.
// The same ID is sent on the post-refresh replay.
func WithRequestIDHeader(header string) Option {
	return func(c *Client) {
		c.requestIDHeader = header
	}
}
