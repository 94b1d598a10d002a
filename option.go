package finsync

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/viant/finsync/client/session"
)

// Option supplies runtime collaborators that cannot be expressed in Options.
type Option func(*dependencies)

// WithTransport sets the underlying HTTP transport
func WithTransport(transport http.RoundTripper) Option {
	return func(d *dependencies) {
		d.transport = transport
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Logger) Option {
	return func(d *dependencies) {
		d.logger = logger
	}
}

// WithRegisterer sets the prometheus registerer of client metrics
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(d *dependencies) {
		d.registerer = registerer
	}
}

// WithStorage sets session storage, overriding Options.Session
func WithStorage(storage session.Storage) Option {
	return func(d *dependencies) {
		d.storage = storage
	}
}

// WithOnExpired sets the hook notified once an expired session has been dropped
func WithOnExpired(fn func()) Option {
	return func(d *dependencies) {
		d.onExpired = fn
	}
}
