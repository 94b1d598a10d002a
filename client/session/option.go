package session

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/finsync/client/auth/flow"
	"github.com/viant/finsync/client/auth/store"
)

// DefaultKey is the storage key of the session record.
const DefaultKey = "finsync.session"

type Option func(*Manager)

// WithStorage sets storage
func WithStorage(storage Storage) Option {
	return func(m *Manager) {
		m.storage = storage
	}
}

// WithKey sets storage key
func WithKey(key string) Option {
	return func(m *Manager) {
		m.key = key
	}
}

// WithRefresher sets the refresh flow; without one refresh stays disabled.
func WithRefresher(refresher flow.Refresher) Option {
	return func(m *Manager) {
		m.refresher = refresher
	}
}

// WithDefaults sets the configuration applied under every session and restored once it ends.
func WithDefaults(config store.Config) Option {
	return func(m *Manager) {
		m.defaults = config
	}
}

// WithOnExpired sets a hook called after an expired session has been dropped.
func WithOnExpired(fn func()) Option {
	return func(m *Manager) {
		m.onExpired = fn
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Entry) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}
