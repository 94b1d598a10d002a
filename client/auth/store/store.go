package store

import (
	"context"
	"sync"
)

// DefaultBaseURL is used to resolve relative paths when no base URL is configured.
const DefaultBaseURL = "http://localhost:3001"

// Config holds network credentials. An empty field is treated as absent.
type Config struct {
	BaseURL string `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	APIKey  string `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	Token   string `yaml:"token,omitempty" json:"token,omitempty"`
}

// Merge returns a copy of c with every non-empty field of partial applied.
func (c Config) Merge(partial Config) Config {
	if partial.BaseURL != "" {
		c.BaseURL = partial.BaseURL
	}
	if partial.APIKey != "" {
		c.APIKey = partial.APIKey
	}
	if partial.Token != "" {
		c.Token = partial.Token
	}
	return c
}

// IsZero reports whether no field is set.
func (c Config) IsZero() bool {
	return c == Config{}
}

// RefreshHandler exchanges stale credentials for a new bearer token.
// An empty token with a nil error means no token could be obtained.
type RefreshHandler func(ctx context.Context) (string, error)

// AuthExpiredCallback is notified once per request cycle that ends with an
// expired session.
type AuthExpiredCallback func()

// Store holds the configuration and callback registrations used by the transport.
type Store interface {
	Configure(partial Config)
	Config() Config
	Clear()
	SetRefreshHandler(handler RefreshHandler)
	RefreshHandler() RefreshHandler
	SetAuthExpiredCallback(callback AuthExpiredCallback)
	AuthExpiredCallback() AuthExpiredCallback
}

type MemoryStoreOption func(*memoryStore)

// WithConfig seeds the store with an initial configuration.
func WithConfig(config Config) MemoryStoreOption {
	return func(m *memoryStore) {
		m.config = config
	}
}

// WithRefreshHandler registers a refresh handler at construction.
func WithRefreshHandler(handler RefreshHandler) MemoryStoreOption {
	return func(m *memoryStore) {
		m.refreshHandler = handler
	}
}

// WithAuthExpiredCallback registers an auth-expired callback at construction.
func WithAuthExpiredCallback(callback AuthExpiredCallback) MemoryStoreOption {
	return func(m *memoryStore) {
		m.onAuthExpired = callback
	}
}

type memoryStore struct {
	mu             sync.RWMutex
	config         Config
	refreshHandler RefreshHandler
	onAuthExpired  AuthExpiredCallback
}

func (m *memoryStore) Configure(partial Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = m.config.Merge(partial)
}

func (m *memoryStore) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *memoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = Config{}
	m.refreshHandler = nil
}

func (m *memoryStore) SetRefreshHandler(handler RefreshHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshHandler = handler
}

func (m *memoryStore) RefreshHandler() RefreshHandler {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshHandler
}

func (m *memoryStore) SetAuthExpiredCallback(callback AuthExpiredCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onAuthExpired = callback
}

func (m *memoryStore) AuthExpiredCallback() AuthExpiredCallback {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.onAuthExpired
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
