package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/viant/finsync/client/auth/flow"
	"github.com/viant/finsync/client/auth/store"
)

// ErrNoSession is returned by Restore when nothing was persisted.
var ErrNoSession = errors.New("no session")

// Dispatcher is the registration surface of the authenticated transport.
type Dispatcher interface {
	Configure(partial store.Config)
	Clear()
	SetRefreshHandler(handler store.RefreshHandler)
	SetAuthExpiredCallback(callback store.AuthExpiredCallback)
}

// Manager owns the session lifecycle.
type Manager struct {
	dispatcher Dispatcher
	storage    Storage
	key        string
	refresher  flow.Refresher
	defaults   store.Config
	onExpired  func()
	logger     *logrus.Entry
	now        func() time.Time

	mux     sync.RWMutex
	current *Record
}

// Current returns a copy of the active session, nil when disconnected.
func (m *Manager) Current() *Record {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return m.current.Clone()
}

// Connect persists record and activates it on the dispatcher.
func (m *Manager) Connect(ctx context.Context, record *Record) error {
	if record == nil || record.Token == "" {
		return errors.New("session token was empty")
	}
	active := record.Clone()
	if active.ID == "" {
		active.ID = uuid.New().String()
	}
	if active.ConnectedAt.IsZero() {
		active.ConnectedAt = m.now()
	}
	if active.ExpiresAt.IsZero() {
		active.ExpiresAt = tokenExpiry(active.Token)
	}
	if err := m.persist(ctx, active); err != nil {
		return err
	}
	m.activate(active)
	m.logger.WithField("session", active.ID).Info("session connected")
	return nil
}

// Restore loads the persisted session and activates it.
func (m *Manager) Restore(ctx context.Context) (*Record, error) {
	data, err := m.storage.Load(ctx, m.key)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	record := &Record{}
	if err = json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if record.Token == "" {
		return nil, ErrNoSession
	}
	m.activate(record)
	m.logger.WithField("session", record.ID).Info("session restored")
	return record.Clone(), nil
}

// Disconnect deletes the persisted session and clears the dispatcher.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mux.Lock()
	m.current = nil
	m.mux.Unlock()
	m.reset()
	if err := m.storage.Delete(ctx, m.key); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	m.logger.Info("session disconnected")
	return nil
}

func (m *Manager) activate(record *Record) {
	m.mux.Lock()
	m.current = record
	m.mux.Unlock()
	m.dispatcher.Clear()
	m.dispatcher.Configure(m.defaults)
	m.dispatcher.Configure(record.Config())
	if m.refresher != nil {
		m.dispatcher.SetRefreshHandler(m.refresh)
	}
	m.dispatcher.SetAuthExpiredCallback(m.expired)
}

// reset drops session credentials, keeping the configured defaults.
func (m *Manager) reset() {
	m.dispatcher.Clear()
	m.dispatcher.SetAuthExpiredCallback(nil)
	m.dispatcher.Configure(m.defaults)
}

// refresh is registered as the dispatcher refresh handler.
func (m *Manager) refresh(ctx context.Context) (string, error) {
	current := m.Current()
	if current == nil || current.RefreshToken == "" {
		return "", nil
	}
	token, err := m.refresher.Refresh(ctx, current.RefreshToken)
	if err != nil {
		return "", err
	}
	if token == nil || token.AccessToken == "" {
		return "", nil
	}
	current.Token = token.AccessToken
	if token.RefreshToken != "" {
		current.RefreshToken = token.RefreshToken
	}
	current.ExpiresAt = token.Expiry
	if current.ExpiresAt.IsZero() {
		current.ExpiresAt = tokenExpiry(token.AccessToken)
	}
	current.RefreshedAt = m.now()

	m.mux.Lock()
	stale := m.current == nil || m.current.ID != current.ID
	if !stale {
		m.current = current
	}
	m.mux.Unlock()
	if stale {
		// the session was replaced or dropped while refreshing; nothing to persist
		return token.AccessToken, nil
	}
	if err = m.persist(ctx, current); err != nil {
		// the new token is still valid for this process
		m.logger.WithError(err).Warn("failed to persist refreshed session")
	}
	return token.AccessToken, nil
}

// expired is registered as the dispatcher auth-expired callback.
func (m *Manager) expired() {
	m.mux.Lock()
	previous := m.current
	m.current = nil
	m.mux.Unlock()
	if previous == nil {
		return
	}
	m.reset()
	if err := m.storage.Delete(context.Background(), m.key); err != nil && !errors.Is(err, ErrNotFound) {
		m.logger.WithError(err).Warn("failed to delete expired session")
	}
	m.logger.WithField("session", previous.ID).Warn("session expired")
	if m.onExpired != nil {
		m.onExpired()
	}
}

func (m *Manager) persist(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return m.storage.Save(ctx, m.key, data)
}

// NewManager creates a session manager for dispatcher
func NewManager(dispatcher Dispatcher, options ...Option) *Manager {
	ret := &Manager{
		dispatcher: dispatcher,
		storage:    NewMemoryStorage(),
		key:        DefaultKey,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		ret.logger = logrus.NewEntry(logger)
	}
	return ret
}
