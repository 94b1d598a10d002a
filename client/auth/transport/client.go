package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/viant/finsync/client/auth/store"
)

// Client is the authenticated request dispatcher.
type Client struct {
	store              store.Store
	transport          http.RoundTripper
	httpClient         *http.Client
	logger             *logrus.Entry
	metrics            *Metrics
	authExpiredMessage string
	requestIDHeader    string
	flight             refreshFlight
}

func New(options ...Option) (*Client, error) {
	ret := &Client{
		store:     store.NewMemoryStore(),
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		return nil, errors.New("store was nil")
	}
	if ret.transport == nil {
		return nil, errors.New("transport was nil")
	}
	ret.httpClient = &http.Client{Transport: ret.transport}
	if ret.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		ret.logger = logrus.NewEntry(logger)
	}
	return ret, nil
}

// Store returns the credential store.
func (c *Client) Store() store.Store {
	return c.store
}

// Configure merges partial into the current configuration.
func (c *Client) Configure(partial store.Config) {
	c.store.Configure(partial)
}

// Config returns a snapshot of the current configuration.
func (c *Client) Config() store.Config {
	return c.store.Config()
}

// Clear resets configuration, drops the refresh handler and any outstanding refresh.
func (c *Client) Clear() {
	c.store.Clear()
	c.flight.reset()
}

// SetRefreshHandler registers handler, nil disables refresh.
func (c *Client) SetRefreshHandler(handler store.RefreshHandler) {
	c.store.SetRefreshHandler(handler)
}

// SetAuthExpiredCallback registers callback, nil removes it.
func (c *Client) SetAuthExpiredCallback(callback store.AuthExpiredCallback) {
	c.store.SetAuthExpiredCallback(callback)
}

// Request performs one logical request. A 401 triggers the shared refresh and a
// single replay with the new token, unless WithSkipAuthRefresh is set or no
// refresh handler is registered.
func (c *Client) Request(ctx context.Context, path string, options ...RequestOption) (*Response, error) {
	opts := newRequestOptions(options)
	if c.requestIDHeader != "" && opts.headers.Get(c.requestIDHeader) == "" {
		opts.headers.Set(c.requestIDHeader, uuid.New().String())
	}
	payload, err := opts.payload()
	if err != nil {
		return nil, err
	}
	config := c.store.Config()
	URL := resolveURL(config.BaseURL, path)

	resp, err := c.send(ctx, opts.method, URL, buildHeaders(config, opts, ""), payload)
	if err != nil {
		return nil, err
	}
	if resp.OK() {
		return resp, nil
	}
	if resp.Status == http.StatusUnauthorized && !opts.skipAuthRefresh {
		if handler := c.store.RefreshHandler(); handler != nil {
			return c.refreshAndReplay(ctx, URL, opts, payload, handler, config.Token)
		}
	}
	return nil, &HTTPError{Status: resp.Status, Data: resp.Data}
}

// refreshAndReplay obtains a token newer than stale and replays the request once.
func (c *Client) refreshAndReplay(ctx context.Context, URL string, opts *requestOptions, payload []byte, handler store.RefreshHandler, stale string) (*Response, error) {
	token, err := c.refresh(ctx, handler, stale, opts.token == "")
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, c.expire()
	}
	replay := *opts
	replay.skipAuthRefresh = true
	resp, err := c.send(ctx, replay.method, URL, buildHeaders(c.store.Config(), &replay, token), payload)
	if err != nil {
		return nil, err
	}
	if resp.OK() {
		return resp, nil
	}
	return nil, c.expire()
}

// expire notifies the registered callback and returns the terminal error.
func (c *Client) expire() error {
	c.metrics.expired()
	c.notifyAuthExpired()
	return NewAuthExpiredError(c.authExpiredMessage)
}

func (c *Client) notifyAuthExpired() {
	callback := c.store.AuthExpiredCallback()
	if callback == nil {
		return
	}
	// the notification must not change the outcome of the request cycle
	defer func() {
		if r := recover(); r != nil {
			c.logger.WithField("panic", fmt.Sprint(r)).Warn("auth expired callback panicked")
		}
	}()
	callback()
}

func (c *Client) send(ctx context.Context, method, URL string, header http.Header, payload []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, URL, bodyReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = header
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(method, URL, err)
	}
	c.metrics.observeStatus(resp.StatusCode)
	return readResponse(resp)
}
