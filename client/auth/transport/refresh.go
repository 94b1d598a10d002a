package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/finsync/client/auth/store"
)

// refreshCall is one outstanding refresh; done is closed once token is set.
type refreshCall struct {
	done  chan struct{}
	token string
}

// refreshFlight is the single-flight guard: active is non-nil exactly while a
// refresh is outstanding.
type refreshFlight struct {
	mux    sync.Mutex
	active *refreshCall
}

// join returns the outstanding call, or a new one with owner set when idle.
// When current reports a token other than stale, a refresh already settled
// after the rejected attempt was sent; join then returns a settled call with
// that token.
func (f *refreshFlight) join(stale string, current func() string) (call *refreshCall, owner bool) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.active != nil {
		return f.active, false
	}
	if current != nil {
		if token := current(); token != "" && token != stale {
			return settledCall(token), false
		}
	}
	f.active = &refreshCall{done: make(chan struct{})}
	return f.active, true
}

// settle returns to idle before releasing waiters. commit runs under the lock,
// only when call is still active and produced a token.
func (f *refreshFlight) settle(call *refreshCall, token string, commit func(token string)) {
	f.mux.Lock()
	if f.active == call {
		f.active = nil
		if token != "" && commit != nil {
			commit(token)
		}
	}
	f.mux.Unlock()
	call.token = token
	close(call.done)
}

func settledCall(token string) *refreshCall {
	ret := &refreshCall{done: make(chan struct{}), token: token}
	close(ret.done)
	return ret
}

// reset drops the outstanding call; its waiters still receive its result.
func (f *refreshFlight) reset() {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.active = nil
}

// refresh returns a new token, or "" when none could be obtained. It only fails
// when ctx ends before the shared refresh settles. stale is the token the
// rejected attempt carried; with fromStore set, a different token already in
// the store is reused without calling handler.
func (c *Client) refresh(ctx context.Context, handler store.RefreshHandler, stale string, fromStore bool) (string, error) {
	var current func() string
	if fromStore {
		current = func() string { return c.store.Config().Token }
	}
	call, owner := c.flight.join(stale, current)
	if owner {
		// detached so that one caller giving up does not fail the shared refresh
		go c.runRefresh(context.WithoutCancel(ctx), call, handler)
	}
	select {
	case <-call.done:
		return call.token, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Client) runRefresh(ctx context.Context, call *refreshCall, handler store.RefreshHandler) {
	c.metrics.refreshStarted()
	c.logger.Debug("refreshing bearer token")
	token, outcome := c.invokeRefreshHandler(ctx, handler)
	c.metrics.refreshSettled(outcome)
	c.flight.settle(call, token, func(token string) {
		c.store.Configure(store.Config{Token: token})
	})
}

func (c *Client) invokeRefreshHandler(ctx context.Context, handler store.RefreshHandler) (token string, outcome string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.WithField("panic", fmt.Sprint(r)).Error("refresh handler panicked")
			token, outcome = "", refreshPanic
		}
	}()
	token, err := handler(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("refresh handler failed")
		return "", refreshError
	}
	if token == "" {
		return "", refreshEmpty
	}
	return token, refreshSuccess
}
