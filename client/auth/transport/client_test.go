package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/finsync/client/auth/store"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// tokenServer accepts "Bearer <valid>" and answers 401 otherwise.
func tokenServer(t *testing.T, valid string, unauthorized *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+valid {
			if unauthorized != nil {
				atomic.AddInt32(unauthorized, 1)
			}
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","path":"` + r.URL.Path + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, options ...Option) *Client {
	t.Helper()
	c, err := New(options...)
	require.NoError(t, err)
	return c
}

func TestClient_Request_DefaultBaseURL(t *testing.T) {
	var requested string
	c := newTestClient(t, WithTransport(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		requested = r.URL.String()
		return jsonResponse(http.StatusOK, `{}`), nil
	})))
	_, err := c.Request(context.Background(), "/test")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001/test", requested)
}

func TestClient_Request_Headers(t *testing.T) {
	testCases := []struct {
		description   string
		config        store.Config
		options       []RequestOption
		expectAPIKey  string
		expectAuth    string
		expectType    string
		expectCustom  string
		expectURLHost string
	}{
		{
			description:   "api key from config",
			config:        store.Config{BaseURL: "http://h:3001", APIKey: "k"},
			expectAPIKey:  "k",
			expectType:    "application/json",
			expectURLHost: "h:3001",
		},
		{
			description:   "call overrides win over config",
			config:        store.Config{BaseURL: "http://h:3001", APIKey: "k", Token: "t"},
			options:       []RequestOption{WithAPIKey("k2"), WithToken("t2")},
			expectAPIKey:  "k2",
			expectAuth:    "Bearer t2",
			expectType:    "application/json",
			expectURLHost: "h:3001",
		},
		{
			description:   "caller headers win over defaults",
			config:        store.Config{Token: "t"},
			options:       []RequestOption{WithHeader("content-type", "text/csv"), WithHeader("X-Custom", "1")},
			expectAuth:    "Bearer t",
			expectType:    "text/csv",
			expectCustom:  "1",
			expectURLHost: "localhost:3001",
		},
	}
	for _, testCase := range testCases {
		var captured *http.Request
		c := newTestClient(t,
			WithStore(store.NewMemoryStore(store.WithConfig(testCase.config))),
			WithTransport(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				captured = r
				return jsonResponse(http.StatusOK, `{}`), nil
			})))
		_, err := c.Request(context.Background(), "/accounts", testCase.options...)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectAPIKey, captured.Header.Get("X-API-Key"), testCase.description)
		assert.Equal(t, testCase.expectAuth, captured.Header.Get("Authorization"), testCase.description)
		assert.Equal(t, testCase.expectType, captured.Header.Get("Content-Type"), testCase.description)
		assert.Equal(t, testCase.expectCustom, captured.Header.Get("X-Custom"), testCase.description)
		assert.Equal(t, testCase.expectURLHost, captured.URL.Host, testCase.description)
	}
}

func TestClient_Request_AbsoluteURL(t *testing.T) {
	server := tokenServer(t, "t", nil)
	c := newTestClient(t, WithStore(store.NewMemoryStore(store.WithConfig(store.Config{BaseURL: "http://unused:1", Token: "t"}))))
	resp, err := c.Request(context.Background(), server.URL+"/direct")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "/direct", resp.Data.(map[string]any)["path"])
}

func TestClient_Request_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Plain text response"))
	}))
	defer server.Close()
	c := newTestClient(t)
	resp, err := c.Request(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Plain text response", resp.Data)
}

func TestClient_Request_Decode(t *testing.T) {
	server := tokenServer(t, "t", nil)
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	resp, err := c.Request(context.Background(), "/balances")
	require.NoError(t, err)
	type status struct {
		Status string `json:"status"`
		Path   string `json:"path"`
	}
	actual, err := Decode[status](resp)
	require.NoError(t, err)
	assert.Equal(t, status{Status: "ok", Path: "/balances"}, actual)
}

func TestClient_Request_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid amount"}`))
	}))
	defer server.Close()
	c := newTestClient(t)
	_, err := c.Request(context.Background(), server.URL, WithMethod(http.MethodPost), WithBody(map[string]any{"amount": -1}))
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, map[string]any{"error": "invalid amount"}, httpErr.Data)
}

func TestClient_Request_NetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	c := newTestClient(t, WithTransport(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, cause
	})))
	_, err := c.Request(context.Background(), "/test")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "http://localhost:3001/test", netErr.URL)

	passthrough := &NetworkError{Method: http.MethodGet, URL: "x", Err: cause}
	c = newTestClient(t, WithTransport(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, passthrough
	})))
	_, err = c.Request(context.Background(), "/test")
	assert.Same(t, passthrough, err)
}

func TestClient_Request_NoRefreshHandler(t *testing.T) {
	server := tokenServer(t, "never", nil)
	expired := 0
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetAuthExpiredCallback(func() { expired++ })

	_, err := c.Request(context.Background(), "/test")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.False(t, IsAuthExpired(err))
	assert.Equal(t, 0, expired)
}

func TestClient_Request_SkipAuthRefresh(t *testing.T) {
	server := tokenServer(t, "t2", nil)
	var calls int32
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "t2", nil
	})
	_, err := c.Request(context.Background(), "/test", WithSkipAuthRefresh(true))
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestClient_Request_RefreshAndReplay(t *testing.T) {
	var authHeaders []string
	var mux sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mux.Lock()
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		mux.Unlock()
		assert.JSONEq(t, `{"amount":12.5,"payee":"market"}`, string(body))
		if r.Header.Get("Authorization") != "Bearer t2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"tx-1"}`))
	}))
	defer server.Close()

	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) { return "t2", nil })

	resp, err := c.Request(context.Background(), "/transactions",
		WithMethod(http.MethodPost),
		WithBody(map[string]any{"amount": 12.5, "payee": "market"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, []string{"Bearer t", "Bearer t2"}, authHeaders)
	assert.Equal(t, "t2", c.Config().Token)
}

func TestClient_Request_TokenPropagation(t *testing.T) {
	server := tokenServer(t, "t2", nil)
	var calls int32
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "t2", nil
	})
	_, err := c.Request(context.Background(), "/first")
	require.NoError(t, err)
	_, err = c.Request(context.Background(), "/second")
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestClient_Request_RefreshFailure(t *testing.T) {
	testCases := []struct {
		description string
		handler     store.RefreshHandler
	}{
		{
			description: "handler returns no token",
			handler:     func(ctx context.Context) (string, error) { return "", nil },
		},
		{
			description: "handler fails",
			handler:     func(ctx context.Context) (string, error) { return "", errors.New("refresh rejected") },
		},
		{
			description: "handler panics",
			handler:     func(ctx context.Context) (string, error) { panic("boom") },
		},
		{
			description: "replay still unauthorized",
			handler:     func(ctx context.Context) (string, error) { return "still-stale", nil },
		},
	}
	for _, testCase := range testCases {
		server := tokenServer(t, "t2", nil)
		var events []string
		c := newTestClient(t)
		c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
		c.SetRefreshHandler(testCase.handler)
		c.SetAuthExpiredCallback(func() { events = append(events, "callback") })

		_, err := c.Request(context.Background(), "/test")
		events = append(events, "error")
		var expired *AuthExpiredError
		require.ErrorAs(t, err, &expired, testCase.description)
		assert.Equal(t, http.StatusUnauthorized, expired.Status, testCase.description)
		assert.Equal(t, ErrorCodeAuthExpired, expired.Code, testCase.description)
		assert.Equal(t, DefaultAuthExpiredMessage, expired.Message, testCase.description)
		assert.Equal(t, []string{"callback", "error"}, events, testCase.description)
	}
}

func TestClient_Request_AuthExpiredCallbackPanic(t *testing.T) {
	server := tokenServer(t, "t2", nil)
	calls := 0
	c := newTestClient(t, WithAuthExpiredMessage("please reconnect your budget"))
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) { return "", nil })
	c.SetAuthExpiredCallback(func() {
		calls++
		panic("ui not ready")
	})
	_, err := c.Request(context.Background(), "/test")
	var expired *AuthExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, "please reconnect your budget", expired.Message)
	assert.Equal(t, 1, calls)
}

// arrivalServer holds every response until expected requests arrived, so all
// of them are sent with the token stored before any refresh.
func arrivalServer(t *testing.T, valid string, expected int, delay func(first bool)) *httptest.Server {
	t.Helper()
	var arrivals, responses int32
	all := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") == "Bearer "+valid {
			_, _ = w.Write([]byte(`{"status":"ok"}`))
			return
		}
		if atomic.AddInt32(&arrivals, 1) == int32(expected) {
			close(all)
		}
		select {
		case <-all:
		case <-time.After(5 * time.Second):
		}
		if delay != nil {
			delay(atomic.AddInt32(&responses, 1) == 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func requestConcurrently(c *Client, concurrency int, path string) ([]int, []error) {
	var wg sync.WaitGroup
	errs := make([]error, concurrency)
	statuses := make([]int, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := c.Request(context.Background(), path)
			errs[i] = err
			if resp != nil {
				statuses[i] = resp.Status
			}
		}(i)
	}
	wg.Wait()
	return statuses, errs
}

func TestClient_Request_SingleFlight(t *testing.T) {
	const concurrency = 5
	server := arrivalServer(t, "t2", concurrency, nil)

	var calls int32
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "t2", nil
	})

	statuses, errs := requestConcurrently(c, concurrency, "/sync")
	for i := 0; i < concurrency; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Equal(t, "t2", c.Config().Token)
}

func TestClient_Request_LateUnauthorizedReusesRefreshedToken(t *testing.T) {
	const concurrency = 5
	refreshed := make(chan struct{})
	server := arrivalServer(t, "t2", concurrency, func(first bool) {
		if first {
			return
		}
		// remaining rejections land after the shared refresh settled
		<-refreshed
		time.Sleep(20 * time.Millisecond)
	})

	var calls int32
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			defer close(refreshed)
		}
		return "t2", nil
	})

	statuses, errs := requestConcurrently(c, concurrency, "/sync")
	for i := 0; i < concurrency; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "refresh handler calls for %d concurrent 401s", concurrency)
}

func TestClient_Request_ExplicitTokenStillRefreshes(t *testing.T) {
	server := tokenServer(t, "t3", nil)
	calls := 0
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t2"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		calls++
		return "t3", nil
	})
	resp, err := c.Request(context.Background(), "/test", WithToken("caller"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, 1, calls)
}

func TestClient_Request_NotBlockedByRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/public" || r.Header.Get("Authorization") == "Bearer t2" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	release := make(chan struct{})
	started := make(chan struct{})
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		close(started)
		<-release
		return "t2", nil
	})
	refreshing := make(chan error, 1)
	go func() {
		_, err := c.Request(context.Background(), "/private")
		refreshing <- err
	}()
	<-started

	done := make(chan error, 1)
	go func() {
		_, err := c.Request(context.Background(), "/public")
		done <- err
	}()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("request without 401 waited on the refresh")
	}
	close(release)
	assert.NoError(t, <-refreshing)
}

func TestClient_Request_FollowsRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/old":
			http.Redirect(w, r, "/new", http.StatusFound)
		case "/new":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("moved " + r.Header.Get("Authorization")))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	resp, err := c.Request(context.Background(), "/old")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "moved Bearer t", resp.Data)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithTransport(nil))
	assert.Error(t, err)
	_, err = New(WithStore(nil))
	assert.Error(t, err)
}

func TestClient_Request_JoinerContextCanceled(t *testing.T) {
	server := tokenServer(t, "t2", nil)
	release := make(chan struct{})
	started := make(chan struct{})
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		close(started)
		<-release
		return "t2", nil
	})

	ownerDone := make(chan error, 1)
	go func() {
		_, err := c.Request(context.Background(), "/owner")
		ownerDone <- err
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	joinerDone := make(chan error, 1)
	go func() {
		_, err := c.Request(ctx, "/joiner")
		joinerDone <- err
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-joinerDone, context.Canceled)

	close(release)
	assert.NoError(t, <-ownerDone)
}

func TestClient_Clear(t *testing.T) {
	server := tokenServer(t, "t2", nil)
	release := make(chan struct{})
	started := make(chan struct{})
	c := newTestClient(t)
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) {
		close(started)
		<-release
		return "t2", nil
	})
	done := make(chan error, 1)
	go func() {
		_, err := c.Request(context.Background(), "/test")
		done <- err
	}()
	<-started
	c.Clear()
	close(release)
	<-done
	assert.True(t, c.Config().IsZero(), "a refresh dropped by Clear must not repopulate the store")
	assert.Nil(t, c.Store().RefreshHandler())
}

func TestClient_RequestIDHeader(t *testing.T) {
	var ids []string
	var mux sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.Lock()
		ids = append(ids, r.Header.Get("X-Request-ID"))
		mux.Unlock()
		if r.Header.Get("Authorization") != "Bearer t2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	c := newTestClient(t, WithRequestIDHeader("X-Request-ID"))
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) { return "t2", nil })
	resp, err := c.Request(context.Background(), "/test")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.Status)
	mux.Lock()
	defer mux.Unlock()
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])
}

func TestClient_Metrics(t *testing.T) {
	server := tokenServer(t, "t2", nil)
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(t, err)
	c := newTestClient(t, WithMetrics(metrics))
	c.Configure(store.Config{BaseURL: server.URL, Token: "t"})
	c.SetRefreshHandler(func(ctx context.Context) (string, error) { return "t2", nil })
	_, err = c.Request(context.Background(), "/test")
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("401")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.refreshes.WithLabelValues(refreshSuccess)))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.refreshInFlight))

	c.SetRefreshHandler(func(ctx context.Context) (string, error) { return "", nil })
	c.Configure(store.Config{Token: "stale"})
	_, err = c.Request(context.Background(), "/test")
	assert.True(t, IsAuthExpired(err))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.authExpired))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.refreshes.WithLabelValues(refreshEmpty)))

	_, err = NewMetrics(registry)
	assert.Error(t, err)
}

func TestUtil_ResolveURL(t *testing.T) {
	testCases := []struct {
		baseURL string
		path    string
		expect  string
	}{
		{baseURL: "", path: "/test", expect: "http://localhost:3001/test"},
		{baseURL: "http://h:3001/", path: "/test", expect: "http://h:3001/test"},
		{baseURL: "http://h:3001", path: "test?x=1", expect: "http://h:3001/test?x=1"},
		{baseURL: "http://h:3001", path: "https://sheets.example.com/v4", expect: "https://sheets.example.com/v4"},
		{baseURL: "http://h:3001/api", path: "", expect: "http://h:3001/api"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, resolveURL(testCase.baseURL, testCase.path), testCase.path)
	}
}

func TestResponse_JSONFailureBody(t *testing.T) {
	resp, err := readResponse(&http.Response{
		StatusCode: http.StatusBadGateway,
		Header:     http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:       io.NopCloser(strings.NewReader("upstream down")),
	})
	require.NoError(t, err)
	assert.Equal(t, "upstream down", resp.Data)

	_, err = readResponse(jsonResponse(http.StatusOK, "{broken"))
	assert.Error(t, err)

	payload, _ := json.Marshal(map[string]int{"n": 1})
	resp, err = readResponse(jsonResponse(http.StatusOK, string(payload)))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": float64(1)}, resp.Data)
}
