package finsync

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/viant/finsync/client/auth/flow"
	"github.com/viant/finsync/client/auth/store"
	"github.com/viant/finsync/client/auth/transport"
	"github.com/viant/finsync/client/session"
	"github.com/viant/scy/auth/authorizer"
)

// Options defines options for configuring a finsync client.
type Options struct {
	BaseURL            string         `yaml:"baseURL,omitempty" json:"baseURL,omitempty" short:"u" long:"url" description:"finance server base URL"`
	APIKey             string         `yaml:"apiKey,omitempty" json:"apiKey,omitempty" short:"k" long:"api-key" description:"static API key"`
	AuthExpiredMessage string         `yaml:"authExpiredMessage,omitempty" json:"authExpiredMessage,omitempty" long:"auth-expired-message" description:"message of the auth expired error"`
	RequestIDHeader    string         `yaml:"requestIDHeader,omitempty" json:"requestIDHeader,omitempty" long:"request-id-header" description:"header carrying a generated request ID"`
	LogLevel           string         `yaml:"logLevel,omitempty" json:"logLevel,omitempty" short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Session            SessionOptions `yaml:"session,omitempty" json:"session,omitempty" group:"session"`
	Refresh            RefreshOptions `yaml:"refresh,omitempty" json:"refresh,omitempty" group:"refresh"`
}

// SessionOptions defines where the session record is persisted.
type SessionOptions struct {
	Key         string `yaml:"key,omitempty" json:"key,omitempty" long:"session-key" description:"session storage key"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty" long:"session-url" description:"afs base URL of session files"`
	RedisAddr   string `yaml:"redisAddr,omitempty" json:"redisAddr,omitempty" long:"redis-addr" description:"redis address of session storage"`
	RedisPrefix string `yaml:"redisPrefix,omitempty" json:"redisPrefix,omitempty" long:"redis-prefix" description:"redis key prefix"`
	TTLSeconds  int    `yaml:"ttlSeconds,omitempty" json:"ttlSeconds,omitempty" long:"session-ttl" description:"redis session ttl in seconds"`
}

// RefreshOptions defines how bearer tokens are refreshed.
type RefreshOptions struct {
	Path            string `yaml:"path,omitempty" json:"path,omitempty" long:"refresh-path" description:"server refresh route"`
	OAuth2ConfigURL string `yaml:"oauth2ConfigURL,omitempty" json:"oauth2ConfigURL,omitempty" long:"oauth2-config" description:"oauth2 client config URL, enables the refresh_token grant"`
	EncryptionKey   string `yaml:"encryptionKey,omitempty" json:"encryptionKey,omitempty" long:"encryption-key" description:"oauth2 config encryption key"`
}

func (o *Options) Init() {
	if o.LogLevel == "" {
		o.LogLevel = "warn"
	}
	if o.RequestIDHeader == "" {
		o.RequestIDHeader = "X-Request-ID"
	}
	if o.Session.Key == "" {
		o.Session.Key = session.DefaultKey
	}
	if o.Session.RedisPrefix == "" {
		o.Session.RedisPrefix = "finsync"
	}
	if o.Refresh.Path == "" {
		o.Refresh.Path = flow.DefaultRefreshPath
	}
}

// Client bundles the authenticated transport with its session lifecycle.
type Client struct {
	*transport.Client
	Session *session.Manager
	Metrics *transport.Metrics
}

// NewClient creates a client configured via Options.
func NewClient(ctx context.Context, options *Options, opts ...Option) (*Client, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	deps := &dependencies{}
	for _, opt := range opts {
		opt(deps)
	}
	logger, err := deps.logrus(options)
	if err != nil {
		return nil, err
	}
	registerer := deps.registerer
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	metrics, err := transport.NewMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	transportOpts := []transport.Option{
		transport.WithLogger(logger.WithField("component", "transport")),
		transport.WithMetrics(metrics),
		transport.WithAuthExpiredMessage(options.AuthExpiredMessage),
		transport.WithRequestIDHeader(options.RequestIDHeader),
	}
	if deps.transport != nil {
		transportOpts = append(transportOpts, transport.WithTransport(deps.transport))
	}
	dispatcher, err := transport.New(transportOpts...)
	if err != nil {
		return nil, err
	}
	refresher, err := options.refresher(ctx, dispatcher)
	if err != nil {
		return nil, err
	}
	storage := deps.storage
	if storage == nil {
		storage = options.storage()
	}
	sessionOpts := []session.Option{
		session.WithStorage(storage),
		session.WithKey(options.Session.Key),
		session.WithRefresher(refresher),
		session.WithDefaults(storeConfig(options)),
		session.WithLogger(logger.WithField("component", "session")),
	}
	if deps.onExpired != nil {
		sessionOpts = append(sessionOpts, session.WithOnExpired(deps.onExpired))
	}
	ret := &Client{
		Client:  dispatcher,
		Session: session.NewManager(dispatcher, sessionOpts...),
		Metrics: metrics,
	}
	ret.Configure(storeConfig(options))
	return ret, nil
}

func storeConfig(options *Options) store.Config {
	return store.Config{BaseURL: options.BaseURL, APIKey: options.APIKey}
}

func (o *Options) refresher(ctx context.Context, dispatcher *transport.Client) (flow.Refresher, error) {
	if o.Refresh.OAuth2ConfigURL == "" {
		return flow.NewEndpointRefresher(dispatcher, o.Refresh.Path), nil
	}
	configURL := o.Refresh.OAuth2ConfigURL
	if o.Refresh.EncryptionKey != "" {
		configURL += "|" + o.Refresh.EncryptionKey
	}
	anAuthorizer := authorizer.New()
	oauthCfg := &authorizer.OAuthConfig{ConfigURL: configURL}
	if err := anAuthorizer.EnsureConfig(ctx, oauthCfg); err != nil {
		return nil, fmt.Errorf("failed to load oauth2 config %q: %w", o.Refresh.OAuth2ConfigURL, err)
	}
	return flow.NewOAuth2Refresher(oauthCfg.Config), nil
}

func (o *Options) storage() session.Storage {
	switch {
	case o.Session.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: o.Session.RedisAddr})
		return session.NewRedisStorage(client, o.Session.RedisPrefix, time.Duration(o.Session.TTLSeconds)*time.Second)
	case o.Session.URL != "":
		return session.NewFileStorage(o.Session.URL)
	default:
		return session.NewMemoryStorage()
	}
}

type dependencies struct {
	transport  http.RoundTripper
	logger     *logrus.Logger
	registerer prometheus.Registerer
	storage    session.Storage
	onExpired  func()
}

func (d *dependencies) logrus(options *Options) (*logrus.Logger, error) {
	if d.logger != nil {
		return d.logger, nil
	}
	level, err := logrus.ParseLevel(options.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", options.LogLevel, err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	return logger, nil
}
