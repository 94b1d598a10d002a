package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/finsync"
)

func TestLoadConfig(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "finsync.yaml")
	require.NoError(t, os.WriteFile(URL, []byte(`
baseURL: https://finance.example.com
apiKey: app-key
logLevel: debug
session:
  redisAddr: localhost:6379
  ttlSeconds: 3600
refresh:
  oauth2ConfigURL: /etc/finsync/oauth2.json
`), 0o600))
	options := &finsync.Options{}
	require.NoError(t, loadConfig(context.Background(), afs.New(), URL, options))
	assert.Equal(t, finsync.Options{
		BaseURL:  "https://finance.example.com",
		APIKey:   "app-key",
		LogLevel: "debug",
		Session:  finsync.SessionOptions{RedisAddr: "localhost:6379", TTLSeconds: 3600},
		Refresh:  finsync.RefreshOptions{OAuth2ConfigURL: "/etc/finsync/oauth2.json"},
	}, *options)

	require.NoError(t, os.WriteFile(URL, []byte("baseURL: [\n"), 0o600))
	assert.Error(t, loadConfig(context.Background(), afs.New(), URL, options))
}

func TestOptions_Init(t *testing.T) {
	options := &Options{}
	options.Init()
	assert.NotEmpty(t, options.Client.Session.URL)
	assert.Equal(t, "warn", options.Client.LogLevel)

	options = &Options{Client: finsync.Options{Session: finsync.SessionOptions{RedisAddr: "localhost:6379"}}}
	options.Init()
	assert.Empty(t, options.Client.Session.URL)
}
