package cli

import (
	"os"
	"path/filepath"

	"github.com/viant/finsync"
)

type Options struct {
	ConfigURL  string            `short:"f" long:"config" description:"YAML config URL"`
	Client     finsync.Options   `group:"client"`
	Connect    ConnectCommand    `command:"connect" description:"store a session"`
	Request    RequestCommand    `command:"request" description:"issue an authenticated request"`
	Status     StatusCommand     `command:"status" description:"show the stored session"`
	Disconnect DisconnectCommand `command:"disconnect" description:"remove the stored session"`
}

type ConnectCommand struct {
	Token        string `short:"t" long:"token" description:"bearer token" required:"true"`
	RefreshToken string `short:"r" long:"refresh-token" description:"refresh token"`
}

type RequestCommand struct {
	Method string `short:"m" long:"method" description:"HTTP method" default:"GET"`
	Body   string `short:"d" long:"data" description:"request body"`
	Args   struct {
		Path string `positional-arg-name:"path" description:"path or absolute URL" required:"true"`
	} `positional-args:"yes"`
}

type StatusCommand struct{}

type DisconnectCommand struct{}

// Init defaults session storage to ~/.finsync unless redis or a session URL is configured.
func (o *Options) Init() {
	session := &o.Client.Session
	if session.URL == "" && session.RedisAddr == "" {
		if home, err := os.UserHomeDir(); err == nil {
			session.URL = filepath.Join(home, ".finsync")
		}
	}
	o.Client.Init()
}
