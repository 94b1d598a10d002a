package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/finsync"
	"github.com/viant/finsync/client/auth/transport"
	"github.com/viant/finsync/client/session"
)

func Run(args []string) error {
	return run(context.Background(), args, os.Stdout)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if options.ConfigURL != "" {
		if err := loadConfig(ctx, afs.New(), options.ConfigURL, &options.Client); err != nil {
			return err
		}
		// flags take precedence over the config file
		if _, err := parser.ParseArgs(args); err != nil {
			return err
		}
	}
	options.Init()
	client, err := finsync.NewClient(ctx, &options.Client)
	if err != nil {
		return err
	}
	switch parser.Active.Name {
	case "connect":
		return connect(ctx, client, options, w)
	case "request":
		return request(ctx, client, &options.Request, w)
	case "status":
		return status(ctx, client, w)
	case "disconnect":
		return client.Session.Disconnect(ctx)
	}
	return fmt.Errorf("unsupported command: %v", parser.Active.Name)
}

func connect(ctx context.Context, client *finsync.Client, options *Options, w io.Writer) error {
	record := &session.Record{
		BaseURL:      options.Client.BaseURL,
		APIKey:       options.Client.APIKey,
		Token:        options.Connect.Token,
		RefreshToken: options.Connect.RefreshToken,
	}
	if err := client.Session.Connect(ctx, record); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "connected %v\n", client.Session.Current().ID)
	return err
}

func request(ctx context.Context, client *finsync.Client, command *RequestCommand, w io.Writer) error {
	if _, err := client.Session.Restore(ctx); err != nil && !errors.Is(err, session.ErrNoSession) {
		return err
	}
	options := []transport.RequestOption{transport.WithMethod(command.Method)}
	if command.Body != "" {
		options = append(options, transport.WithBody(command.Body))
	}
	resp, err := client.Request(ctx, command.Args.Path, options...)
	if err != nil {
		return err
	}
	if text, ok := resp.Data.(string); ok {
		_, err = fmt.Fprintln(w, text)
		return err
	}
	return printJSON(w, resp.Data)
}

type sessionStatus struct {
	ID          string     `json:"id"`
	BaseURL     string     `json:"baseURL,omitempty"`
	ConnectedAt time.Time  `json:"connectedAt"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Expired     bool       `json:"expired"`
	Refreshable bool       `json:"refreshable"`
}

func status(ctx context.Context, client *finsync.Client, w io.Writer) error {
	record, err := client.Session.Restore(ctx)
	if errors.Is(err, session.ErrNoSession) {
		_, err = fmt.Fprintln(w, "no session")
		return err
	}
	if err != nil {
		return err
	}
	return printJSON(w, &sessionStatus{
		ID:          record.ID,
		BaseURL:     record.BaseURL,
		ConnectedAt: record.ConnectedAt,
		RefreshedAt: optionalTime(record.RefreshedAt),
		ExpiresAt:   optionalTime(record.ExpiresAt),
		Expired:     record.Expired(time.Now()),
		Refreshable: record.RefreshToken != "",
	})
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func printJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
