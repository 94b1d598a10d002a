// Package finsync assembles the authenticated HTTP client used by the finance
// app: credential store, request dispatcher with single-flight token refresh,
// and the session lifecycle.
//
// NewClient accepts an Options structure that can be populated from CLI flags
// or a YAML configuration file.
//
// Example:
//
//	cli, _ := finsync.NewClient(ctx, &finsync.Options{BaseURL: "https://api.example.com"})
//	_ = cli.Session.Connect(ctx, &session.Record{Token: token, RefreshToken: refreshToken})
//	resp, err := cli.Request(ctx, "/transactions")
package finsync
