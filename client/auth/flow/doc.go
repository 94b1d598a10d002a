// Package flow provides refresh flows that exchange a refresh token for a new
// bearer token. The session package registers one of them as the transport's
// refresh handler.
package flow
