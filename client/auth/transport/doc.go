// Package transport implements the authenticated request dispatcher: it
// attaches the API key and bearer token from the credential store to every
// request and, when the server answers `401 Unauthorized`, coordinates a
// single token refresh shared by every concurrently failing request before
// replaying each of them exactly once.
//
// When no token can be obtained the registered auth-expired callback fires and
// the caller receives an *AuthExpiredError.
//
// The refresh handler runs without any timeout of its own. A handler that
// never returns blocks every request waiting on it until their contexts end.
package transport
