// Package mock provides an in-process authorization and resource server used
// to exercise the token refresh protocol in tests and the CLI demo.
//
// Access and refresh tokens are RS256 JWTs. The server exposes the OAuth2
// `/token` endpoint (refresh_token grant), the JSON `/auth/refresh` route and a
// protected `/resource` that rejects expired or revoked access tokens with
// `401 Unauthorized`.
package mock
