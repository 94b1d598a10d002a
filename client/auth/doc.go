// Package auth groups the client side authentication packages.
//
//   - store holds the credential configuration and the registered callbacks.
//   - transport dispatches authenticated requests and coordinates a single
//     token refresh when concurrent requests are rejected with 401.
//   - flow supplies refresh handlers (OAuth2 refresh_token grant, server refresh route).
//   - mock serves an in-process authorization server for tests.
package auth
