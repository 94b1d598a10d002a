// Package store defines the credential configuration shared by every request
// issued through the authenticated transport, together with the refresh and
// auth-expired callback registrations.
//
// It currently ships with an in-memory implementation; persistence of a
// session across process restarts is handled by the `session` package, which
// feeds this store through Configure on connect.
package store
