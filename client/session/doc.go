// Package session persists the connected session record and wires it into the
// authenticated transport.
//
// On connect or restore the Manager configures the transport with the session
// credentials, registers a refresh handler backed by a flow.Refresher, and an
// auth-expired callback that drops the stored session. Disconnect reverses it.
//
// Storage backends: MemoryStorage, FileStorage (any viant/afs URL) and
// RedisStorage.
package session
