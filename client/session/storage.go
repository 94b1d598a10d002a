package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Storage.Load when the key has no value.
var ErrNotFound = errors.New("session not found")

// Storage is the key-value store holding the serialized session.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// StorageError indicates a storage backend failure.
type StorageError struct {
	Operation string
	Key       string
	Cause     error
}

func (e *StorageError) Error() string {
	msg := e.Operation + " session"
	if e.Key != "" {
		msg += " " + e.Key
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}
