package session

import (
	"bytes"
	"context"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// FileStorage persists sessions as JSON objects under a viant/afs base URL,
// e.g. a local directory, mem://localhost/sessions or a cloud bucket.
type FileStorage struct {
	baseURL string
	fs      afs.Service
}

// URL returns the object URL for key.
func (s *FileStorage) URL(key string) string {
	return url.Join(s.baseURL, key+".json")
}

func (s *FileStorage) Load(ctx context.Context, key string) ([]byte, error) {
	URL := s.URL(key)
	ok, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, &StorageError{Operation: "load", Key: URL, Cause: err}
	}
	if !ok {
		return nil, ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, &StorageError{Operation: "load", Key: URL, Cause: err}
	}
	return data, nil
}

func (s *FileStorage) Save(ctx context.Context, key string, data []byte) error {
	URL := s.URL(key)
	if err := s.fs.Upload(ctx, URL, 0o600, bytes.NewReader(data)); err != nil {
		return &StorageError{Operation: "save", Key: URL, Cause: err}
	}
	return nil
}

func (s *FileStorage) Delete(ctx context.Context, key string) error {
	URL := s.URL(key)
	ok, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return &StorageError{Operation: "delete", Key: URL, Cause: err}
	}
	if !ok {
		return nil
	}
	if err = s.fs.Delete(ctx, URL); err != nil {
		return &StorageError{Operation: "delete", Key: URL, Cause: err}
	}
	return nil
}

// NewFileStorage creates a storage rooted at baseURL
func NewFileStorage(baseURL string) *FileStorage {
	return &FileStorage{baseURL: baseURL, fs: afs.New()}
}
