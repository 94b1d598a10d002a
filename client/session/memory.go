package session

import (
	"context"

	"github.com/viant/finsync/internal/collection"
)

// MemoryStorage keeps sessions in process memory.
type MemoryStorage struct {
	items *collection.SyncMap[string, []byte]
}

func (s *MemoryStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, ok := s.items.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStorage) Save(ctx context.Context, key string, data []byte) error {
	s.items.Put(key, append([]byte(nil), data...))
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: collection.NewSyncMap[string, []byte]()}
}
