package objectStore

import (
	"context"
	"sync"
)

const memoryScheme = "memory://"

type InMemoryObjectStore struct {
	lock    *sync.RWMutex
	bucket  string
	objects map[string][]byte
}

func InitInMemoryObjectStore(bucket string) *InMemoryObjectStore {
	return &InMemoryObjectStore{
		lock:    new(sync.RWMutex),
		bucket:  bucket,
		objects: make(map[string][]byte),
	}
}

func (s *InMemoryObjectStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	return memoryScheme + s.bucket + "/" + key, nil
}

func (s *InMemoryObjectStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *InMemoryObjectStore) RemoveObject(ctx context.Context, key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.objects, key)
	return nil
}
