package session

import "sync"

// MemoryStorage is a Storage held in process memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

// Get implements Storage.
func (s *MemoryStorage) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrInvalidKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set implements Storage.
func (s *MemoryStorage) Set(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Remove implements Storage.
func (s *MemoryStorage) Remove(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
