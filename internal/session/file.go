package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File and directory modes used by FileStorage.
const (
	fileMode = 0600
	dirMode  = 0700
)

// FileStorage is a Storage backed by a single JSON file mapping keys to
// JSON values. Writes go to a temporary file that is renamed into place, so
// a crash never leaves a half-written document.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a FileStorage at path. The file and its directory
// are created on first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the backing file path.
func (s *FileStorage) Path() string {
	return s.path
}

// Get implements Storage.
func (s *FileStorage) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

// Set implements Storage. The value must be valid JSON.
func (s *FileStorage) Set(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc[key] = json.RawMessage(append([]byte(nil), value...))
	return s.write(doc)
}

// Remove implements Storage.
func (s *FileStorage) Remove(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return s.write(doc)
}

// read must be called with the lock held. A missing file is an empty document.
func (s *FileStorage) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	doc := make(map[string]json.RawMessage)
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode storage file %s: %w", s.path, err)
	}
	return doc, nil
}

// write must be called with the lock held.
func (s *FileStorage) write(doc map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set storage file mode: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close storage file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
