// Package kvstore provides the named-slot persistence the collections sit
// on: whole-document JSON blobs keyed by name, swappable in tests.
package kvstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

type Store interface {
	// Get returns the raw slot content and whether the slot exists.
	Get(key string) (string, bool)
	// Set replaces the slot content.
	Set(key, value string) error
}

// FileStore keeps one JSON file per slot under a data directory. Writes go
// through a temp file and a rename so a crash never leaves a torn slot.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// EnsureDir creates the data directory up front so the first write cannot
// fail on a missing parent.
func (s *FileStore) EnsureDir() error {
	const op = "kvstore.FileStore.EnsureDir"

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Set(key, value string) error {
	const op = "kvstore.FileStore.Set"

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp := s.path(key) + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// MemoryStore is the in-memory Store used by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string

	// WriteErr, when set, makes every Set fail. Lets tests exercise the
	// storage-warning path.
	WriteErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

var ErrWriteDisabled = errors.New("store writes disabled")
