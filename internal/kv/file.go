package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rutadev/ruta/internal/fsops"
)

// FileStore implements Store with one file per key under a data
// directory. Writes go through fsops.AtomicWrite so a crash mid-write
// never leaves a partial value behind.
type FileStore struct {
	fs  fsops.FS
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is
// created lazily on the first write.
func NewFileStore(fs fsops.FS, dir string) *FileStore {
	return &FileStore{
		fs:  fs,
		dir: dir,
	}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := s.fs.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read value for %q: %w", key, err)
	}
	return data, nil
}

// Set stores value under key atomically.
func (s *FileStore) Set(key string, value []byte) error {
	if err := s.fs.AtomicWrite(s.keyPath(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write value for %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Missing keys are ignored.
func (s *FileStore) Delete(key string) error {
	if err := s.fs.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete value for %q: %w", key, err)
	}
	return nil
}

// keyPath maps a key to its backing file. Keys may contain characters
// that are unsafe in file names (the progress namespace uses ':'), so
// anything outside [A-Za-z0-9._-] is replaced.
func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

func sanitizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
