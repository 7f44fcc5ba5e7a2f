// Package store implements domain.BlobStore on the local filesystem. Blobs
// live under a root data directory; keys are user-scoped relative paths
// like "default/dishes.json".
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a JSON-file blob store rooted at a data directory.
type FileStore struct {
	root string
}

// New creates a FileStore rooted at dir. The directory is created lazily on
// first save.
func New(dir string) *FileStore {
	return &FileStore{root: dir}
}

// DefaultDir is the per-user data directory, ~/.menurota.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".menurota"
	}
	return filepath.Join(home, ".menurota")
}

func (s *FileStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}

// Load returns the blob's bytes, or (nil, nil) when it does not exist.
func (s *FileStore) Load(key string) ([]byte, error) {
	fp, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save writes the blob, creating parent directories as needed.
func (s *FileStore) Save(key string, data []byte) error {
	fp, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// Delete removes the blob; deleting a missing blob is a no-op.
func (s *FileStore) Delete(key string) error {
	fp, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fp); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
