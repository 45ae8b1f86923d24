// Package storage provides the local-disk photo store backing the media
// endpoints. Stored files are served statically under /uploads.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes photos into a single flat directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save streams r into a new file named name inside the store directory.
// name must be a bare filename; path separators are rejected.
func (s *LocalStore) Save(name string, r io.Reader) error {
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid filename %q", name)
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}
