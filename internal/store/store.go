// Package store implements address book persistence to the filesystem.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MiniRonni/goit-web-hw-02/internal/book"
)

// FileStore persists the address book as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore that reads and writes path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file path the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the whole book to the store file, overwriting any previous
// contents. The parent directory is created if needed.
func (s *FileStore) Save(b *book.Book) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: creating directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshaling: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", s.path, err)
	}
	return nil
}

// Load reads the book from the store file. A missing file is not an error:
// it yields a fresh empty book. Any other read or decode failure is returned
// as-is; there is no corruption recovery.
func (s *FileStore) Load() (*book.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("store: reading %s: %w", s.path, err)
	}

	b := book.New()
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("store: parsing %s: %w", s.path, err)
	}
	return b, nil
}
