// Package credstore provides the durable single-slot storage for the raw
// bearer token: a file on disk for single-terminal installs, or a Redis key
// for restaurants running several shared terminals.
package credstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
)

// FileStore persists the token as one file, created 0600.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore builds a store at path. An empty path defaults to
// bengalibowl/token under the user's config directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "bengalibowl", "token")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Read(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", domain.ErrNoCredential
	}
	return string(raw), nil
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
