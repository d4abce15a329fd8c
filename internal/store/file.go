package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as a JSON file inside Dir.
type FileStore struct {
	Dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("file store directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

// securePath maps key to a file directly inside the store directory.
func (s *FileStore) securePath(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	p := filepath.Join(s.Dir, url.PathEscape(key)+".json")

	absDir, err := filepath.Abs(s.Dir)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if filepath.Dir(absPath) != filepath.Clean(absDir) {
		return "", fmt.Errorf("%w: %q escapes state directory", ErrInvalidKey, key)
	}
	return p, nil
}

func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.securePath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		log.Printf("[WARN] Failed to read state file %s: %v", p, err)
		return nil, err
	}
	return data, nil
}

// Save writes through a temp file and renames it over the old blob so a crash
// never leaves a half-written document.
func (s *FileStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.securePath(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Dir, ".state-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		log.Printf("[WARN] Failed to write state file %s: %v", p, err)
		return err
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
