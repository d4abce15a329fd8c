// Package store keeps persisted state blobs. Every backend stores one opaque
// blob per key and replaces it whole on save; there are no partial updates.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"wordle/internal/stats"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrInvalidKey is returned for keys that cannot be stored safely.
var ErrInvalidKey = errors.New("invalid state key")

// Keys are short path-like names: session UUIDs or "xdos-wordle/v1". Dots are
// not allowed, so a key can never climb out of a directory.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*(/[A-Za-z0-9_-]+)*$`)

const maxKeyLen = 128

// Store reads and writes whole state blobs.
type Store interface {
	// Load returns the blob for key, or nil and no error when there is none.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the blob for key.
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}

// ValidateKey checks that key is usable by every backend.
func ValidateKey(key string) error {
	if len(key) == 0 || len(key) > maxKeyLen || !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Open creates the named backend rooted at path.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendBadger:
		return OpenBadger(BadgerConfig{Path: path, SyncWrites: true})
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

// LoadState reads and decodes the state for key. It always returns a usable
// state: a missing, unreadable, corrupt or foreign-version blob yields the
// fresh default, and the reason is returned alongside for logging.
func LoadState(ctx context.Context, s Store, key string) (stats.State, error) {
	blob, err := s.Load(ctx, key)
	if err != nil {
		return stats.NewState(), fmt.Errorf("read state %q: %w", key, err)
	}
	return stats.LoadOrDefault(blob)
}

// SaveState encodes st and replaces the blob for key.
func SaveState(ctx context.Context, s Store, key string, st stats.State) error {
	blob, err := stats.Encode(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.Save(ctx, key, blob); err != nil {
		return fmt.Errorf("write state %q: %w", key, err)
	}
	return nil
}
