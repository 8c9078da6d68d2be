package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// Store is a key to JSON-value store backed by one file per key under the
// user config directory. Writes are atomic (temp file then rename).
type Store struct {
	dir string
}

// Open resolves the data directory for the application and returns a store.
func Open(appName string) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(configDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// OpenDir returns a store rooted at an explicit directory.
func OpenDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get reads the value stored under key into the given pointer. The boolean
// reports whether the key existed. A corrupt file is backed up and treated
// as absent so a bad write never wedges startup.
func (store *Store) Get(key string, into any) (bool, error) {
	path := store.keyPath(key)
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := sonic.Unmarshal(rawData, into); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return false, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return true, nil
}

// Set serializes the value to JSON and writes it under key.
func (store *Store) Set(key string, value any) error {
	serialized, err := sonic.ConfigDefault.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	path := store.keyPath(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o600); err != nil {
		return fmt.Errorf("write temp file for %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file for %s: %w", key, err)
	}
	return nil
}

func (store *Store) keyPath(key string) string {
	return filepath.Join(store.dir, key+".json")
}
