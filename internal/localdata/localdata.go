// Package localdata persists small JSON records on disk, one file per key.
// It stands in for the browser localStorage the storefront state survives in
// between sessions.
package localdata

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the record stored under key into v. A missing or corrupt file
// reads as absent (ok == false); persisted state is best-effort and must
// never take the app down.
func (s *Store) Load(key string, v any) bool {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false
	}
	return true
}

// Save writes v under key, replacing any previous record.
func (s *Store) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), raw, 0o644)
}

// Delete removes the record under key. Removing an absent key is a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
