// Package file persists store snapshots as JSON documents on disk. It is the
// storage boundary for the session-scoped slices (cart, session): reads fall
// back to the caller's default, writes degrade to in-memory-only on failure.
package file

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Store writes one JSON document per named snapshot under a directory.
type Store struct {
	dir string
}

// NewStore creates the snapshot directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Load reads the named snapshot into dst. A missing or unreadable snapshot
// leaves dst untouched and reports false so the caller keeps its fallback
// state.
func (s *Store) Load(name string, dst any) bool {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("snapshot %s: discarding corrupt data: %v", name, err)
		return false
	}
	return true
}

// Save writes v as the named snapshot. Failures are logged and swallowed:
// the in-memory state stays authoritative for the rest of the session.
func (s *Store) Save(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("snapshot %s: marshal: %v", name, err)
		return
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		log.Printf("snapshot %s: write: %v", name, err)
	}
}

// Remove deletes the named snapshot. Removing an absent snapshot is a no-op.
func (s *Store) Remove(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
