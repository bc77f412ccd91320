package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists one JSON document per collection under a data directory.
// Every write is a whole-document rewrite; there are no partial updates
// and no transactional guarantees beyond the atomicity of rename(2).
type Store struct {
	dir string

	// Serializes rewrites. Readers work on in-memory snapshots held by
	// the repositories, so a single writer lock is enough.
	mu sync.Mutex
}

// LoadError reports a missing or malformed collection document.
type LoadError struct {
	Collection string
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load collection %q: %v", e.Collection, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewStore creates a store rooted at dir. The directory is created if
// it does not exist yet.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// ReadCollection loads the full document for one collection.
// A missing or malformed document yields a *LoadError.
func ReadCollection[T any](s *Store, collection string) ([]T, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return nil, &LoadError{Collection: collection, Err: err}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &LoadError{Collection: collection, Err: err}
	}

	return items, nil
}

// WriteCollection rewrites the full document for one collection.
// The new document is written to a temp file and renamed into place so
// a crash mid-write leaves the previous document intact.
func WriteCollection[T any](s *Store, collection string, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %q: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %q: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %q: %w", collection, err)
	}

	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection %q: %w", collection, err)
	}

	return nil
}
