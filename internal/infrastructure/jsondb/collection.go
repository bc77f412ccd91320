package jsondb

import (
	"sync"
)

// Collection caches an in-memory snapshot of one collection document.
// Reads are served from the snapshot; mutations rewrite the document
// and swap the snapshot on success. On a failed write the snapshot is
// dropped so the next read reloads from disk (state unknown).
type Collection[T any] struct {
	store *Store
	name  string

	mu     sync.RWMutex
	items  []T
	loaded bool
}

func NewCollection[T any](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Name returns the collection's document name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Snapshot returns a copy of the collection in insertion order,
// loading the document on first use.
func (c *Collection[T]) Snapshot() ([]T, error) {
	c.mu.RLock()
	if c.loaded {
		items := make([]T, len(c.items))
		copy(items, c.items)
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		items, err := ReadCollection[T](c.store, c.name)
		if err != nil {
			return nil, err
		}
		c.items = items
		c.loaded = true
	}

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items, nil
}

// Replace rewrites the whole document with items and swaps the snapshot.
func (c *Collection[T]) Replace(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := WriteCollection(c.store, c.name, items); err != nil {
		// Disk state is unknown now; force a reload on the next read.
		c.items = nil
		c.loaded = false
		return err
	}

	c.items = items
	c.loaded = true
	return nil
}

// Invalidate drops the snapshot so the next read reloads from disk.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.loaded = false
}
