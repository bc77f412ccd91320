package event

import (
	"context"
)

// Repository defines data access for the events collection.
type Repository interface {
	// GetAll returns the current snapshot in insertion order
	GetAll(ctx context.Context) ([]Event, error)

	// GetBySlug retrieves one event by slug
	// Returns nil if not found
	GetBySlug(ctx context.Context, slug string) (*Event, error)

	// Create appends an event and rewrites the document
	Create(ctx context.Context, e *Event) (*Event, error)

	// Update replaces the event with the given slug
	Update(ctx context.Context, slug string, e *Event) (*Event, error)

	// Delete removes the event with the given slug
	Delete(ctx context.Context, slug string) error

	// Reload drops the snapshot so the next read hits the document
	Reload(ctx context.Context) error
}
