package paper

import (
	"context"
)

// Repository defines data access for the papers collection.
type Repository interface {
	// GetAll returns the current snapshot in insertion order
	GetAll(ctx context.Context) ([]Paper, error)

	// GetByKey retrieves one publication by (title, year).
	// Title comparison is exact, not fuzzy. Returns nil if not found.
	GetByKey(ctx context.Context, key Key) (*Paper, error)

	// Create appends a publication and rewrites the document
	Create(ctx context.Context, p *Paper) (*Paper, error)

	// Update replaces the publication with the given key
	Update(ctx context.Context, key Key, p *Paper) (*Paper, error)

	// Delete removes the publication with the given key
	Delete(ctx context.Context, key Key) error

	// Reload drops the snapshot so the next read hits the document
	Reload(ctx context.Context) error
}
