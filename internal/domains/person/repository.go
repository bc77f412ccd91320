package person

import (
	"context"
)

// Repository defines data access for the people collection.
type Repository interface {
	// GetAll returns the current snapshot in insertion order
	GetAll(ctx context.Context) ([]Person, error)

	// GetBySlug retrieves one member. category narrows the lookup when
	// non-empty (slugs are only unique within a category).
	// Returns nil if not found.
	GetBySlug(ctx context.Context, slug, category string) (*Person, error)

	// Create appends a member and rewrites the document
	Create(ctx context.Context, p *Person) (*Person, error)

	// Update replaces the member with the given slug
	Update(ctx context.Context, slug, category string, p *Person) (*Person, error)

	// Delete removes the member with the given slug
	Delete(ctx context.Context, slug, category string) error

	// Reload drops the snapshot so the next read hits the document
	Reload(ctx context.Context) error
}
