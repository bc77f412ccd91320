package blog

import (
	"context"
)

// Repository defines data access for the blogs collection.
type Repository interface {
	// GetAll returns the current snapshot in insertion order
	GetAll(ctx context.Context) ([]Blog, error)

	// GetBySlug retrieves one post by slug
	// Returns nil if not found
	GetBySlug(ctx context.Context, slug string) (*Blog, error)

	// GetByID retrieves one post by numeric id
	// Returns nil if not found
	GetByID(ctx context.Context, id int) (*Blog, error)

	// Create appends a post and rewrites the document.
	// The post's ID must already be assigned by the caller.
	Create(ctx context.Context, post *Blog) (*Blog, error)

	// Update replaces the post with the given id
	Update(ctx context.Context, id int, post *Blog) (*Blog, error)

	// Delete removes the post with the given id
	Delete(ctx context.Context, id int) error

	// NextID returns the next free numeric id
	NextID(ctx context.Context) (int, error)

	// Reload drops the snapshot so the next read hits the document
	Reload(ctx context.Context) error
}
