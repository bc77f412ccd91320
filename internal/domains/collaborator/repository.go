package collaborator

import (
	"context"
)

// Repository defines data access for the collaborators collection.
type Repository interface {
	// GetAll returns the current snapshot in insertion order
	GetAll(ctx context.Context) ([]Collaborator, error)

	// GetByID retrieves one partner by numeric id
	// Returns nil if not found
	GetByID(ctx context.Context, id int) (*Collaborator, error)

	// Create appends a partner and rewrites the document.
	// The partner's ID must already be assigned by the caller.
	Create(ctx context.Context, cl *Collaborator) (*Collaborator, error)

	// Update replaces the partner with the given id
	Update(ctx context.Context, id int, cl *Collaborator) (*Collaborator, error)

	// Delete removes the partner with the given id
	Delete(ctx context.Context, id int) error

	// NextID returns the next free numeric id
	NextID(ctx context.Context) (int, error)

	// Reload drops the snapshot so the next read hits the document
	Reload(ctx context.Context) error
}
