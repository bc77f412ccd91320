package project

import (
	"context"
)

// Repository defines data access for the projects collection.
type Repository interface {
	// GetAll returns the current snapshot in insertion order
	GetAll(ctx context.Context) ([]Project, error)

	// GetByID retrieves one project by numeric id
	// Returns nil if not found
	GetByID(ctx context.Context, id int) (*Project, error)

	// Create appends a project and rewrites the document.
	// The project's ID must already be assigned by the caller.
	Create(ctx context.Context, p *Project) (*Project, error)

	// Update replaces the project with the given id
	Update(ctx context.Context, id int, p *Project) (*Project, error)

	// Delete removes the project with the given id
	Delete(ctx context.Context, id int) error

	// NextID returns the next free numeric id
	NextID(ctx context.Context) (int, error)

	// Reload drops the snapshot so the next read hits the document
	Reload(ctx context.Context) error
}
