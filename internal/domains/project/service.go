package project

import (
	"context"
)

// Service defines business logic for the project domain.
type Service interface {
	// ListProjects filters and paginates projects
	ListProjects(ctx context.Context, params ListParams) (*ListResult, error)

	// GetProjectByID retrieves one project for the detail view
	GetProjectByID(ctx context.Context, id int) (*Project, error)

	// Categories returns the distinct category facet values, sorted
	Categories(ctx context.Context) ([]string, error)

	// CreateProject validates and persists a new project
	CreateProject(ctx context.Context, req *ProjectCreateRequest) (*Project, error)

	// UpdateProject updates the project with the given id
	UpdateProject(ctx context.Context, id int, req *ProjectUpdateRequest) (*Project, error)

	// DeleteProject removes the project with the given id
	DeleteProject(ctx context.Context, id int) error

	// Reload drops the snapshot (admin "content changed" signal)
	Reload(ctx context.Context) error
}
