package collaborator

import (
	"context"
)

// Service defines business logic for the collaborator domain.
type Service interface {
	// ListCollaborators filters and paginates partners
	ListCollaborators(ctx context.Context, params ListParams) (*ListResult, error)

	// ListGrouped returns partners grouped by category for the partners page
	ListGrouped(ctx context.Context) ([]CategoryGroup, error)

	// GetCollaboratorByID retrieves one partner
	GetCollaboratorByID(ctx context.Context, id int) (*Collaborator, error)

	// Categories returns the distinct category facet values, sorted
	Categories(ctx context.Context) ([]string, error)

	// CreateCollaborator validates and persists a new partner
	CreateCollaborator(ctx context.Context, req *CollaboratorCreateRequest) (*Collaborator, error)

	// UpdateCollaborator updates the partner with the given id
	UpdateCollaborator(ctx context.Context, id int, req *CollaboratorUpdateRequest) (*Collaborator, error)

	// DeleteCollaborator removes the partner with the given id
	DeleteCollaborator(ctx context.Context, id int) error

	// Reload drops the snapshot (admin "content changed" signal)
	Reload(ctx context.Context) error
}
