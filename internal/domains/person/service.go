package person

import (
	"context"
)

// Service defines business logic for the person domain.
type Service interface {
	// ListPeople filters and paginates members
	ListPeople(ctx context.Context, params ListParams) (*ListResult, error)

	// ListGrouped returns members grouped by category for the people page
	ListGrouped(ctx context.Context) ([]CategoryGroup, error)

	// GetPersonBySlug retrieves one member for the profile page
	GetPersonBySlug(ctx context.Context, slug, category string) (*Person, error)

	// Categories returns the distinct category facet values, sorted
	Categories(ctx context.Context) ([]string, error)

	// CreatePerson validates and persists a new member
	CreatePerson(ctx context.Context, req *PersonCreateRequest) (*Person, error)

	// UpdatePerson updates the member with the given slug
	UpdatePerson(ctx context.Context, slug, category string, req *PersonUpdateRequest) (*Person, error)

	// DeletePerson removes the member with the given slug
	DeletePerson(ctx context.Context, slug, category string) error

	// Reload drops the snapshot (admin "content changed" signal)
	Reload(ctx context.Context) error
}
