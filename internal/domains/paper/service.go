package paper

import (
	"context"
)

// Service defines business logic for the paper domain.
type Service interface {
	// ListPapers filters, sorts by year and paginates publications
	ListPapers(ctx context.Context, params ListParams) (*ListResult, error)

	// GetPaper retrieves one publication by its natural key
	GetPaper(ctx context.Context, key Key) (*Paper, error)

	// Years, Venues and Authors return the facet values, sorted
	Years(ctx context.Context) ([]string, error)
	Venues(ctx context.Context) ([]string, error)
	Authors(ctx context.Context) ([]string, error)

	// CreatePaper validates and persists a new publication
	CreatePaper(ctx context.Context, req *PaperCreateRequest) (*Paper, error)

	// UpdatePaper updates the publication with the given key
	UpdatePaper(ctx context.Context, key Key, req *PaperUpdateRequest) (*Paper, error)

	// DeletePaper removes the publication with the given key
	DeletePaper(ctx context.Context, key Key) error

	// Reload drops the snapshot (admin "content changed" signal)
	Reload(ctx context.Context) error
}
