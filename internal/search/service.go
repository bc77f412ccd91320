package search

import (
	"context"
)

// Response is the search endpoint payload: ordered hits plus facet
// counts computed over the unfiltered hit set.
type Response struct {
	Query   string             `json:"query"`
	Results []Result           `json:"results"`
	Facets  map[EntityType]int `json:"facets"`
	Total   int                `json:"total"`
}

// Service defines the site-wide search use case.
type Service interface {
	// Search runs the substring query across every collection.
	// A non-empty entity type narrows the hits to that facet.
	Search(ctx context.Context, query string, t EntityType) (*Response, error)
}
