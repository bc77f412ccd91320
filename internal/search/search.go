// Package search implements the cross-collection search behind the
// site-wide search modal. It is recall-only substring matching: no
// relevance scoring, no tokenization. Results come back in a fixed
// collection scan order with insertion order preserved inside each
// collection, annotated with the entity type for facet badges.
package search

import (
	"strings"
)

// EntityType tags a result with its originating collection.
type EntityType string

const (
	TypePeople        EntityType = "people"
	TypeProjects      EntityType = "projects"
	TypePapers        EntityType = "papers"
	TypeBlogs         EntityType = "blogs"
	TypeCollaborators EntityType = "collaborators"
)

// ScanOrder is the fixed order collections are searched in. It is a
// presentation choice, not a ranking signal.
var ScanOrder = []EntityType{
	TypePeople,
	TypeProjects,
	TypePapers,
	TypeBlogs,
	TypeCollaborators,
}

// ValidType reports whether t names a searchable collection.
func ValidType(t EntityType) bool {
	for _, s := range ScanOrder {
		if s == t {
			return true
		}
	}
	return false
}

// Document is one searchable record, flattened by the owning domain.
// Haystack holds the designated searchable fields; a record matches
// when the query is a substring of at least one of them.
type Document struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	URL         string
	Haystack    []string
}

// Corpus is the per-type universe a search runs against.
type Corpus map[EntityType][]Document

// Result is one search hit.
type Result struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle,omitempty"`
	Description string     `json:"description,omitempty"`
	Type        EntityType `json:"type"`
	URL         string     `json:"url,omitempty"`
}

// Search returns every record whose haystack contains the lowercased
// query, in scan order. An empty or whitespace-only query yields an
// empty result set; unlike list filtering, typing nothing into the
// search box means "show nothing", and that asymmetry is deliberate.
// Search is a pure function of (query, corpus).
func Search(corpus Corpus, query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Result{}
	}

	results := make([]Result, 0)
	for _, t := range ScanOrder {
		for _, doc := range corpus[t] {
			if matches(doc, q) {
				results = append(results, Result{
					ID:          doc.ID,
					Title:       doc.Title,
					Subtitle:    doc.Subtitle,
					Description: doc.Description,
					Type:        t,
					URL:         doc.URL,
				})
			}
		}
	}
	return results
}

// matches is OR across the record's searchable fields.
func matches(doc Document, loweredQuery string) bool {
	for _, field := range doc.Haystack {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

// FacetCounts counts hits per entity type over the unfiltered result
// set, so the UI can render "Papers (3)" style badges. Types with no
// hits are present with a zero count.
func FacetCounts(results []Result) map[EntityType]int {
	counts := make(map[EntityType]int, len(ScanOrder))
	for _, t := range ScanOrder {
		counts[t] = 0
	}
	for _, r := range results {
		counts[r.Type]++
	}
	return counts
}

// FilterByType narrows results to a single active facet, preserving
// order.
func FilterByType(results []Result, t EntityType) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}
