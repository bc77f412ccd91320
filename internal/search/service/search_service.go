package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"labsite-backend/internal/domains/blog"
	"labsite-backend/internal/domains/collaborator"
	"labsite-backend/internal/domains/paper"
	"labsite-backend/internal/domains/person"
	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/search"
)

// searchService flattens every collection snapshot into search
// documents and runs the pure matcher over them. Snapshots are
// in-memory after first load, so rebuilding the corpus per request is
// a handful of slice walks, not I/O.
type searchService struct {
	people        person.Repository
	projects      project.Repository
	papers        paper.Repository
	blogs         blog.Repository
	collaborators collaborator.Repository
}

// NewSearchService creates the cross-collection search service.
func NewSearchService(
	people person.Repository,
	projects project.Repository,
	papers paper.Repository,
	blogs blog.Repository,
	collaborators collaborator.Repository,
) search.Service {
	return &searchService{
		people:        people,
		projects:      projects,
		papers:        papers,
		blogs:         blogs,
		collaborators: collaborators,
	}
}

func (s *searchService) Search(ctx context.Context, query string, t search.EntityType) (*search.Response, error) {
	if t != "" && !search.ValidType(t) {
		return nil, search.NewInvalidTypeError(string(t))
	}

	corpus, err := s.buildCorpus(ctx)
	if err != nil {
		return nil, err
	}

	all := search.Search(corpus, query)
	facets := search.FacetCounts(all)

	results := all
	if t != "" {
		results = search.FilterByType(all, t)
	}

	return &search.Response{
		Query:   strings.TrimSpace(query),
		Results: results,
		Facets:  facets,
		Total:   len(results),
	}, nil
}

func (s *searchService) buildCorpus(ctx context.Context) (search.Corpus, error) {
	corpus := make(search.Corpus, len(search.ScanOrder))

	people, err := s.people.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, 0, len(people))
	for _, p := range people {
		docs = append(docs, search.Document{
			ID:       p.Slug,
			Title:    p.Name,
			Subtitle: p.Title,
			URL:      "/people/" + url.PathEscape(p.Slug),
			Haystack: append([]string{p.Name, p.Title}, p.Interests...),
		})
	}
	corpus[search.TypePeople] = docs

	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docs = make([]search.Document, 0, len(projects))
	for _, p := range projects {
		docs = append(docs, search.Document{
			ID:          strconv.Itoa(p.ID),
			Title:       p.Title,
			Subtitle:    p.Category,
			Description: p.Description,
			URL:         fmt.Sprintf("/projects/%d", p.ID),
			Haystack:    append([]string{p.Title, p.Description}, p.Collaborators...),
		})
	}
	corpus[search.TypeProjects] = docs

	papers, err := s.papers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docs = make([]search.Document, 0, len(papers))
	for _, p := range papers {
		docs = append(docs, search.Document{
			ID:       paperID(p),
			Title:    p.Title,
			Subtitle: p.Venue,
			URL:      p.URL,
			Haystack: append([]string{p.Title, p.Venue, p.Year}, p.Authors...),
		})
	}
	corpus[search.TypePapers] = docs

	blogs, err := s.blogs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docs = make([]search.Document, 0, len(blogs))
	for _, b := range blogs {
		docs = append(docs, search.Document{
			ID:          b.Slug,
			Title:       b.Title,
			Subtitle:    b.Author,
			Description: b.Excerpt,
			URL:         "/blogs/" + url.PathEscape(b.Slug),
			Haystack:    []string{b.Title, b.Excerpt, b.Author},
		})
	}
	corpus[search.TypeBlogs] = docs

	collaborators, err := s.collaborators.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docs = make([]search.Document, 0, len(collaborators))
	for _, cl := range collaborators {
		docs = append(docs, search.Document{
			ID:          strconv.Itoa(cl.ID),
			Title:       cl.Name,
			Subtitle:    cl.Category,
			Description: cl.Description,
			URL:         cl.Website,
			Haystack:    []string{cl.Name, cl.Description},
		})
	}
	corpus[search.TypeCollaborators] = docs

	return corpus, nil
}

// paperID builds a stable identifier for a publication from its
// (title, year) pair, the same key the admin API addresses papers by.
func paperID(p paper.Paper) string {
	v := url.Values{}
	v.Set("title", p.Title)
	v.Set("year", p.Year)
	return v.Encode()
}
