package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"labsite-backend/internal/domains/paper"
	"labsite-backend/internal/query"
	"labsite-backend/pkg/cache"
	"labsite-backend/pkg/logger"
)

const (
	facetCachePrefix = "labsite:papers:facet:"
	facetCacheTTL    = 10 * time.Minute
)

// paperService implements paper.Service. The facet lists (years,
// venues, authors) are recomputed over the whole collection on every
// request, so they sit behind a short-lived Redis cache.
type paperService struct {
	repo  paper.Repository
	cache cache.Cache
}

// NewPaperService creates a new paper service instance
func NewPaperService(repo paper.Repository, c cache.Cache) paper.Service {
	return &paperService{
		repo:  repo,
		cache: c,
	}
}

// ListPapers filters publications, sorts them by year and paginates.
// Default ordering is newest first; unparsable years sort as oldest.
func (s *paperService) ListPapers(ctx context.Context, params paper.ListParams) (*paper.ListResult, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.Filter(items, query.And(
		query.TextContains(params.Query, func(p paper.Paper) []string {
			fields := []string{p.Title, p.Venue, p.Year}
			return append(fields, p.Authors...)
		}),
		query.Equals(params.Year, func(p paper.Paper) string { return p.Year }),
		query.Equals(params.Venue, func(p paper.Paper) string { return p.Venue }),
		s.authorMatcher(params.Author),
		query.IntRange(params.YearFrom, params.YearTo, func(p paper.Paper) (int, bool) {
			return query.ParseYear(p.Year)
		}),
	))

	sorted := query.SortByDate(filtered, func(p paper.Paper) string { return p.Year }, !params.SortAsc)

	page, totalPages := query.Paginate(sorted, params.PageSize, params.Page)

	return &paper.ListResult{
		Items:      page,
		Total:      len(sorted),
		TotalPages: totalPages,
	}, nil
}

// authorMatcher matches when any author equals the filter value,
// case-insensitively. Empty value is inactive.
func (s *paperService) authorMatcher(author string) query.Predicate[paper.Paper] {
	author = strings.TrimSpace(author)
	return func(p paper.Paper) bool {
		if author == "" {
			return true
		}
		for _, a := range p.Authors {
			if strings.EqualFold(a, author) {
				return true
			}
		}
		return false
	}
}

func (s *paperService) GetPaper(ctx context.Context, key paper.Key) (*paper.Paper, error) {
	p, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, paper.NewPaperNotFound(key)
	}
	return p, nil
}

func (s *paperService) Years(ctx context.Context) ([]string, error) {
	return s.facet(ctx, "years", func(items []paper.Paper) []string {
		return query.UniqueValues(items, func(p paper.Paper) string { return p.Year })
	})
}

func (s *paperService) Venues(ctx context.Context) ([]string, error) {
	return s.facet(ctx, "venues", func(items []paper.Paper) []string {
		return query.UniqueValues(items, func(p paper.Paper) string { return p.Venue })
	})
}

func (s *paperService) Authors(ctx context.Context) ([]string, error) {
	return s.facet(ctx, "authors", func(items []paper.Paper) []string {
		return query.UniqueValuesMulti(items, func(p paper.Paper) []string { return p.Authors })
	})
}

// facet serves one facet list through the cache. Cache errors degrade
// to a recompute, never to a failed request.
func (s *paperService) facet(ctx context.Context, name string, compute func([]paper.Paper) []string) ([]string, error) {
	cacheKey := facetCachePrefix + name

	if s.cache != nil {
		var cached []string
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warn("paper facet cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	values := compute(items)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, values, facetCacheTTL); err != nil {
			logger.Warn("paper facet cache write failed", err)
		}
	}
	return values, nil
}

// dropFacetCache invalidates every cached facet list after a mutation.
func (s *paperService) dropFacetCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, facetCachePrefix+"*"); err != nil {
		logger.Warn("paper facet cache invalidation failed", err)
	}
}

func (s *paperService) CreatePaper(ctx context.Context, req *paper.PaperCreateRequest) (*paper.Paper, error) {
	if req == nil {
		return nil, paper.NewPaperValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, paper.NewPaperValidationError(err)
	}

	p := &paper.Paper{
		Title:   strings.TrimSpace(req.Title),
		Authors: req.Authors,
		Venue:   strings.TrimSpace(req.Venue),
		Year:    strings.TrimSpace(req.Year),
		URL:     strings.TrimSpace(req.URL),
		DOI:     strings.TrimSpace(req.DOI),
	}

	// (title, year) is the natural key; mutations address papers by it,
	// so a duplicate pair would make the new record unaddressable.
	if existing, err := s.repo.GetByKey(ctx, paper.Key{Title: p.Title, Year: p.Year}); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, paper.NewPaperValidationError(fmt.Errorf("a paper titled %q from %s already exists", p.Title, p.Year))
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.dropFacetCache(ctx)
	return created, nil
}

func (s *paperService) UpdatePaper(ctx context.Context, key paper.Key, req *paper.PaperUpdateRequest) (*paper.Paper, error) {
	if req == nil {
		return nil, paper.NewPaperValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, paper.NewPaperValidationError(err)
	}

	existing, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, paper.NewPaperNotFound(key)
	}

	updated := *existing
	if v := strings.TrimSpace(req.Title); v != "" {
		updated.Title = v
	}
	if req.Authors != nil {
		updated.Authors = req.Authors
	}
	if v := strings.TrimSpace(req.Venue); v != "" {
		updated.Venue = v
	}
	if v := strings.TrimSpace(req.Year); v != "" {
		updated.Year = v
	}
	if v := strings.TrimSpace(req.URL); v != "" {
		updated.URL = v
	}
	if v := strings.TrimSpace(req.DOI); v != "" {
		updated.DOI = v
	}

	result, err := s.repo.Update(ctx, key, &updated)
	if err != nil {
		return nil, err
	}
	s.dropFacetCache(ctx)
	return result, nil
}

func (s *paperService) DeletePaper(ctx context.Context, key paper.Key) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}
	s.dropFacetCache(ctx)
	return nil
}

func (s *paperService) Reload(ctx context.Context) error {
	s.dropFacetCache(ctx)
	return s.repo.Reload(ctx)
}
