package service

import (
	"context"
	"fmt"
	"strings"

	"labsite-backend/internal/domains/person"
	"labsite-backend/internal/query"
	"labsite-backend/internal/shared/utils"
)

// personService implements person.Service
type personService struct {
	repo person.Repository
}

// NewPersonService creates a new person service instance
func NewPersonService(repo person.Repository) person.Service {
	return &personService{
		repo: repo,
	}
}

// ListPeople filters members by free text and category. Member lists
// keep the collection's insertion order; the people page is curated by
// hand, not sorted.
func (s *personService) ListPeople(ctx context.Context, params person.ListParams) (*person.ListResult, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.Filter(items, query.And(
		query.TextContains(params.Query, func(p person.Person) []string {
			fields := []string{p.Name, p.Title}
			return append(fields, p.Interests...)
		}),
		query.Equals(params.Category, func(p person.Person) string { return p.Category }),
	))

	page, totalPages := query.Paginate(filtered, params.PageSize, params.Page)

	return &person.ListResult{
		Items:      page,
		Total:      len(filtered),
		TotalPages: totalPages,
	}, nil
}

// ListGrouped groups members by category. Groups appear in the order a
// category is first seen in the document, members in insertion order.
func (s *personService) ListGrouped(ctx context.Context) ([]person.CategoryGroup, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]person.CategoryGroup, 0)
	for _, p := range items {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, person.CategoryGroup{Category: p.Category})
		}
		groups[i].People = append(groups[i].People, p)
	}
	return groups, nil
}

func (s *personService) GetPersonBySlug(ctx context.Context, slug, category string) (*person.Person, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, person.NewPersonNotFound(slug)
	}

	p, err := s.repo.GetBySlug(ctx, slug, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, person.NewPersonNotFound(slug)
	}
	return p, nil
}

func (s *personService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.UniqueValues(items, func(p person.Person) string { return p.Category }), nil
}

func (s *personService) CreatePerson(ctx context.Context, req *person.PersonCreateRequest) (*person.Person, error) {
	if req == nil {
		return nil, person.NewPersonValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, person.NewPersonValidationError(err)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}
	category := strings.TrimSpace(req.Category)

	// Slug is the lookup key within a category; a second record with
	// the same pair would be unreachable through the read paths.
	if existing, err := s.repo.GetBySlug(ctx, slug, category); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, person.NewPersonValidationError(fmt.Errorf("slug %q already in use in category %q", slug, category))
	}

	p := &person.Person{
		Name:      strings.TrimSpace(req.Name),
		Title:     strings.TrimSpace(req.Title),
		Category:  category,
		Email:     strings.TrimSpace(req.Email),
		Interests: req.Interests,
		Slug:      slug,
	}

	return s.repo.Create(ctx, p)
}

func (s *personService) UpdatePerson(ctx context.Context, slug, category string, req *person.PersonUpdateRequest) (*person.Person, error) {
	if req == nil {
		return nil, person.NewPersonValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, person.NewPersonValidationError(err)
	}

	existing, err := s.repo.GetBySlug(ctx, slug, category)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, person.NewPersonNotFound(slug)
	}

	updated := *existing
	if v := strings.TrimSpace(req.Name); v != "" {
		updated.Name = v
	}
	if v := strings.TrimSpace(req.Title); v != "" {
		updated.Title = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		updated.Category = v
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		updated.Email = v
	}
	if req.Interests != nil {
		updated.Interests = req.Interests
	}

	return s.repo.Update(ctx, slug, category, &updated)
}

func (s *personService) DeletePerson(ctx context.Context, slug, category string) error {
	return s.repo.Delete(ctx, slug, category)
}

func (s *personService) Reload(ctx context.Context) error {
	return s.repo.Reload(ctx)
}
