package service

import (
	"context"
	"strings"

	"labsite-backend/internal/domains/collaborator"
	"labsite-backend/internal/query"
)

// collaboratorService implements collaborator.Service
type collaboratorService struct {
	repo collaborator.Repository
}

// NewCollaboratorService creates a new collaborator service instance
func NewCollaboratorService(repo collaborator.Repository) collaborator.Service {
	return &collaboratorService{
		repo: repo,
	}
}

// ListCollaborators filters by free text and category, keeps the
// document's insertion order and slices out one page.
func (s *collaboratorService) ListCollaborators(ctx context.Context, params collaborator.ListParams) (*collaborator.ListResult, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.Filter(items, query.And(
		query.TextContains(params.Query, func(cl collaborator.Collaborator) []string {
			return []string{cl.Name, cl.Description}
		}),
		query.Equals(params.Category, func(cl collaborator.Collaborator) string { return cl.Category }),
	))

	page, totalPages := query.Paginate(filtered, params.PageSize, params.Page)

	return &collaborator.ListResult{
		Items:      page,
		Total:      len(filtered),
		TotalPages: totalPages,
	}, nil
}

// ListGrouped buckets partners by category in first-seen order. Each
// bucket keeps the document's insertion order.
func (s *collaboratorService) ListGrouped(ctx context.Context) ([]collaborator.CategoryGroup, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]collaborator.CategoryGroup, 0)
	for _, cl := range items {
		i, ok := index[cl.Category]
		if !ok {
			i = len(groups)
			index[cl.Category] = i
			groups = append(groups, collaborator.CategoryGroup{Category: cl.Category})
		}
		groups[i].Members = append(groups[i].Members, cl)
	}
	return groups, nil
}

func (s *collaboratorService) GetCollaboratorByID(ctx context.Context, id int) (*collaborator.Collaborator, error) {
	cl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, collaborator.NewCollaboratorNotFound(id)
	}
	return cl, nil
}

func (s *collaboratorService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.UniqueValues(items, func(cl collaborator.Collaborator) string { return cl.Category }), nil
}

// CreateCollaborator assigns the next numeric id and persists the partner.
func (s *collaboratorService) CreateCollaborator(ctx context.Context, req *collaborator.CollaboratorCreateRequest) (*collaborator.Collaborator, error) {
	if req == nil {
		return nil, collaborator.NewCollaboratorValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, collaborator.NewCollaboratorValidationError(err)
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	cl := &collaborator.Collaborator{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Website:     strings.TrimSpace(req.Website),
		Logo:        strings.TrimSpace(req.Logo),
	}

	return s.repo.Create(ctx, cl)
}

// UpdateCollaborator applies non-empty request fields over the stored partner.
func (s *collaboratorService) UpdateCollaborator(ctx context.Context, id int, req *collaborator.CollaboratorUpdateRequest) (*collaborator.Collaborator, error) {
	if req == nil {
		return nil, collaborator.NewCollaboratorValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, collaborator.NewCollaboratorValidationError(err)
	}

	existing, err := s.GetCollaboratorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if v := strings.TrimSpace(req.Name); v != "" {
		updated.Name = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		updated.Category = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		updated.Description = v
	}
	if v := strings.TrimSpace(req.Website); v != "" {
		updated.Website = v
	}
	if v := strings.TrimSpace(req.Logo); v != "" {
		updated.Logo = v
	}

	return s.repo.Update(ctx, id, &updated)
}

func (s *collaboratorService) DeleteCollaborator(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *collaboratorService) Reload(ctx context.Context) error {
	return s.repo.Reload(ctx)
}
