package service

import (
	"context"
	"strings"

	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/query"
)

// projectService implements project.Service
type projectService struct {
	repo project.Repository
}

// NewProjectService creates a new project service instance
func NewProjectService(repo project.Repository) project.Service {
	return &projectService{
		repo: repo,
	}
}

// ListProjects filters by free text and category, keeps the document's
// insertion order and slices out one page. All matchers are
// conjunctive; an empty value means no constraint.
func (s *projectService) ListProjects(ctx context.Context, params project.ListParams) (*project.ListResult, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.Filter(items, query.And(
		query.TextContains(params.Query, func(p project.Project) []string {
			fields := []string{p.Title, p.Description}
			return append(fields, p.Collaborators...)
		}),
		query.Equals(params.Category, func(p project.Project) string { return p.Category }),
	))

	page, totalPages := query.Paginate(filtered, params.PageSize, params.Page)

	return &project.ListResult{
		Items:      page,
		Total:      len(filtered),
		TotalPages: totalPages,
	}, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, id int) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, project.NewProjectNotFound(id)
	}
	return p, nil
}

func (s *projectService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.UniqueValues(items, func(p project.Project) string { return p.Category }), nil
}

// CreateProject assigns the next numeric id and persists the project.
func (s *projectService) CreateProject(ctx context.Context, req *project.ProjectCreateRequest) (*project.Project, error) {
	if req == nil {
		return nil, project.NewProjectValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, project.NewProjectValidationError(err)
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	p := &project.Project{
		ID:            id,
		Title:         strings.TrimSpace(req.Title),
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		Collaborators: req.Collaborators,
		Links:         req.Links,
		DemoLink:      strings.TrimSpace(req.DemoLink),
	}

	return s.repo.Create(ctx, p)
}

// UpdateProject applies non-empty request fields over the stored
// project; collaborators and links are replaced when non-nil.
func (s *projectService) UpdateProject(ctx context.Context, id int, req *project.ProjectUpdateRequest) (*project.Project, error) {
	if req == nil {
		return nil, project.NewProjectValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, project.NewProjectValidationError(err)
	}

	existing, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if v := strings.TrimSpace(req.Title); v != "" {
		updated.Title = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		updated.Category = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		updated.Description = v
	}
	if req.Collaborators != nil {
		updated.Collaborators = req.Collaborators
	}
	if req.Links != nil {
		updated.Links = req.Links
	}
	if v := strings.TrimSpace(req.DemoLink); v != "" {
		updated.DemoLink = v
	}

	return s.repo.Update(ctx, id, &updated)
}

func (s *projectService) DeleteProject(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *projectService) Reload(ctx context.Context) error {
	return s.repo.Reload(ctx)
}
