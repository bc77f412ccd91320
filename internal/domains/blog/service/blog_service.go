package service

import (
	"context"
	"fmt"
	"strings"

	"labsite-backend/internal/domains/blog"
	"labsite-backend/internal/query"
	"labsite-backend/internal/shared/utils"
)

// blogService implements blog.Service
type blogService struct {
	repo blog.Repository
}

// NewBlogService creates a new blog service instance
func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{
		repo: repo,
	}
}

// ListBlogs filters posts by free text, category and author, sorts them
// newest first and slices out one page. All matchers are conjunctive;
// an empty value means no constraint.
func (s *blogService) ListBlogs(ctx context.Context, params blog.ListParams) (*blog.ListResult, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.Filter(items, query.And(
		query.TextContains(params.Query, func(b blog.Blog) []string {
			return []string{b.Title, b.Excerpt, b.Author}
		}),
		query.Equals(params.Category, func(b blog.Blog) string { return b.Category }),
		query.Equals(params.Author, func(b blog.Blog) string { return b.Author }),
	))

	sorted := query.SortByDate(filtered, func(b blog.Blog) string { return b.Date }, true)

	page, totalPages := query.Paginate(sorted, params.PageSize, params.Page)

	return &blog.ListResult{
		Items:      page,
		Total:      len(sorted),
		TotalPages: totalPages,
	}, nil
}

func (s *blogService) GetBlogBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, blog.NewBlogNotFound(slug)
	}

	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, blog.NewBlogNotFound(slug)
	}
	return post, nil
}

func (s *blogService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.UniqueValues(items, func(b blog.Blog) string { return b.Category }), nil
}

// CreateBlog assigns the next numeric id, derives a slug from the title
// when none is given, and persists the post.
func (s *blogService) CreateBlog(ctx context.Context, req *blog.BlogCreateRequest) (*blog.Blog, error) {
	if req == nil {
		return nil, blog.NewBlogValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, blog.NewBlogValidationError(err)
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	// The public read path addresses posts by slug; duplicates would
	// shadow each other.
	if existing, err := s.repo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, blog.NewBlogValidationError(fmt.Errorf("slug %q already in use", slug))
	}

	post := &blog.Blog{
		ID:       id,
		Title:    strings.TrimSpace(req.Title),
		Slug:     slug,
		Author:   strings.TrimSpace(req.Author),
		Category: strings.TrimSpace(req.Category),
		Date:     strings.TrimSpace(req.Date),
		Excerpt:  strings.TrimSpace(req.Excerpt),
		Content:  req.Content,
	}

	return s.repo.Create(ctx, post)
}

// UpdateBlog applies non-empty request fields over the stored post.
func (s *blogService) UpdateBlog(ctx context.Context, id int, req *blog.BlogUpdateRequest) (*blog.Blog, error) {
	if req == nil {
		return nil, blog.NewBlogValidationError(nil)
	}
	if err := req.Validate(); err != nil {
		return nil, blog.NewBlogValidationError(err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, blog.NewBlogNotFoundByID(id)
	}

	updated := *existing
	if v := strings.TrimSpace(req.Title); v != "" {
		updated.Title = v
	}
	if v := strings.TrimSpace(req.Author); v != "" {
		updated.Author = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		updated.Category = v
	}
	if v := strings.TrimSpace(req.Date); v != "" {
		updated.Date = v
	}
	if v := strings.TrimSpace(req.Excerpt); v != "" {
		updated.Excerpt = v
	}
	if req.Content != "" {
		updated.Content = req.Content
	}

	return s.repo.Update(ctx, id, &updated)
}

func (s *blogService) DeleteBlog(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *blogService) Reload(ctx context.Context) error {
	return s.repo.Reload(ctx)
}
