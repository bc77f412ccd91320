package blog

import (
	"context"
)

// Service defines business logic for the blog domain.
type Service interface {
	// ListBlogs filters, sorts (newest first) and paginates posts
	ListBlogs(ctx context.Context, params ListParams) (*ListResult, error)

	// GetBlogBySlug retrieves one post for the detail page
	GetBlogBySlug(ctx context.Context, slug string) (*Blog, error)

	// Categories returns the distinct category facet values, sorted
	Categories(ctx context.Context) ([]string, error)

	// CreateBlog validates and persists a new post
	CreateBlog(ctx context.Context, req *BlogCreateRequest) (*Blog, error)

	// UpdateBlog updates the post with the given id
	UpdateBlog(ctx context.Context, id int, req *BlogUpdateRequest) (*Blog, error)

	// DeleteBlog removes the post with the given id
	DeleteBlog(ctx context.Context, id int) error

	// Reload drops the snapshot (admin "content changed" signal)
	Reload(ctx context.Context) error
}
