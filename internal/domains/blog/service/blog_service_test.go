package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/blog"
	"labsite-backend/internal/shared/apperror"
)

// fakeRepo is an in-memory blog.Repository for service tests.
type fakeRepo struct {
	posts []blog.Blog
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]blog.Blog, error) {
	out := make([]blog.Blog, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*blog.Blog, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, post *blog.Blog) (*blog.Blog, error) {
	f.posts = append(f.posts, *post)
	return post, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int, post *blog.Blog) (*blog.Blog, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i] = *post
			return post, nil
		}
	}
	return nil, blog.NewBlogNotFoundByID(id)
}

func (f *fakeRepo) Delete(ctx context.Context, id int) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return blog.NewBlogNotFoundByID(id)
}

func (f *fakeRepo) NextID(ctx context.Context) (int, error) {
	max := 0
	for _, p := range f.posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1, nil
}

func (f *fakeRepo) Reload(ctx context.Context) error {
	return nil
}

func seededRepo() *fakeRepo {
	return &fakeRepo{posts: []blog.Blog{
		{ID: 1, Title: "Welcome to the lab", Slug: "welcome", Author: "Ana", Category: "news", Date: "2024-01-10"},
		{ID: 2, Title: "Conference recap", Slug: "conference-recap", Author: "Bo", Category: "events", Date: "2024-06-01"},
		{ID: 3, Title: "New grant", Slug: "new-grant", Author: "Ana", Category: "news", Date: "not a date"},
	}}
}

func TestListBlogsSortsNewestFirst(t *testing.T) {
	svc := NewBlogService(seededRepo())

	result, err := svc.ListBlogs(context.Background(), blog.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "conference-recap", result.Items[0].Slug)
	assert.Equal(t, "welcome", result.Items[1].Slug)
	// Unparsable date sorts oldest but is never dropped
	assert.Equal(t, "new-grant", result.Items[2].Slug)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestListBlogsFiltersAreConjunctive(t *testing.T) {
	svc := NewBlogService(seededRepo())

	result, err := svc.ListBlogs(context.Background(), blog.ListParams{
		Category: "news",
		Author:   "Ana",
		Query:    "grant",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "new-grant", result.Items[0].Slug)
}

func TestListBlogsEmptyFiltersMatchEverything(t *testing.T) {
	svc := NewBlogService(seededRepo())

	result, err := svc.ListBlogs(context.Background(), blog.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
}

func TestGetBlogBySlugNotFound(t *testing.T) {
	svc := NewBlogService(seededRepo())

	_, err := svc.GetBlogBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateBlogAssignsIDAndSlug(t *testing.T) {
	repo := seededRepo()
	svc := NewBlogService(repo)

	created, err := svc.CreateBlog(context.Background(), &blog.BlogCreateRequest{
		Title:    "Summer School 2024",
		Author:   "Ana",
		Category: "news",
		Date:     "2024-07-01",
		Content:  "body",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "summer-school-2024", created.Slug)

	stored, err := repo.GetBySlug(context.Background(), "summer-school-2024")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateBlogRejectsTakenSlug(t *testing.T) {
	repo := seededRepo()
	svc := NewBlogService(repo)

	_, err := svc.CreateBlog(context.Background(), &blog.BlogCreateRequest{
		Title:    "Welcome Back",
		Slug:     "welcome",
		Author:   "Ana",
		Category: "news",
		Date:     "2024-08-01",
		Content:  "body",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	// Nothing was persisted.
	result, err := svc.ListBlogs(context.Background(), blog.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
}

func TestCreateBlogValidation(t *testing.T) {
	svc := NewBlogService(seededRepo())

	_, err := svc.CreateBlog(context.Background(), &blog.BlogCreateRequest{Title: "no author"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateBlogKeepsEmptyFields(t *testing.T) {
	repo := seededRepo()
	svc := NewBlogService(repo)

	updated, err := svc.UpdateBlog(context.Background(), 1, &blog.BlogUpdateRequest{
		Title: "Welcome, again",
	})
	require.NoError(t, err)

	assert.Equal(t, "Welcome, again", updated.Title)
	// untouched fields survive
	assert.Equal(t, "Ana", updated.Author)
	assert.Equal(t, "news", updated.Category)
	assert.Equal(t, "welcome", updated.Slug)
}

func TestUpdateBlogNotFound(t *testing.T) {
	svc := NewBlogService(seededRepo())

	_, err := svc.UpdateBlog(context.Background(), 99, &blog.BlogUpdateRequest{Title: "x"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteBlog(t *testing.T) {
	repo := seededRepo()
	svc := NewBlogService(repo)

	require.NoError(t, svc.DeleteBlog(context.Background(), 2))

	result, err := svc.ListBlogs(context.Background(), blog.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestCategoriesSortedDistinct(t *testing.T) {
	svc := NewBlogService(seededRepo())

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"events", "news"}, got)
}
