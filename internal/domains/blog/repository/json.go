package repository

import (
	"context"
	"sync"
	"time"

	"labsite-backend/internal/domains/blog"
	"labsite-backend/internal/infrastructure/jsondb"
	"labsite-backend/pkg/cache"
	"labsite-backend/pkg/logger"
)

const (
	collectionName = "blogs"
	cacheKey       = "labsite:blogs:snapshot"
	cacheTTL       = 5 * time.Minute
)

// jsonRepository serves blog reads from an in-memory snapshot of the
// blogs document, with a Redis layer in front of the file read so
// restarted replicas warm up without touching disk. Cache failures are
// never fatal; the document is the source of truth.
type jsonRepository struct {
	store *jsondb.Store
	cache cache.Cache

	mu     sync.RWMutex
	items  []blog.Blog
	loaded bool
}

// NewJSONRepository creates the jsondb-backed blog repository.
func NewJSONRepository(store *jsondb.Store, c cache.Cache) blog.Repository {
	return &jsonRepository{
		store: store,
		cache: c,
	}
}

func (r *jsonRepository) snapshot(ctx context.Context) ([]blog.Blog, error) {
	r.mu.RLock()
	if r.loaded {
		items := make([]blog.Blog, len(r.items))
		copy(items, r.items)
		r.mu.RUnlock()
		return items, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		if r.cache != nil {
			var cached []blog.Blog
			found, err := r.cache.Get(ctx, cacheKey, &cached)
			if err != nil {
				logger.Warn("blog cache read failed", err)
			} else if found {
				r.items = cached
				r.loaded = true
			}
		}

		if !r.loaded {
			items, err := jsondb.ReadCollection[blog.Blog](r.store, collectionName)
			if err != nil {
				return nil, blog.NewBlogLoadError(err)
			}
			r.items = items
			r.loaded = true

			if r.cache != nil {
				if err := r.cache.Set(ctx, cacheKey, items, cacheTTL); err != nil {
					logger.Warn("blog cache write failed", err)
				}
			}
		}
	}

	items := make([]blog.Blog, len(r.items))
	copy(items, r.items)
	return items, nil
}

// replace rewrites the document and swaps the snapshot. On a failed
// write the snapshot and cache are dropped: state unknown, reload
// before the next read.
func (r *jsonRepository) replace(ctx context.Context, items []blog.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dropCache(ctx)

	if err := jsondb.WriteCollection(r.store, collectionName, items); err != nil {
		r.items = nil
		r.loaded = false
		return blog.NewBlogIOError(err)
	}

	r.items = items
	r.loaded = true
	return nil
}

func (r *jsonRepository) dropCache(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		logger.Warn("blog cache invalidation failed", err)
	}
}

func (r *jsonRepository) GetAll(ctx context.Context) ([]blog.Blog, error) {
	return r.snapshot(ctx)
}

func (r *jsonRepository) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	items, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Slug == slug {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *jsonRepository) GetByID(ctx context.Context, id int) (*blog.Blog, error) {
	items, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *jsonRepository) Create(ctx context.Context, post *blog.Blog) (*blog.Blog, error) {
	items, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, *post)
	if err := r.replace(ctx, items); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *jsonRepository) Update(ctx context.Context, id int, post *blog.Blog) (*blog.Blog, error) {
	items, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if items[i].ID == id {
			post.ID = id
			items[i] = *post
			updated = true
			break
		}
	}
	if !updated {
		return nil, blog.NewBlogNotFoundByID(id)
	}

	if err := r.replace(ctx, items); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *jsonRepository) Delete(ctx context.Context, id int) error {
	items, err := r.snapshot(ctx)
	if err != nil {
		return err
	}

	remaining := make([]blog.Blog, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return blog.NewBlogNotFoundByID(id)
	}

	return r.replace(ctx, remaining)
}

func (r *jsonRepository) NextID(ctx context.Context) (int, error) {
	items, err := r.snapshot(ctx)
	if err != nil {
		return 0, err
	}

	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1, nil
}

func (r *jsonRepository) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	r.loaded = false
	r.dropCache(ctx)
	return nil
}
