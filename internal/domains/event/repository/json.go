package repository

import (
	"context"

	"labsite-backend/internal/domains/event"
	"labsite-backend/internal/infrastructure/jsondb"
)

const collectionName = "events"

// jsonRepository serves event reads from the events document snapshot.
type jsonRepository struct {
	coll *jsondb.Collection[event.Event]
}

// NewJSONRepository creates the jsondb-backed event repository.
func NewJSONRepository(store *jsondb.Store) event.Repository {
	return &jsonRepository{
		coll: jsondb.NewCollection[event.Event](store, collectionName),
	}
}

func (r *jsonRepository) GetAll(ctx context.Context) ([]event.Event, error) {
	items, err := r.coll.Snapshot()
	if err != nil {
		return nil, event.NewEventLoadError(err)
	}
	return items, nil
}

func (r *jsonRepository) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	items, err := r.GetAll(ctx)
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

func (r *jsonRepository) Create(ctx context.Context, e *event.Event) (*event.Event, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, *e)
	if err := r.coll.Replace(items); err != nil {
		return nil, event.NewEventIOError(err)
	}
	return e, nil
}

func (r *jsonRepository) Update(ctx context.Context, slug string, e *event.Event) (*event.Event, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if items[i].Slug == slug {
			items[i] = *e
			updated = true
			break
		}
	}
	if !updated {
		return nil, event.NewEventNotFound(slug)
	}

	if err := r.coll.Replace(items); err != nil {
		return nil, event.NewEventIOError(err)
	}
	return e, nil
}

func (r *jsonRepository) Delete(ctx context.Context, slug string) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]event.Event, 0, len(items))
	found := false
	for _, item := range items {
		if !found && item.Slug == slug {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return event.NewEventNotFound(slug)
	}

	if err := r.coll.Replace(remaining); err != nil {
		return event.NewEventIOError(err)
	}
	return nil
}

func (r *jsonRepository) Reload(ctx context.Context) error {
	r.coll.Invalidate()
	return nil
}
