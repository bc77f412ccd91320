package repository

import (
	"context"

	"labsite-backend/internal/domains/person"
	"labsite-backend/internal/infrastructure/jsondb"
)

const collectionName = "people"

// jsonRepository serves person reads from the people document snapshot.
type jsonRepository struct {
	coll *jsondb.Collection[person.Person]
}

// NewJSONRepository creates the jsondb-backed person repository.
func NewJSONRepository(store *jsondb.Store) person.Repository {
	return &jsonRepository{
		coll: jsondb.NewCollection[person.Person](store, collectionName),
	}
}

func (r *jsonRepository) GetAll(ctx context.Context) ([]person.Person, error) {
	items, err := r.coll.Snapshot()
	if err != nil {
		return nil, person.NewPersonLoadError(err)
	}
	return items, nil
}

// matchKey honors the "slug unique within category" rule: an empty
// category matches the first member with the slug in scan order.
func matchKey(p person.Person, slug, category string) bool {
	if p.Slug != slug {
		return false
	}
	return category == "" || p.Category == category
}

func (r *jsonRepository) GetBySlug(ctx context.Context, slug, category string) (*person.Person, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if matchKey(items[i], slug, category) {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *jsonRepository) Create(ctx context.Context, p *person.Person) (*person.Person, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, *p)
	if err := r.coll.Replace(items); err != nil {
		return nil, person.NewPersonIOError(err)
	}
	return p, nil
}

func (r *jsonRepository) Update(ctx context.Context, slug, category string, p *person.Person) (*person.Person, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if matchKey(items[i], slug, category) {
			items[i] = *p
			updated = true
			break
		}
	}
	if !updated {
		return nil, person.NewPersonNotFound(slug)
	}

	if err := r.coll.Replace(items); err != nil {
		return nil, person.NewPersonIOError(err)
	}
	return p, nil
}

func (r *jsonRepository) Delete(ctx context.Context, slug, category string) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]person.Person, 0, len(items))
	found := false
	for _, item := range items {
		if !found && matchKey(item, slug, category) {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return person.NewPersonNotFound(slug)
	}

	if err := r.coll.Replace(remaining); err != nil {
		return person.NewPersonIOError(err)
	}
	return nil
}

func (r *jsonRepository) Reload(ctx context.Context) error {
	r.coll.Invalidate()
	return nil
}
