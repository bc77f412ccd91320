package repository

import (
	"context"

	"labsite-backend/internal/domains/paper"
	"labsite-backend/internal/infrastructure/jsondb"
)

const collectionName = "papers"

// jsonRepository serves paper reads from the papers document snapshot.
type jsonRepository struct {
	coll *jsondb.Collection[paper.Paper]
}

// NewJSONRepository creates the jsondb-backed paper repository.
func NewJSONRepository(store *jsondb.Store) paper.Repository {
	return &jsonRepository{
		coll: jsondb.NewCollection[paper.Paper](store, collectionName),
	}
}

func (r *jsonRepository) GetAll(ctx context.Context) ([]paper.Paper, error) {
	items, err := r.coll.Snapshot()
	if err != nil {
		return nil, paper.NewPaperLoadError(err)
	}
	return items, nil
}

func matchKey(p paper.Paper, key paper.Key) bool {
	return p.Title == key.Title && p.Year == key.Year
}

func (r *jsonRepository) GetByKey(ctx context.Context, key paper.Key) (*paper.Paper, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if matchKey(items[i], key) {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *jsonRepository) Create(ctx context.Context, p *paper.Paper) (*paper.Paper, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, *p)
	if err := r.coll.Replace(items); err != nil {
		return nil, paper.NewPaperIOError(err)
	}
	return p, nil
}

func (r *jsonRepository) Update(ctx context.Context, key paper.Key, p *paper.Paper) (*paper.Paper, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if matchKey(items[i], key) {
			items[i] = *p
			updated = true
			break
		}
	}
	if !updated {
		return nil, paper.NewPaperNotFound(key)
	}

	if err := r.coll.Replace(items); err != nil {
		return nil, paper.NewPaperIOError(err)
	}
	return p, nil
}

func (r *jsonRepository) Delete(ctx context.Context, key paper.Key) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]paper.Paper, 0, len(items))
	found := false
	for _, item := range items {
		if !found && matchKey(item, key) {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return paper.NewPaperNotFound(key)
	}

	if err := r.coll.Replace(remaining); err != nil {
		return paper.NewPaperIOError(err)
	}
	return nil
}

func (r *jsonRepository) Reload(ctx context.Context) error {
	r.coll.Invalidate()
	return nil
}
