package repository

import (
	"context"

	"labsite-backend/internal/domains/collaborator"
	"labsite-backend/internal/infrastructure/jsondb"
)

const collectionName = "collaborators"

// jsonRepository serves partner reads from the collaborators document snapshot.
type jsonRepository struct {
	coll *jsondb.Collection[collaborator.Collaborator]
}

// NewJSONRepository creates the jsondb-backed collaborator repository.
func NewJSONRepository(store *jsondb.Store) collaborator.Repository {
	return &jsonRepository{
		coll: jsondb.NewCollection[collaborator.Collaborator](store, collectionName),
	}
}

func (r *jsonRepository) GetAll(ctx context.Context) ([]collaborator.Collaborator, error) {
	items, err := r.coll.Snapshot()
	if err != nil {
		return nil, collaborator.NewCollaboratorLoadError(err)
	}
	return items, nil
}

func (r *jsonRepository) GetByID(ctx context.Context, id int) (*collaborator.Collaborator, error) {
	items, err := r.GetAll(ctx)
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

func (r *jsonRepository) Create(ctx context.Context, cl *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, *cl)
	if err := r.coll.Replace(items); err != nil {
		return nil, collaborator.NewCollaboratorIOError(err)
	}
	return cl, nil
}

func (r *jsonRepository) Update(ctx context.Context, id int, cl *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if items[i].ID == id {
			items[i] = *cl
			updated = true
			break
		}
	}
	if !updated {
		return nil, collaborator.NewCollaboratorNotFound(id)
	}

	if err := r.coll.Replace(items); err != nil {
		return nil, collaborator.NewCollaboratorIOError(err)
	}
	return cl, nil
}

func (r *jsonRepository) Delete(ctx context.Context, id int) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]collaborator.Collaborator, 0, len(items))
	found := false
	for _, item := range items {
		if !found && item.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return collaborator.NewCollaboratorNotFound(id)
	}

	if err := r.coll.Replace(remaining); err != nil {
		return collaborator.NewCollaboratorIOError(err)
	}
	return nil
}

func (r *jsonRepository) NextID(ctx context.Context) (int, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1, nil
}

func (r *jsonRepository) Reload(ctx context.Context) error {
	r.coll.Invalidate()
	return nil
}
