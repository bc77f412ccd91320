package repository

import (
	"context"

	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/infrastructure/jsondb"
)

const collectionName = "projects"

// jsonRepository serves project reads from the projects document snapshot.
type jsonRepository struct {
	coll *jsondb.Collection[project.Project]
}

// NewJSONRepository creates the jsondb-backed project repository.
func NewJSONRepository(store *jsondb.Store) project.Repository {
	return &jsonRepository{
		coll: jsondb.NewCollection[project.Project](store, collectionName),
	}
}

func (r *jsonRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	items, err := r.coll.Snapshot()
	if err != nil {
		return nil, project.NewProjectLoadError(err)
	}
	return items, nil
}

func (r *jsonRepository) GetByID(ctx context.Context, id int) (*project.Project, error) {
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

func (r *jsonRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, *p)
	if err := r.coll.Replace(items); err != nil {
		return nil, project.NewProjectIOError(err)
	}
	return p, nil
}

func (r *jsonRepository) Update(ctx context.Context, id int, p *project.Project) (*project.Project, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if items[i].ID == id {
			items[i] = *p
			updated = true
			break
		}
	}
	if !updated {
		return nil, project.NewProjectNotFound(id)
	}

	if err := r.coll.Replace(items); err != nil {
		return nil, project.NewProjectIOError(err)
	}
	return p, nil
}

func (r *jsonRepository) Delete(ctx context.Context, id int) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]project.Project, 0, len(items))
	found := false
	for _, item := range items {
		if !found && item.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return project.NewProjectNotFound(id)
	}

	if err := r.coll.Replace(remaining); err != nil {
		return project.NewProjectIOError(err)
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
