package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/project"
	"labsite-backend/internal/shared/apperror"
)

// fakeRepo is an in-memory project.Repository for service tests.
type fakeRepo struct {
	projects []project.Project
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]project.Project, error) {
	out := make([]project.Project, len(f.projects))
	copy(out, f.projects)
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*project.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	f.projects = append(f.projects, *p)
	return p, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int, p *project.Project) (*project.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects[i] = *p
			return p, nil
		}
	}
	return nil, project.NewProjectNotFound(id)
}

func (f *fakeRepo) Delete(ctx context.Context, id int) error {
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return project.NewProjectNotFound(id)
}

func (f *fakeRepo) NextID(ctx context.Context) (int, error) {
	maxID := 0
	for _, p := range f.projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1, nil
}

func (f *fakeRepo) Reload(ctx context.Context) error {
	return nil
}

func seededRepo() *fakeRepo {
	return &fakeRepo{projects: []project.Project{
		{ID: 1, Title: "Federated Learning Testbed", Category: "ongoing", Description: "distributed training", Collaborators: []string{"City Hospital"}},
		{ID: 2, Title: "Archive Digitization", Category: "completed", Description: "OCR pipeline"},
		{ID: 3, Title: "Graph Query Engine", Category: "ongoing", Collaborators: []string{"DataCo"}},
	}}
}

func TestListProjectsKeepsInsertionOrder(t *testing.T) {
	svc := NewProjectService(seededRepo())

	result, err := svc.ListProjects(context.Background(), project.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, 1, result.Items[0].ID)
	assert.Equal(t, 2, result.Items[1].ID)
	assert.Equal(t, 3, result.Items[2].ID)
}

func TestListProjectsFiltersConjunctively(t *testing.T) {
	svc := NewProjectService(seededRepo())

	result, err := svc.ListProjects(context.Background(), project.ListParams{
		Query: "training", Category: "ongoing", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Federated Learning Testbed", result.Items[0].Title)
}

func TestListProjectsSearchesCollaborators(t *testing.T) {
	svc := NewProjectService(seededRepo())

	result, err := svc.ListProjects(context.Background(), project.ListParams{
		Query: "dataco", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 3, result.Items[0].ID)
}

func TestGetProjectByIDNotFound(t *testing.T) {
	svc := NewProjectService(seededRepo())

	_, err := svc.GetProjectByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProjectCategories(t *testing.T) {
	svc := NewProjectService(seededRepo())

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"completed", "ongoing"}, cats)
}

func TestCreateProjectAssignsNextID(t *testing.T) {
	repo := seededRepo()
	svc := NewProjectService(repo)

	created, err := svc.CreateProject(context.Background(), &project.ProjectCreateRequest{
		Title:    "Robotics Lab Refresh",
		Category: "ongoing",
		Links:    []project.Link{{Label: "Repo", URL: "https://example.org/robots"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Len(t, repo.projects, 4)
}

func TestCreateProjectValidatesLinks(t *testing.T) {
	svc := NewProjectService(seededRepo())

	_, err := svc.CreateProject(context.Background(), &project.ProjectCreateRequest{
		Title:    "Broken Links",
		Category: "ongoing",
		Links:    []project.Link{{Label: "Repo"}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateProjectKeepsEmptyFields(t *testing.T) {
	repo := seededRepo()
	svc := NewProjectService(repo)

	updated, err := svc.UpdateProject(context.Background(), 1, &project.ProjectUpdateRequest{
		Description: "cross-hospital training",
	})
	require.NoError(t, err)

	assert.Equal(t, "cross-hospital training", updated.Description)
	// untouched fields survive
	assert.Equal(t, "Federated Learning Testbed", updated.Title)
	assert.Equal(t, []string{"City Hospital"}, updated.Collaborators)
}

func TestUpdateProjectReplacesLinksWholesale(t *testing.T) {
	repo := seededRepo()
	svc := NewProjectService(repo)

	links := []project.Link{{Label: "Paper", URL: "https://example.org/paper"}}
	updated, err := svc.UpdateProject(context.Background(), 2, &project.ProjectUpdateRequest{Links: links})
	require.NoError(t, err)
	assert.Equal(t, links, updated.Links)
}

func TestDeleteProject(t *testing.T) {
	repo := seededRepo()
	svc := NewProjectService(repo)

	require.NoError(t, svc.DeleteProject(context.Background(), 2))

	result, err := svc.ListProjects(context.Background(), project.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}
