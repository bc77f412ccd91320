package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/collaborator"
	"labsite-backend/internal/shared/apperror"
)

// fakeRepo is an in-memory collaborator.Repository for service tests.
type fakeRepo struct {
	partners []collaborator.Collaborator
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]collaborator.Collaborator, error) {
	out := make([]collaborator.Collaborator, len(f.partners))
	copy(out, f.partners)
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*collaborator.Collaborator, error) {
	for i := range f.partners {
		if f.partners[i].ID == id {
			return &f.partners[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, cl *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	f.partners = append(f.partners, *cl)
	return cl, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int, cl *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	for i := range f.partners {
		if f.partners[i].ID == id {
			f.partners[i] = *cl
			return cl, nil
		}
	}
	return nil, collaborator.NewCollaboratorNotFound(id)
}

func (f *fakeRepo) Delete(ctx context.Context, id int) error {
	for i := range f.partners {
		if f.partners[i].ID == id {
			f.partners = append(f.partners[:i], f.partners[i+1:]...)
			return nil
		}
	}
	return collaborator.NewCollaboratorNotFound(id)
}

func (f *fakeRepo) NextID(ctx context.Context) (int, error) {
	maxID := 0
	for _, cl := range f.partners {
		if cl.ID > maxID {
			maxID = cl.ID
		}
	}
	return maxID + 1, nil
}

func (f *fakeRepo) Reload(ctx context.Context) error {
	return nil
}

func seededRepo() *fakeRepo {
	return &fakeRepo{partners: []collaborator.Collaborator{
		{ID: 1, Name: "City Hospital", Category: "industry", Description: "clinical data partner"},
		{ID: 2, Name: "State University", Category: "academic"},
		{ID: 3, Name: "DataCo", Category: "industry", Website: "https://dataco.example.org"},
		{ID: 4, Name: "Open Grants Fund", Category: "funding"},
	}}
}

func TestListCollaboratorsFiltersByCategory(t *testing.T) {
	svc := NewCollaboratorService(seededRepo())

	result, err := svc.ListCollaborators(context.Background(), collaborator.ListParams{
		Category: "industry", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "City Hospital", result.Items[0].Name)
	assert.Equal(t, "DataCo", result.Items[1].Name)
}

func TestListCollaboratorsSearchesDescription(t *testing.T) {
	svc := NewCollaboratorService(seededRepo())

	result, err := svc.ListCollaborators(context.Background(), collaborator.ListParams{
		Query: "clinical", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Items[0].ID)
}

// Categories appear in the order the document first mentions them, and
// each bucket keeps the document's insertion order.
func TestListGroupedFirstSeenOrder(t *testing.T) {
	svc := NewCollaboratorService(seededRepo())

	groups, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, "industry", groups[0].Category)
	assert.Equal(t, "academic", groups[1].Category)
	assert.Equal(t, "funding", groups[2].Category)

	require.Len(t, groups[0].Members, 2)
	assert.Equal(t, "City Hospital", groups[0].Members[0].Name)
	assert.Equal(t, "DataCo", groups[0].Members[1].Name)
}

func TestGetCollaboratorByIDNotFound(t *testing.T) {
	svc := NewCollaboratorService(seededRepo())

	_, err := svc.GetCollaboratorByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCollaboratorCategories(t *testing.T) {
	svc := NewCollaboratorService(seededRepo())

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"academic", "funding", "industry"}, cats)
}

func TestCreateCollaboratorAssignsNextID(t *testing.T) {
	repo := seededRepo()
	svc := NewCollaboratorService(repo)

	created, err := svc.CreateCollaborator(context.Background(), &collaborator.CollaboratorCreateRequest{
		Name:     "Civic Tech Guild",
		Category: "community",
		Website:  "https://guild.example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Len(t, repo.partners, 5)
}

func TestCreateCollaboratorRejectsBadWebsite(t *testing.T) {
	svc := NewCollaboratorService(seededRepo())

	_, err := svc.CreateCollaborator(context.Background(), &collaborator.CollaboratorCreateRequest{
		Name:     "No Site",
		Category: "industry",
		Website:  "not a url",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateCollaboratorKeepsEmptyFields(t *testing.T) {
	repo := seededRepo()
	svc := NewCollaboratorService(repo)

	updated, err := svc.UpdateCollaborator(context.Background(), 3, &collaborator.CollaboratorUpdateRequest{
		Description: "database tooling partner",
	})
	require.NoError(t, err)

	assert.Equal(t, "database tooling partner", updated.Description)
	// untouched fields survive
	assert.Equal(t, "DataCo", updated.Name)
	assert.Equal(t, "https://dataco.example.org", updated.Website)
}

func TestDeleteCollaborator(t *testing.T) {
	repo := seededRepo()
	svc := NewCollaboratorService(repo)

	require.NoError(t, svc.DeleteCollaborator(context.Background(), 2))

	groups, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "industry", groups[0].Category)
	assert.Equal(t, "funding", groups[1].Category)
}
