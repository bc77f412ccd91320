package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/person"
	"labsite-backend/internal/shared/apperror"
)

// fakeRepo is an in-memory person.Repository for service tests.
// It mirrors the "slug unique within category" matching rule.
type fakeRepo struct {
	people []person.Person
}

func match(p person.Person, slug, category string) bool {
	if p.Slug != slug {
		return false
	}
	return category == "" || p.Category == category
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]person.Person, error) {
	out := make([]person.Person, len(f.people))
	copy(out, f.people)
	return out, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug, category string) (*person.Person, error) {
	for i := range f.people {
		if match(f.people[i], slug, category) {
			return &f.people[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *person.Person) (*person.Person, error) {
	f.people = append(f.people, *p)
	return p, nil
}

func (f *fakeRepo) Update(ctx context.Context, slug, category string, p *person.Person) (*person.Person, error) {
	for i := range f.people {
		if match(f.people[i], slug, category) {
			f.people[i] = *p
			return p, nil
		}
	}
	return nil, person.NewPersonNotFound(slug)
}

func (f *fakeRepo) Delete(ctx context.Context, slug, category string) error {
	for i := range f.people {
		if match(f.people[i], slug, category) {
			f.people = append(f.people[:i], f.people[i+1:]...)
			return nil
		}
	}
	return person.NewPersonNotFound(slug)
}

func (f *fakeRepo) Reload(ctx context.Context) error {
	return nil
}

func seededRepo() *fakeRepo {
	return &fakeRepo{people: []person.Person{
		{Name: "Ana Silva", Title: "Professor", Category: "faculty", Slug: "ana-silva", Interests: []string{"machine learning"}},
		{Name: "Bo Chen", Title: "PhD Student", Category: "students", Slug: "bo-chen", Interests: []string{"databases"}},
		{Name: "Ana Silva", Title: "Alumna", Category: "alumni", Slug: "ana-silva"},
		{Name: "Dana Pott", Title: "Postdoc", Category: "faculty", Slug: "dana-pott"},
	}}
}

func TestListPeopleKeepsInsertionOrder(t *testing.T) {
	svc := NewPersonService(seededRepo())

	result, err := svc.ListPeople(context.Background(), person.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, result.Items, 4)
	assert.Equal(t, "ana-silva", result.Items[0].Slug)
	assert.Equal(t, "bo-chen", result.Items[1].Slug)
}

func TestListPeopleSearchesInterests(t *testing.T) {
	svc := NewPersonService(seededRepo())

	result, err := svc.ListPeople(context.Background(), person.ListParams{
		Query: "databases", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "bo-chen", result.Items[0].Slug)
}

func TestListGroupedFirstSeenOrder(t *testing.T) {
	svc := NewPersonService(seededRepo())

	groups, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, "faculty", groups[0].Category)
	assert.Equal(t, "students", groups[1].Category)
	assert.Equal(t, "alumni", groups[2].Category)
	require.Len(t, groups[0].People, 2)
	assert.Equal(t, "ana-silva", groups[0].People[0].Slug)
	assert.Equal(t, "dana-pott", groups[0].People[1].Slug)
}

// The same slug may exist in two categories; the category parameter
// picks one, and omitting it falls back to document scan order.
func TestGetPersonBySlugCategoryDisambiguates(t *testing.T) {
	svc := NewPersonService(seededRepo())

	p, err := svc.GetPersonBySlug(context.Background(), "ana-silva", "alumni")
	require.NoError(t, err)
	assert.Equal(t, "Alumna", p.Title)

	p, err = svc.GetPersonBySlug(context.Background(), "ana-silva", "")
	require.NoError(t, err)
	assert.Equal(t, "Professor", p.Title)
}

func TestGetPersonBySlugNotFound(t *testing.T) {
	svc := NewPersonService(seededRepo())

	_, err := svc.GetPersonBySlug(context.Background(), "nobody", "")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreatePersonDerivesSlug(t *testing.T) {
	repo := seededRepo()
	svc := NewPersonService(repo)

	created, err := svc.CreatePerson(context.Background(), &person.PersonCreateRequest{
		Name:     "Dr. José Müller",
		Title:    "Visiting Researcher",
		Category: "faculty",
	})
	require.NoError(t, err)
	assert.Equal(t, "dr-jose-muller", created.Slug)
}

func TestCreatePersonRejectsTakenSlugInCategory(t *testing.T) {
	repo := seededRepo()
	svc := NewPersonService(repo)

	// ana-silva already exists in faculty.
	_, err := svc.CreatePerson(context.Background(), &person.PersonCreateRequest{
		Name:     "Ana Silva",
		Title:    "Lecturer",
		Category: "faculty",
		Slug:     "ana-silva",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	require.Len(t, repo.people, 4)

	// The same slug in an unused category is fine.
	created, err := svc.CreatePerson(context.Background(), &person.PersonCreateRequest{
		Name:     "Ana Silva",
		Title:    "PhD Student",
		Category: "students",
		Slug:     "ana-silva",
	})
	require.NoError(t, err)
	assert.Equal(t, "students", created.Category)
	assert.Len(t, repo.people, 5)
}

func TestUpdatePersonScopedToCategory(t *testing.T) {
	repo := seededRepo()
	svc := NewPersonService(repo)

	_, err := svc.UpdatePerson(context.Background(), "ana-silva", "alumni", &person.PersonUpdateRequest{
		Title: "Distinguished Alumna",
	})
	require.NoError(t, err)

	// Only the alumni record changed
	alumna, err := svc.GetPersonBySlug(context.Background(), "ana-silva", "alumni")
	require.NoError(t, err)
	assert.Equal(t, "Distinguished Alumna", alumna.Title)

	professor, err := svc.GetPersonBySlug(context.Background(), "ana-silva", "faculty")
	require.NoError(t, err)
	assert.Equal(t, "Professor", professor.Title)
}

func TestCategoriesSortedDistinct(t *testing.T) {
	svc := NewPersonService(seededRepo())

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alumni", "faculty", "students"}, got)
}
