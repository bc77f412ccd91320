package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsite-backend/internal/domains/paper"
	"labsite-backend/internal/shared/apperror"
)

// fakeRepo is an in-memory paper.Repository for service tests.
type fakeRepo struct {
	papers []paper.Paper
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]paper.Paper, error) {
	out := make([]paper.Paper, len(f.papers))
	copy(out, f.papers)
	return out, nil
}

func (f *fakeRepo) GetByKey(ctx context.Context, key paper.Key) (*paper.Paper, error) {
	for i := range f.papers {
		if f.papers[i].Title == key.Title && f.papers[i].Year == key.Year {
			return &f.papers[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *paper.Paper) (*paper.Paper, error) {
	f.papers = append(f.papers, *p)
	return p, nil
}

func (f *fakeRepo) Update(ctx context.Context, key paper.Key, p *paper.Paper) (*paper.Paper, error) {
	for i := range f.papers {
		if f.papers[i].Title == key.Title && f.papers[i].Year == key.Year {
			f.papers[i] = *p
			return p, nil
		}
	}
	return nil, paper.NewPaperNotFound(key)
}

func (f *fakeRepo) Delete(ctx context.Context, key paper.Key) error {
	for i := range f.papers {
		if f.papers[i].Title == key.Title && f.papers[i].Year == key.Year {
			f.papers = append(f.papers[:i], f.papers[i+1:]...)
			return nil
		}
	}
	return paper.NewPaperNotFound(key)
}

func (f *fakeRepo) Reload(ctx context.Context) error {
	return nil
}

// fakeCache is an in-memory pkg/cache.Cache recording operations.
type fakeCache struct {
	entries         map[string][]byte
	deletedPatterns []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	f.deletedPatterns = append(f.deletedPatterns, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range f.entries {
		if strings.HasPrefix(k, prefix) {
			delete(f.entries, k)
		}
	}
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error {
	return nil
}

func seededRepo() *fakeRepo {
	return &fakeRepo{papers: []paper.Paper{
		{Title: "Survey of Deep Learning", Authors: []string{"Ana Silva", "Bo Chen"}, Venue: "ICML", Year: "2023"},
		{Title: "Databases at Scale", Authors: []string{"Bo Chen"}, Venue: "VLDB", Year: "2021"},
		{Title: "An Old Result", Authors: []string{"Dana Pott"}, Venue: "ICML", Year: "n.d."},
		{Title: "Fresh Ideas", Authors: []string{"Ana Silva"}, Venue: "NeurIPS", Year: "2024"},
	}}
}

func TestListPapersNewestFirstByDefault(t *testing.T) {
	svc := NewPaperService(seededRepo(), nil)

	result, err := svc.ListPapers(context.Background(), paper.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, result.Items, 4)
	assert.Equal(t, "Fresh Ideas", result.Items[0].Title)
	assert.Equal(t, "Survey of Deep Learning", result.Items[1].Title)
	assert.Equal(t, "Databases at Scale", result.Items[2].Title)
	// "n.d." year sorts oldest but the paper is never dropped
	assert.Equal(t, "An Old Result", result.Items[3].Title)
}

func TestListPapersYearRange(t *testing.T) {
	svc := NewPaperService(seededRepo(), nil)

	result, err := svc.ListPapers(context.Background(), paper.ListParams{
		YearFrom: 2022, YearTo: 2023, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)

	// Unparsable year fails an active range
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Survey of Deep Learning", result.Items[0].Title)
}

func TestListPapersAuthorAnyMatch(t *testing.T) {
	svc := NewPaperService(seededRepo(), nil)

	result, err := svc.ListPapers(context.Background(), paper.ListParams{
		Author: "bo chen", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestListPapersSortAscending(t *testing.T) {
	svc := NewPaperService(seededRepo(), nil)

	result, err := svc.ListPapers(context.Background(), paper.ListParams{
		SortAsc: true, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "An Old Result", result.Items[0].Title)
	assert.Equal(t, "Fresh Ideas", result.Items[3].Title)
}

func TestGetPaperByKey(t *testing.T) {
	svc := NewPaperService(seededRepo(), nil)

	p, err := svc.GetPaper(context.Background(), paper.Key{Title: "Fresh Ideas", Year: "2024"})
	require.NoError(t, err)
	assert.Equal(t, "NeurIPS", p.Venue)

	_, err = svc.GetPaper(context.Background(), paper.Key{Title: "Fresh Ideas", Year: "1999"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFacetsComputedAndCached(t *testing.T) {
	c := newFakeCache()
	svc := NewPaperService(seededRepo(), c)

	years, err := svc.Years(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2021", "2023", "2024", "n.d."}, years)

	venues, err := svc.Venues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ICML", "NeurIPS", "VLDB"}, venues)

	authors, err := svc.Authors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Silva", "Bo Chen", "Dana Pott"}, authors)

	assert.Len(t, c.entries, 3)
}

func TestFacetServedFromCache(t *testing.T) {
	c := newFakeCache()
	repo := seededRepo()
	svc := NewPaperService(repo, c)

	_, err := svc.Years(context.Background())
	require.NoError(t, err)

	// The collection changes but the cached facet is still served
	repo.papers = nil
	years, err := svc.Years(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2021", "2023", "2024", "n.d."}, years)
}

func TestMutationsDropFacetCache(t *testing.T) {
	c := newFakeCache()
	svc := NewPaperService(seededRepo(), c)

	_, err := svc.Years(context.Background())
	require.NoError(t, err)
	require.Len(t, c.entries, 1)

	_, err = svc.CreatePaper(context.Background(), &paper.PaperCreateRequest{
		Title:   "Brand New",
		Authors: []string{"Ana Silva"},
		Year:    "2025",
	})
	require.NoError(t, err)

	assert.Empty(t, c.entries)
	require.NotEmpty(t, c.deletedPatterns)
	assert.Equal(t, "labsite:papers:facet:*", c.deletedPatterns[0])

	years, err := svc.Years(context.Background())
	require.NoError(t, err)
	assert.Contains(t, years, "2025")
}

func TestCreatePaperRejectsDuplicateKey(t *testing.T) {
	repo := seededRepo()
	svc := NewPaperService(repo, nil)

	_, err := svc.CreatePaper(context.Background(), &paper.PaperCreateRequest{
		Title:   "Fresh Ideas",
		Authors: []string{"Bo Chen"},
		Venue:   "ICLR",
		Year:    "2024",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Len(t, repo.papers, 4)

	// Same title in a different year is a distinct key.
	created, err := svc.CreatePaper(context.Background(), &paper.PaperCreateRequest{
		Title:   "Fresh Ideas",
		Authors: []string{"Bo Chen"},
		Venue:   "ICLR",
		Year:    "2025",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025", created.Year)
	assert.Len(t, repo.papers, 5)
}

func TestCreatePaperValidatesYear(t *testing.T) {
	svc := NewPaperService(seededRepo(), nil)

	_, err := svc.CreatePaper(context.Background(), &paper.PaperCreateRequest{
		Title:   "Bad Year",
		Authors: []string{"Ana Silva"},
		Year:    "20x5",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdatePaperOverlaysFields(t *testing.T) {
	svc := NewPaperService(seededRepo(), nil)

	key := paper.Key{Title: "Databases at Scale", Year: "2021"}
	updated, err := svc.UpdatePaper(context.Background(), key, &paper.PaperUpdateRequest{
		Venue: "SIGMOD",
	})
	require.NoError(t, err)

	assert.Equal(t, "SIGMOD", updated.Venue)
	assert.Equal(t, "Databases at Scale", updated.Title)
	assert.Equal(t, []string{"Bo Chen"}, updated.Authors)
}
