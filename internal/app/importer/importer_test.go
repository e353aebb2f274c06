package importer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/app/repositories"
	"github.com/swcatalog/starwars/internal/app/schema"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
	"github.com/swcatalog/starwars/internal/swapi"
)

// fakeCatalog serves canned pages keyed by cursor. The first page uses the
// empty cursor and page n+1 is reached through cursor "page-<n+1>".
type fakeCatalog struct {
	pages   map[swapi.Resource][][]swapi.Record
	failAt  int
	calls   atomic.Int32
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeCatalog) FetchPage(ctx context.Context, resource swapi.Resource, cursor string) (*swapi.Page, error) {
	f.calls.Add(1)
	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}
	if f.gate != nil {
		<-f.gate
	}

	idx := 0
	if cursor != "" {
		idx = int(cursor[len(cursor)-1]-'0') - 1
	}
	if f.failAt > 0 && idx+1 == f.failAt {
		return nil, &swapi.FetchError{Resource: resource, URL: cursor, StatusCode: 500, Err: swapi.ErrUnexpectedStatus}
	}

	pages := f.pages[resource]
	page := &swapi.Page{Results: pages[idx]}
	if idx+1 < len(pages) {
		page.Next = "page-" + string(rune('0'+idx+2))
	}
	return page, nil
}

func newTestImporter(t *testing.T, catalog PageFetcher) (*Importer, *repositories.Repositories) {
	t.Helper()
	database, err := db.OpenSQLite(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	require.NoError(t, schema.Apply(context.Background(), database, zerolog.Nop()))

	repos := repositories.NewRepositories(database)
	imp := New(catalog, zerolog.Nop())

	Register(imp, swapi.Planets, Binding[models.Planet]{
		Map: MapPlanet,
		Exists: func(ctx context.Context, p *models.Planet) (bool, error) {
			return repos.PlanetRepository.ExistsByName(ctx, p.Name)
		},
		Create: repos.PlanetRepository.Create,
	})
	Register(imp, swapi.Starships, Binding[models.Starship]{
		Map: MapStarship,
		Exists: func(ctx context.Context, s *models.Starship) (bool, error) {
			return repos.StarshipRepository.ExistsByName(ctx, s.Name)
		},
		Create: repos.StarshipRepository.Create,
	})
	return imp, repos
}

func planetPages() map[swapi.Resource][][]swapi.Record {
	return map[swapi.Resource][][]swapi.Record{
		swapi.Planets: {
			{{"name": "Tatooine", "population": "200000"}, {"name": "Alderaan", "population": "2,000,000,000"}},
			{{"name": "Tatooine", "population": "200000"}, {"name": "Hoth", "population": "unknown"}},
		},
	}
}

func TestImport_DeduplicatesAcrossPages(t *testing.T) {
	catalog := &fakeCatalog{pages: planetPages()}
	imp, repos := newTestImporter(t, catalog)
	ctx := context.Background()

	summary, err := imp.Import(ctx, swapi.Planets)
	require.NoError(t, err)
	assert.True(t, summary.Complete())
	assert.Equal(t, 2, summary.Pages)
	assert.Equal(t, 3, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Failed)

	planets, err := repos.PlanetRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 3)

	names := map[string]int{}
	for _, p := range planets {
		names[p.Name]++
	}
	assert.Equal(t, 1, names["Tatooine"])
	assert.Equal(t, int64(2000000000), *planets[1].Population)
	assert.Nil(t, planets[2].Population)
}

func TestImport_RunTwiceIsIdempotent(t *testing.T) {
	imp, repos := newTestImporter(t, &fakeCatalog{pages: planetPages()})
	ctx := context.Background()

	_, err := imp.Import(ctx, swapi.Planets)
	require.NoError(t, err)
	second, err := imp.Import(ctx, swapi.Planets)
	require.NoError(t, err)

	assert.Zero(t, second.Imported)
	assert.Equal(t, 4, second.Skipped)

	planets, err := repos.PlanetRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 3)
}

func TestImport_FetchErrorKeepsPartialImport(t *testing.T) {
	imp, repos := newTestImporter(t, &fakeCatalog{pages: planetPages(), failAt: 2})
	ctx := context.Background()

	summary, err := imp.Import(ctx, swapi.Planets)
	require.NoError(t, err)
	assert.False(t, summary.Complete())
	assert.ErrorIs(t, summary.FetchError, apperrors.ErrExternalFetch)
	assert.ErrorIs(t, summary.FetchError, swapi.ErrUnexpectedStatus)
	assert.Equal(t, 1, summary.Pages)
	assert.Equal(t, 2, summary.Imported)

	planets, err := repos.PlanetRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 2)
}

func TestImport_FailedRecordDoesNotAbort(t *testing.T) {
	catalog := &fakeCatalog{pages: map[swapi.Resource][][]swapi.Record{
		swapi.Starships: {{
			{"name": "", "model": "nameless"},
			{"name": "Broken", "cost_in_credits": "-5"},
			{"name": "Millennium Falcon", "cost_in_credits": "100,000", "length": "34.37", "MGLT": "75"},
		}},
	}}
	imp, repos := newTestImporter(t, catalog)
	ctx := context.Background()

	summary, err := imp.Import(ctx, swapi.Starships)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.Imported)

	ships, err := repos.StarshipRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, ships, 1)
	assert.Equal(t, int64(100000), *ships[0].CostInCredits)
	assert.Equal(t, 34.37, *ships[0].Length)
}

func TestImport_UnboundResource(t *testing.T) {
	imp, _ := newTestImporter(t, &fakeCatalog{})

	_, err := imp.Import(context.Background(), swapi.Vehicles)
	assert.ErrorIs(t, err, ErrUnboundResource)
}

func TestPopulateIfEmpty_SkipsPopulatedTable(t *testing.T) {
	catalog := &fakeCatalog{pages: planetPages()}
	imp, repos := newTestImporter(t, catalog)
	ctx := context.Background()

	_, err := repos.PlanetRepository.Create(ctx, &models.Planet{Name: "Coruscant"})
	require.NoError(t, err)

	summary, err := imp.PopulateIfEmpty(ctx, swapi.Planets, repos.PlanetRepository.IsEmpty)
	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.Zero(t, catalog.calls.Load())
}

func TestPopulateIfEmpty_PropagatesStoreError(t *testing.T) {
	imp, _ := newTestImporter(t, &fakeCatalog{})
	boom := errors.New("store down")

	_, err := imp.PopulateIfEmpty(context.Background(), swapi.Planets, func(context.Context) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestPopulateIfEmpty_ConcurrentCallersShareOneImport(t *testing.T) {
	catalog := &fakeCatalog{
		pages:   planetPages(),
		gate:    make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	imp, repos := newTestImporter(t, catalog)
	ctx := context.Background()

	const callers = 5
	var wg sync.WaitGroup
	summaries := make([]*Summary, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		s, err := imp.PopulateIfEmpty(ctx, swapi.Planets, repos.PlanetRepository.IsEmpty)
		assert.NoError(t, err)
		summaries[0] = s
	}()
	<-catalog.entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := imp.PopulateIfEmpty(ctx, swapi.Planets, repos.PlanetRepository.IsEmpty)
			assert.NoError(t, err)
			summaries[i] = s
		}(i)
	}

	close(catalog.gate)
	wg.Wait()

	assert.Equal(t, int32(2), catalog.calls.Load(), "one fetch per page")
	require.NotNil(t, summaries[0])
	assert.Equal(t, 3, summaries[0].Imported)

	planets, err := repos.PlanetRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 3)
}

// loopingCatalog always points back at its second page
type loopingCatalog struct {
	calls atomic.Int32
}

func (c *loopingCatalog) FetchPage(_ context.Context, _ swapi.Resource, cursor string) (*swapi.Page, error) {
	if c.calls.Add(1) > 10 {
		return nil, errors.New("walked past the loop")
	}
	name := "Tatooine"
	if cursor != "" {
		name = "Hoth"
	}
	return &swapi.Page{Results: []swapi.Record{{"name": name}}, Next: "page-2"}, nil
}

func TestImport_StopsOnRepeatedCursor(t *testing.T) {
	catalog := &loopingCatalog{}
	imp, repos := newTestImporter(t, catalog)
	ctx := context.Background()

	summary, err := imp.Import(ctx, swapi.Planets)
	require.NoError(t, err)
	assert.Equal(t, int32(2), catalog.calls.Load())
	assert.Equal(t, 2, summary.Pages)
	assert.Equal(t, 2, summary.Imported)
	assert.False(t, summary.Complete())
	assert.ErrorIs(t, summary.FetchError, ErrCursorLoop)
	assert.ErrorIs(t, summary.FetchError, apperrors.ErrExternalFetch)

	planets, err := repos.PlanetRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 2)
}
