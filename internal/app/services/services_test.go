package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swcatalog/starwars/internal/app/importer"
	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/app/repositories"
	"github.com/swcatalog/starwars/internal/app/schema"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
	"github.com/swcatalog/starwars/internal/swapi"
)

// stubPopulator records guard calls and inserts a fixed row when asked to
type stubPopulator struct {
	calls  []swapi.Resource
	insert func(ctx context.Context) error
	err    error
}

func (p *stubPopulator) PopulateIfEmpty(ctx context.Context, resource swapi.Resource, isEmpty func(context.Context) (bool, error)) (*importer.Summary, error) {
	p.calls = append(p.calls, resource)
	if p.err != nil {
		return nil, p.err
	}
	empty, err := isEmpty(ctx)
	if err != nil || !empty {
		return nil, err
	}
	if p.insert != nil {
		if err := p.insert(ctx); err != nil {
			return nil, err
		}
	}
	return &importer.Summary{Resource: resource, Pages: 1, Imported: 1}, nil
}

func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	database, err := db.OpenSQLite(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	require.NoError(t, schema.Apply(context.Background(), database, zerolog.Nop()))
	return repositories.NewRepositories(database)
}

func ptr[T any](v T) *T { return &v }

func TestPlanetService_ListPopulatesEmptyTableOnce(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	populator := &stubPopulator{insert: func(ctx context.Context) error {
		_, err := repos.PlanetRepository.Create(ctx, &models.Planet{Name: "Tatooine"})
		return err
	}}
	svc := NewPlanetService(repos.PlanetRepository, populator)

	planets, err := svc.GetAllPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	assert.Equal(t, "Tatooine", planets[0].Name)

	planets, err = svc.GetAllPlanets(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 1)
	assert.Equal(t, []swapi.Resource{swapi.Planets, swapi.Planets}, populator.calls)
}

func TestPlanetService_PopulateErrorSurfaces(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPlanetService(repos.PlanetRepository, &stubPopulator{err: errors.New("store unavailable")})

	_, err := svc.GetAllPlanets(context.Background())
	assert.Error(t, err)
}

func TestStarshipService_Validation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStarshipService(repos.StarshipRepository, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		starship *models.Starship
	}{
		{name: "nil", starship: nil},
		{name: "blank name", starship: &models.Starship{Name: " "}},
		{name: "negative cost", starship: &models.Starship{Name: "A", CostInCredits: ptr(int64(-1))}},
		{name: "negative length", starship: &models.Starship{Name: "A", Length: ptr(-0.5)}},
		{name: "negative cargo", starship: &models.Starship{Name: "A", CargoCapacity: ptr(int64(-3))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateStarship(ctx, tt.starship)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestStarshipService_CreateThenDelete(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStarshipService(repos.StarshipRepository, nil)
	ctx := context.Background()

	ship := &models.Starship{Name: "  X-wing ", Model: ptr("T-65")}
	id, err := svc.CreateStarship(ctx, ship)
	require.NoError(t, err)
	assert.Equal(t, id, ship.ID)

	got, err := svc.GetStarshipByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "X-wing", got.Name)
	assert.Nil(t, got.CostInCredits)

	require.NoError(t, svc.DeleteStarship(ctx, id))
	_, err = svc.GetStarshipByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.ErrorIs(t, svc.DeleteStarship(ctx, id), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, svc.DeleteStarship(ctx, 0), apperrors.ErrResourceNotFound)
	_, err = svc.GetStarshipByID(ctx, -3)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCharacterService_StampsTimestamps(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCharacterService(repos.CharacterRepository, nil)
	ctx := context.Background()
	before := time.Now().UTC().Add(-time.Second)

	id, err := svc.CreateCharacter(ctx, &models.Character{Name: "Leia Organa"})
	require.NoError(t, err)

	got, err := svc.GetCharacterByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Created.After(before))
	assert.True(t, got.Created.Equal(got.Edited))
	assert.Equal(t, time.UTC, got.Created.Location())
}

func TestMovieService_RequiresReleaseDate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMovieService(repos.MovieRepository, nil)

	_, err := svc.CreateMovie(context.Background(), &models.Movie{Title: "Untitled", EpisodeID: 7})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestVehicleService_RequiresModel(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewVehicleService(repos.VehicleRepository, nil)

	_, err := svc.CreateVehicle(context.Background(), &models.Vehicle{Name: "Snowspeeder"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestFavoriteService_RequiredFields(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFavoriteService(repos.FavoriteRepository)
	ctx := context.Background()

	_, err := svc.CreateFavorite(ctx, &models.Favorite{StudentName1: "Rey", Registration1: "1"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateFavorite(ctx, &models.Favorite{CharacterID: 3, StudentName1: "Rey"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	id, err := svc.CreateFavorite(ctx, &models.Favorite{CharacterID: 3, StudentName1: "Rey", Registration1: "1"})
	require.NoError(t, err)

	all, err := svc.GetAllFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
}
