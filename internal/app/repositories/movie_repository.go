package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
)

var movieColumns = []string{
	"id", "title", "episode_id", "opening_crawl", "director", "producer", "release_date",
	"characters", "planets", "starships", "vehicles", "species", "created", "edited",
}

// MovieRepository handles movie database operations
type MovieRepository struct {
	baseRepository
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(database *db.Database) *MovieRepository {
	return &MovieRepository{baseRepository: newBaseRepository(database, "movies", "movie")}
}

func scanMovie(row rowScanner) (*models.Movie, error) {
	m := &models.Movie{}
	err := row.Scan(&m.ID, &m.Title, &m.EpisodeID, &m.OpeningCrawl, &m.Director, &m.Producer, &m.ReleaseDate,
		&m.Characters, &m.Planets, &m.Starships, &m.Vehicles, &m.Species,
		helpers.ScanTime(&m.Created), helpers.ScanTime(&m.Edited))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create stores a movie and returns its id
func (r *MovieRepository) Create(ctx context.Context, m *models.Movie) (int64, error) {
	return r.insert(ctx, map[string]any{
		"title":         m.Title,
		"episode_id":    m.EpisodeID,
		"opening_crawl": m.OpeningCrawl,
		"director":      m.Director,
		"producer":      m.Producer,
		"release_date":  m.ReleaseDate,
		"characters":    m.Characters,
		"planets":       m.Planets,
		"starships":     m.Starships,
		"vehicles":      m.Vehicles,
		"species":       m.Species,
		"created":       m.Created,
		"edited":        m.Edited,
	})
}

// GetByID retrieves a movie by ID
func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	return getOne(ctx, &r.baseRepository, movieColumns, id, scanMovie)
}

// GetAll retrieves all movies
func (r *MovieRepository) GetAll(ctx context.Context) ([]*models.Movie, error) {
	return getAll(ctx, &r.baseRepository, movieColumns, scanMovie)
}

// Delete deletes a movie by ID
func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// IsEmpty reports whether no movie is stored
func (r *MovieRepository) IsEmpty(ctx context.Context) (bool, error) {
	return r.isEmpty(ctx)
}

// ExistsByTitle checks the natural key used during import
func (r *MovieRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"title": title})
}
