package repositories

import (
	"context"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
)

var favoriteColumns = []string{
	"id", "character_id", "movie_id", "starship_id", "vehicle_id", "species_id", "planet_id",
	"student_name1", "registration1", "student_name2", "registration2", "course", "university", "period",
}

// FavoriteRepository handles favorite database operations
type FavoriteRepository struct {
	baseRepository
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(database *db.Database) *FavoriteRepository {
	return &FavoriteRepository{baseRepository: newBaseRepository(database, "favorites", "favorite")}
}

func scanFavorite(row rowScanner) (*models.Favorite, error) {
	f := &models.Favorite{}
	err := row.Scan(&f.ID, &f.CharacterID, &f.MovieID, &f.StarshipID, &f.VehicleID, &f.SpeciesID, &f.PlanetID,
		&f.StudentName1, &f.Registration1, &f.StudentName2, &f.Registration2, &f.Course, &f.University, &f.Period)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create stores a favorite and returns its id
func (r *FavoriteRepository) Create(ctx context.Context, f *models.Favorite) (int64, error) {
	return r.insert(ctx, map[string]any{
		"character_id":  f.CharacterID,
		"movie_id":      helpers.Nullable(f.MovieID),
		"starship_id":   helpers.Nullable(f.StarshipID),
		"vehicle_id":    helpers.Nullable(f.VehicleID),
		"species_id":    helpers.Nullable(f.SpeciesID),
		"planet_id":     helpers.Nullable(f.PlanetID),
		"student_name1": f.StudentName1,
		"registration1": f.Registration1,
		"student_name2": helpers.Nullable(f.StudentName2),
		"registration2": helpers.Nullable(f.Registration2),
		"course":        helpers.Nullable(f.Course),
		"university":    helpers.Nullable(f.University),
		"period":        helpers.Nullable(f.Period),
	})
}

// GetByID retrieves a favorite by ID
func (r *FavoriteRepository) GetByID(ctx context.Context, id int64) (*models.Favorite, error) {
	return getOne(ctx, &r.baseRepository, favoriteColumns, id, scanFavorite)
}

// GetAll retrieves all favorites
func (r *FavoriteRepository) GetAll(ctx context.Context) ([]*models.Favorite, error) {
	return getAll(ctx, &r.baseRepository, favoriteColumns, scanFavorite)
}

// Delete deletes a favorite by ID
func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
