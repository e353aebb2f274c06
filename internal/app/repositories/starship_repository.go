package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
)

var starshipColumns = []string{
	"id", "name", "model", "manufacturer", "cost_in_credits", "length", "max_atmosphering_speed",
	"crew", "passengers", "cargo_capacity", "consumables", "hyperdrive_rating", "mglt", "starship_class",
}

// StarshipRepository handles starship database operations
type StarshipRepository struct {
	baseRepository
}

// NewStarshipRepository creates a new StarshipRepository
func NewStarshipRepository(database *db.Database) *StarshipRepository {
	return &StarshipRepository{baseRepository: newBaseRepository(database, "starships", "starship")}
}

func scanStarship(row rowScanner) (*models.Starship, error) {
	s := &models.Starship{}
	err := row.Scan(&s.ID, &s.Name, &s.Model, &s.Manufacturer, &s.CostInCredits, &s.Length, &s.MaxAtmospheringSpeed,
		&s.Crew, &s.Passengers, &s.CargoCapacity, &s.Consumables, &s.HyperdriveRating, &s.MGLT, &s.StarshipClass)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create stores a starship and returns its id
func (r *StarshipRepository) Create(ctx context.Context, s *models.Starship) (int64, error) {
	return r.insert(ctx, map[string]any{
		"name":                   s.Name,
		"model":                  helpers.Nullable(s.Model),
		"manufacturer":           helpers.Nullable(s.Manufacturer),
		"cost_in_credits":        helpers.Nullable(s.CostInCredits),
		"length":                 helpers.Nullable(s.Length),
		"max_atmosphering_speed": helpers.Nullable(s.MaxAtmospheringSpeed),
		"crew":                   helpers.Nullable(s.Crew),
		"passengers":             helpers.Nullable(s.Passengers),
		"cargo_capacity":         helpers.Nullable(s.CargoCapacity),
		"consumables":            helpers.Nullable(s.Consumables),
		"hyperdrive_rating":      helpers.Nullable(s.HyperdriveRating),
		"mglt":                   helpers.Nullable(s.MGLT),
		"starship_class":         helpers.Nullable(s.StarshipClass),
	})
}

// GetByID retrieves a starship by ID
func (r *StarshipRepository) GetByID(ctx context.Context, id int64) (*models.Starship, error) {
	return getOne(ctx, &r.baseRepository, starshipColumns, id, scanStarship)
}

// GetAll retrieves all starships
func (r *StarshipRepository) GetAll(ctx context.Context) ([]*models.Starship, error) {
	return getAll(ctx, &r.baseRepository, starshipColumns, scanStarship)
}

// Delete deletes a starship by ID
func (r *StarshipRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// IsEmpty reports whether no starship is stored
func (r *StarshipRepository) IsEmpty(ctx context.Context) (bool, error) {
	return r.isEmpty(ctx)
}

// ExistsByName checks the natural key used during import
func (r *StarshipRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"name": name})
}
