package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
)

var planetColumns = []string{
	"id", "name", "rotation_period", "orbital_period", "diameter",
	"climate", "gravity", "terrain", "surface_water", "population",
}

// PlanetRepository handles planet database operations
type PlanetRepository struct {
	baseRepository
}

// NewPlanetRepository creates a new PlanetRepository
func NewPlanetRepository(database *db.Database) *PlanetRepository {
	return &PlanetRepository{baseRepository: newBaseRepository(database, "planets", "planet")}
}

func scanPlanet(row rowScanner) (*models.Planet, error) {
	p := &models.Planet{}
	err := row.Scan(&p.ID, &p.Name, &p.RotationPeriod, &p.OrbitalPeriod, &p.Diameter,
		&p.Climate, &p.Gravity, &p.Terrain, &p.SurfaceWater, &p.Population)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create stores a planet and returns its id
func (r *PlanetRepository) Create(ctx context.Context, p *models.Planet) (int64, error) {
	return r.insert(ctx, map[string]any{
		"name":            p.Name,
		"rotation_period": helpers.Nullable(p.RotationPeriod),
		"orbital_period":  helpers.Nullable(p.OrbitalPeriod),
		"diameter":        helpers.Nullable(p.Diameter),
		"climate":         helpers.Nullable(p.Climate),
		"gravity":         helpers.Nullable(p.Gravity),
		"terrain":         helpers.Nullable(p.Terrain),
		"surface_water":   helpers.Nullable(p.SurfaceWater),
		"population":      helpers.Nullable(p.Population),
	})
}

// GetByID retrieves a planet by ID
func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*models.Planet, error) {
	return getOne(ctx, &r.baseRepository, planetColumns, id, scanPlanet)
}

// GetAll retrieves all planets
func (r *PlanetRepository) GetAll(ctx context.Context) ([]*models.Planet, error) {
	return getAll(ctx, &r.baseRepository, planetColumns, scanPlanet)
}

// Delete deletes a planet by ID
func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// IsEmpty reports whether no planet is stored
func (r *PlanetRepository) IsEmpty(ctx context.Context) (bool, error) {
	return r.isEmpty(ctx)
}

// ExistsByName checks the natural key used during import
func (r *PlanetRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"name": name})
}
