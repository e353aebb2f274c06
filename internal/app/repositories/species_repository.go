package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
)

var speciesColumns = []string{
	"id", "name", "classification", "designation", "average_height",
	"skin_colors", "hair_colors", "eye_colors", "average_lifespan", "homeworld", "language",
}

// SpeciesRepository handles species database operations
type SpeciesRepository struct {
	baseRepository
}

// NewSpeciesRepository creates a new SpeciesRepository
func NewSpeciesRepository(database *db.Database) *SpeciesRepository {
	return &SpeciesRepository{baseRepository: newBaseRepository(database, "species", "species")}
}

func scanSpecies(row rowScanner) (*models.Species, error) {
	s := &models.Species{}
	err := row.Scan(&s.ID, &s.Name, &s.Classification, &s.Designation, &s.AverageHeight,
		&s.SkinColors, &s.HairColors, &s.EyeColors, &s.AverageLifespan, &s.Homeworld, &s.Language)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create stores a species and returns its id
func (r *SpeciesRepository) Create(ctx context.Context, s *models.Species) (int64, error) {
	return r.insert(ctx, map[string]any{
		"name":             s.Name,
		"classification":   helpers.Nullable(s.Classification),
		"designation":      helpers.Nullable(s.Designation),
		"average_height":   helpers.Nullable(s.AverageHeight),
		"skin_colors":      s.SkinColors,
		"hair_colors":      s.HairColors,
		"eye_colors":       s.EyeColors,
		"average_lifespan": helpers.Nullable(s.AverageLifespan),
		"homeworld":        helpers.Nullable(s.Homeworld),
		"language":         helpers.Nullable(s.Language),
	})
}

// GetByID retrieves a species by ID
func (r *SpeciesRepository) GetByID(ctx context.Context, id int64) (*models.Species, error) {
	return getOne(ctx, &r.baseRepository, speciesColumns, id, scanSpecies)
}

// GetAll retrieves all species
func (r *SpeciesRepository) GetAll(ctx context.Context) ([]*models.Species, error) {
	return getAll(ctx, &r.baseRepository, speciesColumns, scanSpecies)
}

// Delete deletes a species by ID
func (r *SpeciesRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// IsEmpty reports whether no species is stored
func (r *SpeciesRepository) IsEmpty(ctx context.Context) (bool, error) {
	return r.isEmpty(ctx)
}

// ExistsByName checks the natural key used during import
func (r *SpeciesRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"name": name})
}
