package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
)

var characterColumns = []string{
	"id", "name", "height", "mass", "hair_color", "skin_color", "eye_color",
	"birth_year", "gender", "homeworld", "films", "species", "vehicles", "starships",
	"created", "edited",
}

// CharacterRepository handles character database operations
type CharacterRepository struct {
	baseRepository
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(database *db.Database) *CharacterRepository {
	return &CharacterRepository{baseRepository: newBaseRepository(database, "characters", "character")}
}

func scanCharacter(row rowScanner) (*models.Character, error) {
	c := &models.Character{}
	err := row.Scan(&c.ID, &c.Name, &c.Height, &c.Mass, &c.HairColor, &c.SkinColor, &c.EyeColor,
		&c.BirthYear, &c.Gender, &c.Homeworld, &c.Films, &c.Species, &c.Vehicles, &c.Starships,
		helpers.ScanTime(&c.Created), helpers.ScanTime(&c.Edited))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create stores a character and returns its id
func (r *CharacterRepository) Create(ctx context.Context, c *models.Character) (int64, error) {
	return r.insert(ctx, map[string]any{
		"name":       c.Name,
		"height":     helpers.Nullable(c.Height),
		"mass":       helpers.Nullable(c.Mass),
		"hair_color": helpers.Nullable(c.HairColor),
		"skin_color": helpers.Nullable(c.SkinColor),
		"eye_color":  helpers.Nullable(c.EyeColor),
		"birth_year": helpers.Nullable(c.BirthYear),
		"gender":     helpers.Nullable(c.Gender),
		"homeworld":  helpers.Nullable(c.Homeworld),
		"films":      c.Films,
		"species":    c.Species,
		"vehicles":   c.Vehicles,
		"starships":  c.Starships,
		"created":    c.Created,
		"edited":     c.Edited,
	})
}

// GetByID retrieves a character by ID
func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	return getOne(ctx, &r.baseRepository, characterColumns, id, scanCharacter)
}

// GetAll retrieves all characters
func (r *CharacterRepository) GetAll(ctx context.Context) ([]*models.Character, error) {
	return getAll(ctx, &r.baseRepository, characterColumns, scanCharacter)
}

// Delete deletes a character by ID
func (r *CharacterRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// IsEmpty reports whether no character is stored
func (r *CharacterRepository) IsEmpty(ctx context.Context) (bool, error) {
	return r.isEmpty(ctx)
}

// ExistsByName checks the natural key used during import
func (r *CharacterRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"name": name})
}
