package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
)

var vehicleColumns = []string{
	"id", "name", "model", "manufacturer", "cost_in_credits", "length", "max_atmosphering_speed",
	"crew", "passengers", "cargo_capacity", "consumables", "vehicle_class", "created", "edited",
}

// VehicleRepository handles vehicle database operations
type VehicleRepository struct {
	baseRepository
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(database *db.Database) *VehicleRepository {
	return &VehicleRepository{baseRepository: newBaseRepository(database, "vehicles", "vehicle")}
}

func scanVehicle(row rowScanner) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	err := row.Scan(&v.ID, &v.Name, &v.Model, &v.Manufacturer, &v.CostInCredits, &v.Length, &v.MaxAtmospheringSpeed,
		&v.Crew, &v.Passengers, &v.CargoCapacity, &v.Consumables, &v.VehicleClass,
		helpers.ScanTime(&v.Created), helpers.ScanTime(&v.Edited))
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create stores a vehicle and returns its id
func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) (int64, error) {
	return r.insert(ctx, map[string]any{
		"name":                   v.Name,
		"model":                  v.Model,
		"manufacturer":           helpers.Nullable(v.Manufacturer),
		"cost_in_credits":        helpers.Nullable(v.CostInCredits),
		"length":                 helpers.Nullable(v.Length),
		"max_atmosphering_speed": helpers.Nullable(v.MaxAtmospheringSpeed),
		"crew":                   helpers.Nullable(v.Crew),
		"passengers":             helpers.Nullable(v.Passengers),
		"cargo_capacity":         helpers.Nullable(v.CargoCapacity),
		"consumables":            helpers.Nullable(v.Consumables),
		"vehicle_class":          helpers.Nullable(v.VehicleClass),
		"created":                v.Created,
		"edited":                 v.Edited,
	})
}

// GetByID retrieves a vehicle by ID
func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	return getOne(ctx, &r.baseRepository, vehicleColumns, id, scanVehicle)
}

// GetAll retrieves all vehicles
func (r *VehicleRepository) GetAll(ctx context.Context) ([]*models.Vehicle, error) {
	return getAll(ctx, &r.baseRepository, vehicleColumns, scanVehicle)
}

// Delete deletes a vehicle by ID
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// IsEmpty reports whether no vehicle is stored
func (r *VehicleRepository) IsEmpty(ctx context.Context) (bool, error) {
	return r.isEmpty(ctx)
}

// ExistsByNameAndModel checks the composite natural key used during import
func (r *VehicleRepository) ExistsByNameAndModel(ctx context.Context, name, model string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"name": name, "model": model})
}
