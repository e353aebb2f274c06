package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/app/repositories"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
	"github.com/swcatalog/starwars/internal/swapi"
)

// VehicleService defines the interface for vehicle-related operations
type VehicleService interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (int64, error)
	GetVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error)
	GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
}

type vehicleServiceImpl struct {
	vehicleRepo *repositories.VehicleRepository
	catalog     CatalogPopulator
}

// NewVehicleService creates a new vehicle service instance
func NewVehicleService(vehicleRepo *repositories.VehicleRepository, catalog CatalogPopulator) VehicleService {
	return &vehicleServiceImpl{vehicleRepo: vehicleRepo, catalog: catalog}
}

func (s *vehicleServiceImpl) validateVehicle(vehicle *models.Vehicle) error {
	if vehicle == nil {
		return fmt.Errorf("%w: vehicle is nil", apperrors.ErrValidationFailed)
	}
	if err := requireText(vehicle.Name, "name"); err != nil {
		return err
	}
	return requireText(vehicle.Model, "model")
}

// CreateVehicle creates a new vehicle
func (s *vehicleServiceImpl) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (int64, error) {
	if err := s.validateVehicle(vehicle); err != nil {
		return 0, err
	}

	vehicle.Name = strings.TrimSpace(vehicle.Name)
	vehicle.Model = strings.TrimSpace(vehicle.Model)
	vehicle.Created = nowUTC()
	vehicle.Edited = vehicle.Created

	id, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating vehicle: %w", err)
	}
	vehicle.ID = id
	return id, nil
}

// GetVehicleByID retrieves a vehicle by ID
func (s *vehicleServiceImpl) GetVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	if err := validateID(id, "vehicle"); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving vehicle: %w", err)
	}
	return vehicle, nil
}

// GetAllVehicles lists every vehicle, importing them first when none are stored
func (s *vehicleServiceImpl) GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	if err := populateIfEmpty(ctx, s.catalog, swapi.Vehicles, s.vehicleRepo.IsEmpty); err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving vehicles: %w", err)
	}
	return vehicles, nil
}

// DeleteVehicle deletes a vehicle by ID
func (s *vehicleServiceImpl) DeleteVehicle(ctx context.Context, id int64) error {
	if err := validateID(id, "vehicle"); err != nil {
		return err
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting vehicle: %w", err)
	}
	return nil
}
