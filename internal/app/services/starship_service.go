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

// StarshipService defines the interface for starship-related operations
type StarshipService interface {
	CreateStarship(ctx context.Context, starship *models.Starship) (int64, error)
	GetStarshipByID(ctx context.Context, id int64) (*models.Starship, error)
	GetAllStarships(ctx context.Context) ([]*models.Starship, error)
	DeleteStarship(ctx context.Context, id int64) error
}

type starshipServiceImpl struct {
	starshipRepo *repositories.StarshipRepository
	catalog      CatalogPopulator
}

// NewStarshipService creates a new starship service instance
func NewStarshipService(starshipRepo *repositories.StarshipRepository, catalog CatalogPopulator) StarshipService {
	return &starshipServiceImpl{starshipRepo: starshipRepo, catalog: catalog}
}

// validateStarship mirrors the CHECK constraints of the starships table
func (s *starshipServiceImpl) validateStarship(starship *models.Starship) error {
	if starship == nil {
		return fmt.Errorf("%w: starship is nil", apperrors.ErrValidationFailed)
	}
	if err := requireText(starship.Name, "name"); err != nil {
		return err
	}
	if err := requireNonNegativeInt(starship.CostInCredits, "cost_in_credits"); err != nil {
		return err
	}
	if err := requireNonNegativeFloat(starship.Length, "length"); err != nil {
		return err
	}
	return requireNonNegativeInt(starship.CargoCapacity, "cargo_capacity")
}

// CreateStarship creates a new starship
func (s *starshipServiceImpl) CreateStarship(ctx context.Context, starship *models.Starship) (int64, error) {
	if err := s.validateStarship(starship); err != nil {
		return 0, err
	}

	starship.Name = strings.TrimSpace(starship.Name)
	id, err := s.starshipRepo.Create(ctx, starship)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating starship: %w", err)
	}
	starship.ID = id
	return id, nil
}

// GetStarshipByID retrieves a starship by ID
func (s *starshipServiceImpl) GetStarshipByID(ctx context.Context, id int64) (*models.Starship, error) {
	if err := validateID(id, "starship"); err != nil {
		return nil, err
	}

	starship, err := s.starshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving starship: %w", err)
	}
	return starship, nil
}

// GetAllStarships lists every starship, importing them first when none are stored
func (s *starshipServiceImpl) GetAllStarships(ctx context.Context) ([]*models.Starship, error) {
	if err := populateIfEmpty(ctx, s.catalog, swapi.Starships, s.starshipRepo.IsEmpty); err != nil {
		return nil, err
	}

	starships, err := s.starshipRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving starships: %w", err)
	}
	return starships, nil
}

// DeleteStarship deletes a starship by ID
func (s *starshipServiceImpl) DeleteStarship(ctx context.Context, id int64) error {
	if err := validateID(id, "starship"); err != nil {
		return err
	}

	if err := s.starshipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting starship: %w", err)
	}
	return nil
}
