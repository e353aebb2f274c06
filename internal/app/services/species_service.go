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

// SpeciesService defines the interface for species-related operations
type SpeciesService interface {
	CreateSpecies(ctx context.Context, species *models.Species) (int64, error)
	GetSpeciesByID(ctx context.Context, id int64) (*models.Species, error)
	GetAllSpecies(ctx context.Context) ([]*models.Species, error)
	DeleteSpecies(ctx context.Context, id int64) error
}

type speciesServiceImpl struct {
	speciesRepo *repositories.SpeciesRepository
	catalog     CatalogPopulator
}

// NewSpeciesService creates a new species service instance
func NewSpeciesService(speciesRepo *repositories.SpeciesRepository, catalog CatalogPopulator) SpeciesService {
	return &speciesServiceImpl{speciesRepo: speciesRepo, catalog: catalog}
}

func (s *speciesServiceImpl) validateSpecies(species *models.Species) error {
	if species == nil {
		return fmt.Errorf("%w: species is nil", apperrors.ErrValidationFailed)
	}
	if err := requireText(species.Name, "name"); err != nil {
		return err
	}
	if err := requireNonNegativeFloat(species.AverageHeight, "average_height"); err != nil {
		return err
	}
	return requireNonNegativeInt(species.AverageLifespan, "average_lifespan")
}

// CreateSpecies creates a new species
func (s *speciesServiceImpl) CreateSpecies(ctx context.Context, species *models.Species) (int64, error) {
	if err := s.validateSpecies(species); err != nil {
		return 0, err
	}

	species.Name = strings.TrimSpace(species.Name)
	id, err := s.speciesRepo.Create(ctx, species)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating species: %w", err)
	}
	species.ID = id
	return id, nil
}

// GetSpeciesByID retrieves a species by ID
func (s *speciesServiceImpl) GetSpeciesByID(ctx context.Context, id int64) (*models.Species, error) {
	if err := validateID(id, "species"); err != nil {
		return nil, err
	}

	species, err := s.speciesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving species: %w", err)
	}
	return species, nil
}

// GetAllSpecies lists every species, importing them first when none are stored
func (s *speciesServiceImpl) GetAllSpecies(ctx context.Context) ([]*models.Species, error) {
	if err := populateIfEmpty(ctx, s.catalog, swapi.Species, s.speciesRepo.IsEmpty); err != nil {
		return nil, err
	}

	species, err := s.speciesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving species: %w", err)
	}
	return species, nil
}

// DeleteSpecies deletes a species by ID
func (s *speciesServiceImpl) DeleteSpecies(ctx context.Context, id int64) error {
	if err := validateID(id, "species"); err != nil {
		return err
	}

	if err := s.speciesRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting species: %w", err)
	}
	return nil
}
