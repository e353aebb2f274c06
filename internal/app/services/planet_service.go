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

// PlanetService defines the interface for planet-related operations
type PlanetService interface {
	CreatePlanet(ctx context.Context, planet *models.Planet) (int64, error)
	GetPlanetByID(ctx context.Context, id int64) (*models.Planet, error)
	GetAllPlanets(ctx context.Context) ([]*models.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

type planetServiceImpl struct {
	planetRepo *repositories.PlanetRepository
	catalog    CatalogPopulator
}

// NewPlanetService creates a new planet service instance
func NewPlanetService(planetRepo *repositories.PlanetRepository, catalog CatalogPopulator) PlanetService {
	return &planetServiceImpl{planetRepo: planetRepo, catalog: catalog}
}

func (s *planetServiceImpl) validatePlanet(planet *models.Planet) error {
	if planet == nil {
		return fmt.Errorf("%w: planet is nil", apperrors.ErrValidationFailed)
	}
	if err := requireText(planet.Name, "name"); err != nil {
		return err
	}
	for field, value := range map[string]*int64{
		"rotation_period": planet.RotationPeriod,
		"orbital_period":  planet.OrbitalPeriod,
		"diameter":        planet.Diameter,
		"surface_water":   planet.SurfaceWater,
		"population":      planet.Population,
	} {
		if err := requireNonNegativeInt(value, field); err != nil {
			return err
		}
	}
	return nil
}

// CreatePlanet creates a new planet
func (s *planetServiceImpl) CreatePlanet(ctx context.Context, planet *models.Planet) (int64, error) {
	if err := s.validatePlanet(planet); err != nil {
		return 0, err
	}

	planet.Name = strings.TrimSpace(planet.Name)
	id, err := s.planetRepo.Create(ctx, planet)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating planet: %w", err)
	}
	planet.ID = id
	return id, nil
}

// GetPlanetByID retrieves a planet by ID
func (s *planetServiceImpl) GetPlanetByID(ctx context.Context, id int64) (*models.Planet, error) {
	if err := validateID(id, "planet"); err != nil {
		return nil, err
	}

	planet, err := s.planetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving planet: %w", err)
	}
	return planet, nil
}

// GetAllPlanets lists every planet, importing them first when none are stored
func (s *planetServiceImpl) GetAllPlanets(ctx context.Context) ([]*models.Planet, error) {
	if err := populateIfEmpty(ctx, s.catalog, swapi.Planets, s.planetRepo.IsEmpty); err != nil {
		return nil, err
	}

	planets, err := s.planetRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving planets: %w", err)
	}
	return planets, nil
}

// DeletePlanet deletes a planet by ID
func (s *planetServiceImpl) DeletePlanet(ctx context.Context, id int64) error {
	if err := validateID(id, "planet"); err != nil {
		return err
	}

	if err := s.planetRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting planet: %w", err)
	}
	return nil
}
