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

// CharacterService defines the interface for character-related operations
type CharacterService interface {
	CreateCharacter(ctx context.Context, character *models.Character) (int64, error)
	GetCharacterByID(ctx context.Context, id int64) (*models.Character, error)
	GetAllCharacters(ctx context.Context) ([]*models.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
}

type characterServiceImpl struct {
	characterRepo *repositories.CharacterRepository
	catalog       CatalogPopulator
}

// NewCharacterService creates a new character service instance
func NewCharacterService(characterRepo *repositories.CharacterRepository, catalog CatalogPopulator) CharacterService {
	return &characterServiceImpl{characterRepo: characterRepo, catalog: catalog}
}

func (s *characterServiceImpl) validateCharacter(character *models.Character) error {
	if character == nil {
		return fmt.Errorf("%w: character is nil", apperrors.ErrValidationFailed)
	}
	if err := requireText(character.Name, "name"); err != nil {
		return err
	}
	if err := requireNonNegativeFloat(character.Height, "height"); err != nil {
		return err
	}
	return requireNonNegativeFloat(character.Mass, "mass")
}

// CreateCharacter creates a new character
func (s *characterServiceImpl) CreateCharacter(ctx context.Context, character *models.Character) (int64, error) {
	if err := s.validateCharacter(character); err != nil {
		return 0, err
	}

	character.Name = strings.TrimSpace(character.Name)
	character.Created = nowUTC()
	character.Edited = character.Created

	id, err := s.characterRepo.Create(ctx, character)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating character: %w", err)
	}
	character.ID = id
	return id, nil
}

// GetCharacterByID retrieves a character by ID
func (s *characterServiceImpl) GetCharacterByID(ctx context.Context, id int64) (*models.Character, error) {
	if err := validateID(id, "character"); err != nil {
		return nil, err
	}

	character, err := s.characterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving character: %w", err)
	}
	return character, nil
}

// GetAllCharacters lists every character, importing them first when none are stored
func (s *characterServiceImpl) GetAllCharacters(ctx context.Context) ([]*models.Character, error) {
	if err := populateIfEmpty(ctx, s.catalog, swapi.People, s.characterRepo.IsEmpty); err != nil {
		return nil, err
	}

	characters, err := s.characterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving characters: %w", err)
	}
	return characters, nil
}

// DeleteCharacter deletes a character by ID
func (s *characterServiceImpl) DeleteCharacter(ctx context.Context, id int64) error {
	if err := validateID(id, "character"); err != nil {
		return err
	}

	if err := s.characterRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting character: %w", err)
	}
	return nil
}
