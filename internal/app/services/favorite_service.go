package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/app/repositories"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
)

// FavoriteService defines the interface for favorite-related operations.
// Favorites have no external source and are never imported.
type FavoriteService interface {
	CreateFavorite(ctx context.Context, favorite *models.Favorite) (int64, error)
	GetFavoriteByID(ctx context.Context, id int64) (*models.Favorite, error)
	GetAllFavorites(ctx context.Context) ([]*models.Favorite, error)
	DeleteFavorite(ctx context.Context, id int64) error
}

type favoriteServiceImpl struct {
	favoriteRepo *repositories.FavoriteRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(favoriteRepo *repositories.FavoriteRepository) FavoriteService {
	return &favoriteServiceImpl{favoriteRepo: favoriteRepo}
}

func (s *favoriteServiceImpl) validateFavorite(favorite *models.Favorite) error {
	if favorite == nil {
		return fmt.Errorf("%w: favorite is nil", apperrors.ErrValidationFailed)
	}
	if favorite.CharacterID <= 0 {
		return apperrors.NewValidationError("character_id is required")
	}
	if err := requireText(favorite.StudentName1, "student_name1"); err != nil {
		return err
	}
	return requireText(favorite.Registration1, "registration1")
}

// CreateFavorite creates a new favorite. Referenced ids are stored as given.
func (s *favoriteServiceImpl) CreateFavorite(ctx context.Context, favorite *models.Favorite) (int64, error) {
	if err := s.validateFavorite(favorite); err != nil {
		return 0, err
	}

	favorite.StudentName1 = strings.TrimSpace(favorite.StudentName1)
	favorite.Registration1 = strings.TrimSpace(favorite.Registration1)

	id, err := s.favoriteRepo.Create(ctx, favorite)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating favorite: %w", err)
	}
	favorite.ID = id
	return id, nil
}

// GetFavoriteByID retrieves a favorite by ID
func (s *favoriteServiceImpl) GetFavoriteByID(ctx context.Context, id int64) (*models.Favorite, error) {
	if err := validateID(id, "favorite"); err != nil {
		return nil, err
	}

	favorite, err := s.favoriteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving favorite: %w", err)
	}
	return favorite, nil
}

// GetAllFavorites retrieves all favorites
func (s *favoriteServiceImpl) GetAllFavorites(ctx context.Context) ([]*models.Favorite, error) {
	favorites, err := s.favoriteRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving favorites: %w", err)
	}
	return favorites, nil
}

// DeleteFavorite deletes a favorite by ID
func (s *favoriteServiceImpl) DeleteFavorite(ctx context.Context, id int64) error {
	if err := validateID(id, "favorite"); err != nil {
		return err
	}

	if err := s.favoriteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting favorite: %w", err)
	}
	return nil
}
