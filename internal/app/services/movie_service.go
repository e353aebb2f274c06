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

// MovieService defines the interface for movie-related operations
type MovieService interface {
	CreateMovie(ctx context.Context, movie *models.Movie) (int64, error)
	GetMovieByID(ctx context.Context, id int64) (*models.Movie, error)
	GetAllMovies(ctx context.Context) ([]*models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type movieServiceImpl struct {
	movieRepo *repositories.MovieRepository
	catalog   CatalogPopulator
}

// NewMovieService creates a new movie service instance
func NewMovieService(movieRepo *repositories.MovieRepository, catalog CatalogPopulator) MovieService {
	return &movieServiceImpl{movieRepo: movieRepo, catalog: catalog}
}

func (s *movieServiceImpl) validateMovie(movie *models.Movie) error {
	if movie == nil {
		return fmt.Errorf("%w: movie is nil", apperrors.ErrValidationFailed)
	}
	if err := requireText(movie.Title, "title"); err != nil {
		return err
	}
	if movie.ReleaseDate.IsZero() {
		return apperrors.NewValidationError("release_date is required in YYYY-MM-DD format")
	}
	if movie.EpisodeID < 0 {
		return apperrors.NewValidationError("episode_id must be non-negative")
	}
	return nil
}

// CreateMovie creates a new movie
func (s *movieServiceImpl) CreateMovie(ctx context.Context, movie *models.Movie) (int64, error) {
	if err := s.validateMovie(movie); err != nil {
		return 0, err
	}

	movie.Title = strings.TrimSpace(movie.Title)
	movie.Created = nowUTC()
	movie.Edited = movie.Created

	id, err := s.movieRepo.Create(ctx, movie)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating movie: %w", err)
	}
	movie.ID = id
	return id, nil
}

// GetMovieByID retrieves a movie by ID
func (s *movieServiceImpl) GetMovieByID(ctx context.Context, id int64) (*models.Movie, error) {
	if err := validateID(id, "movie"); err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving movie: %w", err)
	}
	return movie, nil
}

// GetAllMovies lists every movie, importing them first when none are stored
func (s *movieServiceImpl) GetAllMovies(ctx context.Context) ([]*models.Movie, error) {
	if err := populateIfEmpty(ctx, s.catalog, swapi.Films, s.movieRepo.IsEmpty); err != nil {
		return nil, err
	}

	movies, err := s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving movies: %w", err)
	}
	return movies, nil
}

// DeleteMovie deletes a movie by ID
func (s *movieServiceImpl) DeleteMovie(ctx context.Context, id int64) error {
	if err := validateID(id, "movie"); err != nil {
		return err
	}

	if err := s.movieRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting movie: %w", err)
	}
	return nil
}
