package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/middleware"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
)

// MovieController handles movie endpoints
type MovieController struct {
	movieService services.MovieService
}

// NewMovieController creates a new MovieController
func NewMovieController(movieService services.MovieService) *MovieController {
	return &MovieController{movieService: movieService}
}

// CreateMovie handles movie creation
// @Summary Create a new movie
// @Tags filmes
// @Accept json
// @Produce json
// @Param request body dto.CreateMovieRequest true "Movie information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /filmes [post]
func (c *MovieController) CreateMovie(ctx *gin.Context) {
	var req dto.CreateMovieRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	movie, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("release_date must use the YYYY-MM-DD format"))
		return
	}

	id, err := c.movieService.CreateMovie(ctx.Request.Context(), movie)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Movie created successfully", ID: id})
}

// GetMovieByID retrieves a movie by ID
// @Summary Get movie by ID
// @Tags filmes
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 400 {object} dto.ErrorResponse "Invalid movie ID"
// @Failure 404 {object} dto.ErrorResponse "Movie not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /filmes/{id} [get]
func (c *MovieController) GetMovieByID(ctx *gin.Context) {
	id, err := parseID(ctx, "movie")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.movieService.GetMovieByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetAllMovies lists every movie. An empty table is filled from the catalog first.
// @Summary List movies
// @Tags filmes
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /filmes [get]
func (c *MovieController) GetAllMovies(ctx *gin.Context) {
	items, err := c.movieService.GetAllMovies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteMovie removes a movie
// @Summary Delete a movie
// @Tags filmes
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid movie ID"
// @Failure 404 {object} dto.ErrorResponse "Movie not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /filmes/{id} [delete]
func (c *MovieController) DeleteMovie(ctx *gin.Context) {
	id, err := parseID(ctx, "movie")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.movieService.DeleteMovie(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Movie deleted successfully"})
}
