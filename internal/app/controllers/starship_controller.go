package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/middleware"
)

// StarshipController handles starship endpoints
type StarshipController struct {
	starshipService services.StarshipService
}

// NewStarshipController creates a new StarshipController
func NewStarshipController(starshipService services.StarshipService) *StarshipController {
	return &StarshipController{starshipService: starshipService}
}

// CreateStarship handles starship creation
// @Summary Create a new starship
// @Tags naves
// @Accept json
// @Produce json
// @Param request body dto.CreateStarshipRequest true "Starship information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /naves [post]
func (c *StarshipController) CreateStarship(ctx *gin.Context) {
	var req dto.CreateStarshipRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.starshipService.CreateStarship(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Starship created successfully", ID: id})
}

// GetStarshipByID retrieves a starship by ID
// @Summary Get starship by ID
// @Tags naves
// @Produce json
// @Param id path int true "Starship ID"
// @Success 200 {object} models.Starship
// @Failure 400 {object} dto.ErrorResponse "Invalid starship ID"
// @Failure 404 {object} dto.ErrorResponse "Starship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /naves/{id} [get]
func (c *StarshipController) GetStarshipByID(ctx *gin.Context) {
	id, err := parseID(ctx, "starship")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.starshipService.GetStarshipByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetAllStarships lists every starship. An empty table is filled from the catalog first.
// @Summary List starships
// @Tags naves
// @Produce json
// @Success 200 {array} models.Starship
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /naves [get]
func (c *StarshipController) GetAllStarships(ctx *gin.Context) {
	items, err := c.starshipService.GetAllStarships(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteStarship removes a starship
// @Summary Delete a starship
// @Tags naves
// @Produce json
// @Param id path int true "Starship ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid starship ID"
// @Failure 404 {object} dto.ErrorResponse "Starship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /naves/{id} [delete]
func (c *StarshipController) DeleteStarship(ctx *gin.Context) {
	id, err := parseID(ctx, "starship")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.starshipService.DeleteStarship(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Starship deleted successfully"})
}
