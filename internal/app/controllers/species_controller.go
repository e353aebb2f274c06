package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/middleware"
)

// SpeciesController handles species endpoints
type SpeciesController struct {
	speciesService services.SpeciesService
}

// NewSpeciesController creates a new SpeciesController
func NewSpeciesController(speciesService services.SpeciesService) *SpeciesController {
	return &SpeciesController{speciesService: speciesService}
}

// CreateSpecies handles species creation
// @Summary Create a new species
// @Tags especies
// @Accept json
// @Produce json
// @Param request body dto.CreateSpeciesRequest true "Species information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /especies [post]
func (c *SpeciesController) CreateSpecies(ctx *gin.Context) {
	var req dto.CreateSpeciesRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.speciesService.CreateSpecies(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Species created successfully", ID: id})
}

// GetSpeciesByID retrieves a species by ID
// @Summary Get species by ID
// @Tags especies
// @Produce json
// @Param id path int true "Species ID"
// @Success 200 {object} models.Species
// @Failure 400 {object} dto.ErrorResponse "Invalid species ID"
// @Failure 404 {object} dto.ErrorResponse "Species not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /especies/{id} [get]
func (c *SpeciesController) GetSpeciesByID(ctx *gin.Context) {
	id, err := parseID(ctx, "species")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.speciesService.GetSpeciesByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetAllSpecies lists every species. An empty table is filled from the catalog first.
// @Summary List species
// @Tags especies
// @Produce json
// @Success 200 {array} models.Species
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /especies [get]
func (c *SpeciesController) GetAllSpecies(ctx *gin.Context) {
	items, err := c.speciesService.GetAllSpecies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteSpecies removes a species
// @Summary Delete a species
// @Tags especies
// @Produce json
// @Param id path int true "Species ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid species ID"
// @Failure 404 {object} dto.ErrorResponse "Species not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /especies/{id} [delete]
func (c *SpeciesController) DeleteSpecies(ctx *gin.Context) {
	id, err := parseID(ctx, "species")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.speciesService.DeleteSpecies(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Species deleted successfully"})
}
