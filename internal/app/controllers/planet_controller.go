package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/middleware"
)

// PlanetController handles planet endpoints
type PlanetController struct {
	planetService services.PlanetService
}

// NewPlanetController creates a new PlanetController
func NewPlanetController(planetService services.PlanetService) *PlanetController {
	return &PlanetController{planetService: planetService}
}

// CreatePlanet handles planet creation
// @Summary Create a new planet
// @Tags planetas
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanetRequest true "Planet information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /planetas [post]
func (c *PlanetController) CreatePlanet(ctx *gin.Context) {
	var req dto.CreatePlanetRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.planetService.CreatePlanet(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Planet created successfully", ID: id})
}

// GetPlanetByID retrieves a planet by ID
// @Summary Get planet by ID
// @Tags planetas
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} models.Planet
// @Failure 400 {object} dto.ErrorResponse "Invalid planet ID"
// @Failure 404 {object} dto.ErrorResponse "Planet not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /planetas/{id} [get]
func (c *PlanetController) GetPlanetByID(ctx *gin.Context) {
	id, err := parseID(ctx, "planet")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.planetService.GetPlanetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetAllPlanets lists every planet. An empty table is filled from the catalog first.
// @Summary List planets
// @Tags planetas
// @Produce json
// @Success 200 {array} models.Planet
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /planetas [get]
func (c *PlanetController) GetAllPlanets(ctx *gin.Context) {
	items, err := c.planetService.GetAllPlanets(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeletePlanet removes a planet
// @Summary Delete a planet
// @Tags planetas
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid planet ID"
// @Failure 404 {object} dto.ErrorResponse "Planet not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /planetas/{id} [delete]
func (c *PlanetController) DeletePlanet(ctx *gin.Context) {
	id, err := parseID(ctx, "planet")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.planetService.DeletePlanet(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Planet deleted successfully"})
}
