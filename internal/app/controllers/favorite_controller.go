package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/middleware"
)

// FavoriteController handles favorite endpoints. The legacy /favorito
// paths are served by the same handlers.
type FavoriteController struct {
	favoriteService services.FavoriteService
}

// NewFavoriteController creates a new FavoriteController
func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// CreateFavorite handles favorite creation
// @Summary Create a new favorite
// @Tags favoritos
// @Accept json
// @Produce json
// @Param request body dto.CreateFavoriteRequest true "Favorite information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favoritos [post]
func (c *FavoriteController) CreateFavorite(ctx *gin.Context) {
	var req dto.CreateFavoriteRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.favoriteService.CreateFavorite(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Favorite created successfully", ID: id})
}

// GetFavoriteByID retrieves a favorite by ID
// @Summary Get favorite by ID
// @Tags favoritos
// @Produce json
// @Param id path int true "Favorite ID"
// @Success 200 {object} models.Favorite
// @Failure 400 {object} dto.ErrorResponse "Invalid favorite ID"
// @Failure 404 {object} dto.ErrorResponse "Favorite not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favoritos/{id} [get]
func (c *FavoriteController) GetFavoriteByID(ctx *gin.Context) {
	id, err := parseID(ctx, "favorite")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.favoriteService.GetFavoriteByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetAllFavorites lists every favorite
// @Summary List favorites
// @Tags favoritos
// @Produce json
// @Success 200 {array} models.Favorite
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favoritos [get]
func (c *FavoriteController) GetAllFavorites(ctx *gin.Context) {
	items, err := c.favoriteService.GetAllFavorites(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteFavorite removes a favorite
// @Summary Delete a favorite
// @Tags favoritos
// @Produce json
// @Param id path int true "Favorite ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid favorite ID"
// @Failure 404 {object} dto.ErrorResponse "Favorite not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favoritos/{id} [delete]
func (c *FavoriteController) DeleteFavorite(ctx *gin.Context) {
	id, err := parseID(ctx, "favorite")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.favoriteService.DeleteFavorite(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Favorite deleted successfully"})
}
