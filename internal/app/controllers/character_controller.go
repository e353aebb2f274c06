package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/middleware"
)

// CharacterController handles character endpoints
type CharacterController struct {
	characterService services.CharacterService
}

// NewCharacterController creates a new CharacterController
func NewCharacterController(characterService services.CharacterService) *CharacterController {
	return &CharacterController{characterService: characterService}
}

// CreateCharacter handles character creation
// @Summary Create a new character
// @Tags personagens
// @Accept json
// @Produce json
// @Param request body dto.CreateCharacterRequest true "Character information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personagens [post]
func (c *CharacterController) CreateCharacter(ctx *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.characterService.CreateCharacter(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Character created successfully", ID: id})
}

// GetCharacterByID retrieves a character by ID
// @Summary Get character by ID
// @Tags personagens
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} models.Character
// @Failure 400 {object} dto.ErrorResponse "Invalid character ID"
// @Failure 404 {object} dto.ErrorResponse "Character not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personagens/{id} [get]
func (c *CharacterController) GetCharacterByID(ctx *gin.Context) {
	id, err := parseID(ctx, "character")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.characterService.GetCharacterByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetAllCharacters lists every character. An empty table is filled from the catalog first.
// @Summary List characters
// @Tags personagens
// @Produce json
// @Success 200 {array} models.Character
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personagens [get]
func (c *CharacterController) GetAllCharacters(ctx *gin.Context) {
	items, err := c.characterService.GetAllCharacters(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteCharacter removes a character
// @Summary Delete a character
// @Tags personagens
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid character ID"
// @Failure 404 {object} dto.ErrorResponse "Character not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personagens/{id} [delete]
func (c *CharacterController) DeleteCharacter(ctx *gin.Context) {
	id, err := parseID(ctx, "character")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.characterService.DeleteCharacter(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Character deleted successfully"})
}
