package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/middleware"
)

// VehicleController handles vehicle endpoints
type VehicleController struct {
	vehicleService services.VehicleService
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(vehicleService services.VehicleService) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

// CreateVehicle handles vehicle creation
// @Summary Create a new vehicle
// @Tags veiculos
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Vehicle information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /veiculos [post]
func (c *VehicleController) CreateVehicle(ctx *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.vehicleService.CreateVehicle(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Vehicle created successfully", ID: id})
}

// GetVehicleByID retrieves a vehicle by ID
// @Summary Get vehicle by ID
// @Tags veiculos
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} dto.ErrorResponse "Invalid vehicle ID"
// @Failure 404 {object} dto.ErrorResponse "Vehicle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /veiculos/{id} [get]
func (c *VehicleController) GetVehicleByID(ctx *gin.Context) {
	id, err := parseID(ctx, "vehicle")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.vehicleService.GetVehicleByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GetAllVehicles lists every vehicle. An empty table is filled from the catalog first.
// @Summary List vehicles
// @Tags veiculos
// @Produce json
// @Success 200 {array} models.Vehicle
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /veiculos [get]
func (c *VehicleController) GetAllVehicles(ctx *gin.Context) {
	items, err := c.vehicleService.GetAllVehicles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteVehicle removes a vehicle
// @Summary Delete a vehicle
// @Tags veiculos
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid vehicle ID"
// @Failure 404 {object} dto.ErrorResponse "Vehicle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /veiculos/{id} [delete]
func (c *VehicleController) DeleteVehicle(ctx *gin.Context) {
	id, err := parseID(ctx, "vehicle")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.vehicleService.DeleteVehicle(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle deleted successfully"})
}
