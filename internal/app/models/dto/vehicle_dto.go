package dto

import "github.com/swcatalog/starwars/internal/app/models"

// CreateVehicleRequest represents vehicle creation data. Measurements are
// free text, as reported by the catalog.
type CreateVehicleRequest struct {
	Name                 string  `json:"name" binding:"required,notblank" example:"Sand Crawler"`
	Model                string  `json:"model" binding:"required,notblank" example:"Digger Crawler"`
	Manufacturer         *string `json:"manufacturer" example:"Corellia Mining Corporation"`
	CostInCredits        *string `json:"cost_in_credits" example:"150000"`
	Length               *string `json:"length" example:"36.8"`
	MaxAtmospheringSpeed *string `json:"max_atmosphering_speed" example:"30"`
	Crew                 *string `json:"crew" example:"46"`
	Passengers           *string `json:"passengers" example:"30"`
	CargoCapacity        *string `json:"cargo_capacity" example:"50000"`
	Consumables          *string `json:"consumables" example:"2 months"`
	VehicleClass         *string `json:"vehicle_class" example:"wheeled"`
}

// ToModel converts the request into a vehicle
func (r *CreateVehicleRequest) ToModel() *models.Vehicle {
	return &models.Vehicle{
		Name:                 r.Name,
		Model:                r.Model,
		Manufacturer:         r.Manufacturer,
		CostInCredits:        r.CostInCredits,
		Length:               r.Length,
		MaxAtmospheringSpeed: r.MaxAtmospheringSpeed,
		Crew:                 r.Crew,
		Passengers:           r.Passengers,
		CargoCapacity:        r.CargoCapacity,
		Consumables:          r.Consumables,
		VehicleClass:         r.VehicleClass,
	}
}
