package dto

import "github.com/swcatalog/starwars/internal/app/models"

// CreateStarshipRequest represents starship creation data
type CreateStarshipRequest struct {
	Name                 string   `json:"name" binding:"required,notblank" example:"X-wing"`
	Model                *string  `json:"model" example:"T-65 X-wing"`
	Manufacturer         *string  `json:"manufacturer" example:"Incom Corporation"`
	CostInCredits        *int64   `json:"cost_in_credits" binding:"omitempty,min=0" example:"149999"`
	Length               *float64 `json:"length" binding:"omitempty,min=0" example:"12.5"`
	MaxAtmospheringSpeed *int64   `json:"max_atmosphering_speed" example:"1050"`
	Crew                 *int64   `json:"crew" example:"1"`
	Passengers           *int64   `json:"passengers" example:"0"`
	CargoCapacity        *int64   `json:"cargo_capacity" binding:"omitempty,min=0" example:"110"`
	Consumables          *string  `json:"consumables" example:"1 week"`
	HyperdriveRating     *float64 `json:"hyperdrive_rating" example:"1.0"`
	MGLT                 *int64   `json:"MGLT" example:"100"`
	StarshipClass        *string  `json:"starship_class" example:"Starfighter"`
}

// ToModel converts the request into a starship
func (r *CreateStarshipRequest) ToModel() *models.Starship {
	return &models.Starship{
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
		HyperdriveRating:     r.HyperdriveRating,
		MGLT:                 r.MGLT,
		StarshipClass:        r.StarshipClass,
	}
}
