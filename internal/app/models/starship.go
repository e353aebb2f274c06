package models

// Starship represents a hyperdrive-capable craft
type Starship struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Model                *string  `json:"model"`
	Manufacturer         *string  `json:"manufacturer"`
	CostInCredits        *int64   `json:"cost_in_credits"`
	Length               *float64 `json:"length"`
	MaxAtmospheringSpeed *int64   `json:"max_atmosphering_speed"`
	Crew                 *int64   `json:"crew"`
	Passengers           *int64   `json:"passengers"`
	CargoCapacity        *int64   `json:"cargo_capacity"`
	Consumables          *string  `json:"consumables"`
	HyperdriveRating     *float64 `json:"hyperdrive_rating"`
	MGLT                 *int64   `json:"MGLT"`
	StarshipClass        *string  `json:"starship_class"`
}
