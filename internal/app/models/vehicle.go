package models

import "time"

// Vehicle represents a ground or atmospheric craft. Numeric looking fields
// are kept as the catalog reports them.
type Vehicle struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Model                string    `json:"model"`
	Manufacturer         *string   `json:"manufacturer"`
	CostInCredits        *string   `json:"cost_in_credits"`
	Length               *string   `json:"length"`
	MaxAtmospheringSpeed *string   `json:"max_atmosphering_speed"`
	Crew                 *string   `json:"crew"`
	Passengers           *string   `json:"passengers"`
	CargoCapacity        *string   `json:"cargo_capacity"`
	Consumables          *string   `json:"consumables"`
	VehicleClass         *string   `json:"vehicle_class"`
	Created              time.Time `json:"created"`
	Edited               time.Time `json:"edited"`
}
