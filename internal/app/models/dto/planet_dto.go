package dto

import "github.com/swcatalog/starwars/internal/app/models"

// CreatePlanetRequest represents planet creation data
type CreatePlanetRequest struct {
	Name           string  `json:"name" binding:"required,notblank" example:"Tatooine"`
	RotationPeriod *int64  `json:"rotation_period" binding:"omitempty,min=0" example:"23"`
	OrbitalPeriod  *int64  `json:"orbital_period" binding:"omitempty,min=0" example:"304"`
	Diameter       *int64  `json:"diameter" binding:"omitempty,min=0" example:"10465"`
	Climate        *string `json:"climate" example:"arid"`
	Gravity        *string `json:"gravity" example:"1 standard"`
	Terrain        *string `json:"terrain" example:"desert"`
	SurfaceWater   *int64  `json:"surface_water" binding:"omitempty,min=0" example:"1"`
	Population     *int64  `json:"population" binding:"omitempty,min=0" example:"200000"`
}

// ToModel converts the request into a planet
func (r *CreatePlanetRequest) ToModel() *models.Planet {
	return &models.Planet{
		Name:           r.Name,
		RotationPeriod: r.RotationPeriod,
		OrbitalPeriod:  r.OrbitalPeriod,
		Diameter:       r.Diameter,
		Climate:        r.Climate,
		Gravity:        r.Gravity,
		Terrain:        r.Terrain,
		SurfaceWater:   r.SurfaceWater,
		Population:     r.Population,
	}
}
