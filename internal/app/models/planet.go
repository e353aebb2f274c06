package models

// Planet represents a planet
type Planet struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	RotationPeriod *int64  `json:"rotation_period"`
	OrbitalPeriod  *int64  `json:"orbital_period"`
	Diameter       *int64  `json:"diameter"`
	Climate        *string `json:"climate"`
	Gravity        *string `json:"gravity"`
	Terrain        *string `json:"terrain"`
	SurfaceWater   *int64  `json:"surface_water"`
	Population     *int64  `json:"population"`
}
