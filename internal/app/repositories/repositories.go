package repositories

import (
	"github.com/swcatalog/starwars/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CharacterRepository *CharacterRepository
	MovieRepository     *MovieRepository
	PlanetRepository    *PlanetRepository
	StarshipRepository  *StarshipRepository
	SpeciesRepository   *SpeciesRepository
	VehicleRepository   *VehicleRepository
	FavoriteRepository  *FavoriteRepository
}

// NewRepositories initializes all repositories on the shared handle
func NewRepositories(database *db.Database) *Repositories {
	return &Repositories{
		CharacterRepository: NewCharacterRepository(database),
		MovieRepository:     NewMovieRepository(database),
		PlanetRepository:    NewPlanetRepository(database),
		StarshipRepository:  NewStarshipRepository(database),
		SpeciesRepository:   NewSpeciesRepository(database),
		VehicleRepository:   NewVehicleRepository(database),
		FavoriteRepository:  NewFavoriteRepository(database),
	}
}
