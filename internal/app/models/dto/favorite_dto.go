package dto

import "github.com/swcatalog/starwars/internal/app/models"

// CreateFavoriteRequest represents favorite creation data
type CreateFavoriteRequest struct {
	CharacterID   *int64  `json:"character_id" binding:"required,gt=0" example:"1"`
	MovieID       *int64  `json:"movie_id" example:"2"`
	StarshipID    *int64  `json:"starship_id" example:"3"`
	VehicleID     *int64  `json:"vehicle_id" example:"4"`
	SpeciesID     *int64  `json:"species_id" example:"5"`
	PlanetID      *int64  `json:"planet_id" example:"6"`
	StudentName1  string  `json:"student_name1" binding:"required,notblank" example:"Leia Organa"`
	Registration1 string  `json:"registration1" binding:"required,notblank" example:"2024001"`
	StudentName2  *string `json:"student_name2" example:"Han Solo"`
	Registration2 *string `json:"registration2" example:"2024002"`
	Course        *string `json:"course" example:"Computer Science"`
	University    *string `json:"university" example:"University of Coruscant"`
	Period        *string `json:"period" example:"2024.1"`
}

// ToModel converts the request into a favorite
func (r *CreateFavoriteRequest) ToModel() *models.Favorite {
	f := &models.Favorite{
		MovieID:       r.MovieID,
		StarshipID:    r.StarshipID,
		VehicleID:     r.VehicleID,
		SpeciesID:     r.SpeciesID,
		PlanetID:      r.PlanetID,
		StudentName1:  r.StudentName1,
		Registration1: r.Registration1,
		StudentName2:  r.StudentName2,
		Registration2: r.Registration2,
		Course:        r.Course,
		University:    r.University,
		Period:        r.Period,
	}
	if r.CharacterID != nil {
		f.CharacterID = *r.CharacterID
	}
	return f
}
