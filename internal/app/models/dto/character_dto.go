package dto

import "github.com/swcatalog/starwars/internal/app/models"

// CreateCharacterRequest represents character creation data
type CreateCharacterRequest struct {
	Name      string   `json:"name" binding:"required,notblank" example:"Luke Skywalker"`
	Height    *float64 `json:"height" binding:"omitempty,min=0" example:"172"`
	Mass      *float64 `json:"mass" binding:"omitempty,min=0" example:"77"`
	HairColor *string  `json:"hair_color" example:"blond"`
	SkinColor *string  `json:"skin_color" example:"fair"`
	EyeColor  *string  `json:"eye_color" example:"blue"`
	BirthYear *string  `json:"birth_year" example:"19BBY"`
	Gender    *string  `json:"gender" example:"male"`
	Homeworld *string  `json:"homeworld" example:"https://swapi.dev/api/planets/1/"`
	Films     []string `json:"films"`
	Species   []string `json:"species"`
	Vehicles  []string `json:"vehicles"`
	Starships []string `json:"starships"`
}

// ToModel converts the request into a character
func (r *CreateCharacterRequest) ToModel() *models.Character {
	return &models.Character{
		Name:      r.Name,
		Height:    r.Height,
		Mass:      r.Mass,
		HairColor: r.HairColor,
		SkinColor: r.SkinColor,
		EyeColor:  r.EyeColor,
		BirthYear: r.BirthYear,
		Gender:    r.Gender,
		Homeworld: r.Homeworld,
		Films:     models.StringList(r.Films),
		Species:   models.StringList(r.Species),
		Vehicles:  models.StringList(r.Vehicles),
		Starships: models.StringList(r.Starships),
	}
}
