package dto

import "github.com/swcatalog/starwars/internal/app/models"

// CreateSpeciesRequest represents species creation data
type CreateSpeciesRequest struct {
	Name            string   `json:"name" binding:"required,notblank" example:"Wookie"`
	Classification  *string  `json:"classification" example:"mammal"`
	Designation     *string  `json:"designation" example:"sentient"`
	AverageHeight   *float64 `json:"average_height" binding:"omitempty,min=0" example:"210"`
	SkinColors      []string `json:"skin_colors"`
	HairColors      []string `json:"hair_colors"`
	EyeColors       []string `json:"eye_colors"`
	AverageLifespan *int64   `json:"average_lifespan" binding:"omitempty,min=0" example:"400"`
	Homeworld       *string  `json:"homeworld" example:"https://swapi.dev/api/planets/14/"`
	Language        *string  `json:"language" example:"Shyriiwook"`
}

// ToModel converts the request into a species
func (r *CreateSpeciesRequest) ToModel() *models.Species {
	return &models.Species{
		Name:            r.Name,
		Classification:  r.Classification,
		Designation:     r.Designation,
		AverageHeight:   r.AverageHeight,
		SkinColors:      models.StringList(r.SkinColors),
		HairColors:      models.StringList(r.HairColors),
		EyeColors:       models.StringList(r.EyeColors),
		AverageLifespan: r.AverageLifespan,
		Homeworld:       r.Homeworld,
		Language:        r.Language,
	}
}
