package models

// Species represents a sentient species
type Species struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Classification  *string    `json:"classification"`
	Designation     *string    `json:"designation"`
	AverageHeight   *float64   `json:"average_height"`
	SkinColors      StringList `json:"skin_colors"`
	HairColors      StringList `json:"hair_colors"`
	EyeColors       StringList `json:"eye_colors"`
	AverageLifespan *int64     `json:"average_lifespan"`
	Homeworld       *string    `json:"homeworld"`
	Language        *string    `json:"language"`
}
