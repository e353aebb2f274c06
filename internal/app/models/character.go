package models

import "time"

// Character represents a person of the Star Wars universe
type Character struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Height    *float64   `json:"height"`
	Mass      *float64   `json:"mass"`
	HairColor *string    `json:"hair_color"`
	SkinColor *string    `json:"skin_color"`
	EyeColor  *string    `json:"eye_color"`
	BirthYear *string    `json:"birth_year"`
	Gender    *string    `json:"gender"`
	Homeworld *string    `json:"homeworld"`
	Films     StringList `json:"films"`
	Species   StringList `json:"species"`
	Vehicles  StringList `json:"vehicles"`
	Starships StringList `json:"starships"`
	Created   time.Time  `json:"created"`
	Edited    time.Time  `json:"edited"`
}
