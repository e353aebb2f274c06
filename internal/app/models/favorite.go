package models

// Favorite is a user submitted record linking a character and optionally one
// item of each other kind to up to two students. The ids are opaque and are
// not checked against the catalog tables.
type Favorite struct {
	ID            int64   `json:"id"`
	CharacterID   int64   `json:"character_id"`
	MovieID       *int64  `json:"movie_id"`
	StarshipID    *int64  `json:"starship_id"`
	VehicleID     *int64  `json:"vehicle_id"`
	SpeciesID     *int64  `json:"species_id"`
	PlanetID      *int64  `json:"planet_id"`
	StudentName1  string  `json:"student_name1"`
	Registration1 string  `json:"registration1"`
	StudentName2  *string `json:"student_name2"`
	Registration2 *string `json:"registration2"`
	Course        *string `json:"course"`
	University    *string `json:"university"`
	Period        *string `json:"period"`
}
