package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/pkg/normalize"
	"github.com/swcatalog/starwars/internal/swapi"
)

// ErrInvalidRecord marks a raw record that cannot be mapped to its model
var ErrInvalidRecord = errors.New("invalid catalog record")

func requiredString(rec swapi.Record, field string) (string, error) {
	s := normalize.String(rec[field])
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidRecord, field)
	}
	return strings.TrimSpace(*s), nil
}

func list(rec swapi.Record, field string) models.StringList {
	return models.StringList(normalize.List(rec[field]))
}

// MapCharacter maps a people record
func MapCharacter(rec swapi.Record) (*models.Character, error) {
	name, err := requiredString(rec, "name")
	if err != nil {
		return nil, err
	}
	return &models.Character{
		Name:      name,
		Height:    normalize.Float(rec["height"]),
		Mass:      normalize.Float(rec["mass"]),
		HairColor: normalize.String(rec["hair_color"]),
		SkinColor: normalize.String(rec["skin_color"]),
		EyeColor:  normalize.String(rec["eye_color"]),
		BirthYear: normalize.String(rec["birth_year"]),
		Gender:    normalize.String(rec["gender"]),
		Homeworld: normalize.String(rec["homeworld"]),
		Films:     list(rec, "films"),
		Species:   list(rec, "species"),
		Vehicles:  list(rec, "vehicles"),
		Starships: list(rec, "starships"),
	}, nil
}

// MapMovie maps a films record. A record without a valid release date or
// episode number is rejected.
func MapMovie(rec swapi.Record) (*models.Movie, error) {
	title, err := requiredString(rec, "title")
	if err != nil {
		return nil, err
	}
	released, ok := normalize.Date(rec["release_date"])
	if !ok {
		return nil, fmt.Errorf("%w: release_date %v is not YYYY-MM-DD", ErrInvalidRecord, rec["release_date"])
	}
	episode := normalize.Int(rec["episode_id"])
	if episode == nil {
		return nil, fmt.Errorf("%w: missing episode_id", ErrInvalidRecord)
	}

	text := func(field string) string {
		if s := normalize.String(rec[field]); s != nil {
			return *s
		}
		return ""
	}

	return &models.Movie{
		Title:        title,
		EpisodeID:    *episode,
		OpeningCrawl: text("opening_crawl"),
		Director:     text("director"),
		Producer:     text("producer"),
		ReleaseDate:  models.NewDate(released),
		Characters:   list(rec, "characters"),
		Planets:      list(rec, "planets"),
		Starships:    list(rec, "starships"),
		Vehicles:     list(rec, "vehicles"),
		Species:      list(rec, "species"),
	}, nil
}

// MapPlanet maps a planets record
func MapPlanet(rec swapi.Record) (*models.Planet, error) {
	name, err := requiredString(rec, "name")
	if err != nil {
		return nil, err
	}
	return &models.Planet{
		Name:           name,
		RotationPeriod: normalize.Int(rec["rotation_period"]),
		OrbitalPeriod:  normalize.Int(rec["orbital_period"]),
		Diameter:       normalize.Int(rec["diameter"]),
		Climate:        normalize.String(rec["climate"]),
		Gravity:        normalize.String(rec["gravity"]),
		Terrain:        normalize.String(rec["terrain"]),
		SurfaceWater:   normalize.Int(rec["surface_water"]),
		Population:     normalize.Int(rec["population"]),
	}, nil
}

// MapStarship maps a starships record
func MapStarship(rec swapi.Record) (*models.Starship, error) {
	name, err := requiredString(rec, "name")
	if err != nil {
		return nil, err
	}
	return &models.Starship{
		Name:                 name,
		Model:                normalize.String(rec["model"]),
		Manufacturer:         normalize.String(rec["manufacturer"]),
		CostInCredits:        normalize.Int(rec["cost_in_credits"]),
		Length:               normalize.Float(rec["length"]),
		MaxAtmospheringSpeed: normalize.Int(rec["max_atmosphering_speed"]),
		Crew:                 normalize.Int(rec["crew"]),
		Passengers:           normalize.Int(rec["passengers"]),
		CargoCapacity:        normalize.Int(rec["cargo_capacity"]),
		Consumables:          normalize.String(rec["consumables"]),
		HyperdriveRating:     normalize.Float(rec["hyperdrive_rating"]),
		MGLT:                 normalize.Int(rec["MGLT"]),
		StarshipClass:        normalize.String(rec["starship_class"]),
	}, nil
}

// MapSpecies maps a species record. Colorations arrive as comma separated
// strings and are stored as lists.
func MapSpecies(rec swapi.Record) (*models.Species, error) {
	name, err := requiredString(rec, "name")
	if err != nil {
		return nil, err
	}
	return &models.Species{
		Name:            name,
		Classification:  normalize.String(rec["classification"]),
		Designation:     normalize.String(rec["designation"]),
		AverageHeight:   normalize.Float(rec["average_height"]),
		SkinColors:      list(rec, "skin_colors"),
		HairColors:      list(rec, "hair_colors"),
		EyeColors:       list(rec, "eye_colors"),
		AverageLifespan: normalize.Int(rec["average_lifespan"]),
		Homeworld:       normalize.String(rec["homeworld"]),
		Language:        normalize.String(rec["language"]),
	}, nil
}

// MapVehicle maps a vehicles record, keeping the reported values as text
func MapVehicle(rec swapi.Record) (*models.Vehicle, error) {
	name, err := requiredString(rec, "name")
	if err != nil {
		return nil, err
	}
	model, err := requiredString(rec, "model")
	if err != nil {
		return nil, err
	}
	return &models.Vehicle{
		Name:                 name,
		Model:                model,
		Manufacturer:         normalize.String(rec["manufacturer"]),
		CostInCredits:        normalize.String(rec["cost_in_credits"]),
		Length:               normalize.String(rec["length"]),
		MaxAtmospheringSpeed: normalize.String(rec["max_atmosphering_speed"]),
		Crew:                 normalize.String(rec["crew"]),
		Passengers:           normalize.String(rec["passengers"]),
		CargoCapacity:        normalize.String(rec["cargo_capacity"]),
		Consumables:          normalize.String(rec["consumables"]),
		VehicleClass:         normalize.String(rec["vehicle_class"]),
	}, nil
}
