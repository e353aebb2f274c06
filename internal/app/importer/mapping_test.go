package importer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swcatalog/starwars/internal/app/models"
	"github.com/swcatalog/starwars/internal/swapi"
)

func TestMapCharacter(t *testing.T) {
	c, err := MapCharacter(swapi.Record{
		"name":       "Jabba Desilijic Tiure",
		"height":     "175",
		"mass":       "1,358",
		"hair_color": "n/a",
		"birth_year": "600BBY",
		"films":      []any{"https://swapi.dev/api/films/1/", "https://swapi.dev/api/films/3/"},
		"species":    []any{},
	})
	require.NoError(t, err)
	assert.Equal(t, 175.0, *c.Height)
	assert.Equal(t, 1358.0, *c.Mass)
	assert.Nil(t, c.HairColor)
	assert.Equal(t, "600BBY", *c.BirthYear)
	assert.Len(t, c.Films, 2)
	assert.Equal(t, models.StringList{}, c.Species)
	assert.Equal(t, models.StringList{}, c.Vehicles)
}

func TestMapMovie(t *testing.T) {
	m, err := MapMovie(swapi.Record{
		"title":        "The Empire Strikes Back",
		"episode_id":   json.Number("5"),
		"director":     "Irvin Kershner",
		"release_date": "1980-05-17",
		"planets":      []any{"https://swapi.dev/api/planets/4/"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), m.EpisodeID)
	assert.Equal(t, "1980-05-17", m.ReleaseDate.String())
	assert.Equal(t, models.StringList{"https://swapi.dev/api/planets/4/"}, m.Planets)
	assert.Empty(t, m.Producer)

	_, err = MapMovie(swapi.Record{"title": "Undated", "episode_id": json.Number("1"), "release_date": "May 1980"})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = MapMovie(swapi.Record{"title": "No episode", "release_date": "1999-05-19"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestMapPlanet(t *testing.T) {
	p, err := MapPlanet(swapi.Record{
		"name":            "Bespin",
		"rotation_period": "12",
		"diameter":        json.Number("118000"),
		"surface_water":   "0",
		"population":      "6,000,000",
		"climate":         "temperate",
		"gravity":         "1.5 (surface), 1 standard (Cloud City)",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), *p.RotationPeriod)
	assert.Equal(t, int64(118000), *p.Diameter)
	assert.Equal(t, int64(0), *p.SurfaceWater)
	assert.Equal(t, int64(6000000), *p.Population)
	assert.Nil(t, p.OrbitalPeriod)
	assert.Equal(t, "1.5 (surface), 1 standard (Cloud City)", *p.Gravity)
}

func TestMapStarship(t *testing.T) {
	s, err := MapStarship(swapi.Record{
		"name":                   "Death Star",
		"cost_in_credits":        "1000000000000",
		"length":                 "120000",
		"max_atmosphering_speed": "n/a",
		"crew":                   "342,953",
		"passengers":             "843,342",
		"hyperdrive_rating":      "4.0",
		"MGLT":                   "10",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000000000000), *s.CostInCredits)
	assert.Equal(t, 120000.0, *s.Length)
	assert.Nil(t, s.MaxAtmospheringSpeed)
	assert.Equal(t, int64(342953), *s.Crew)
	assert.Equal(t, 4.0, *s.HyperdriveRating)
	assert.Equal(t, int64(10), *s.MGLT)
}

func TestMapSpecies(t *testing.T) {
	s, err := MapSpecies(swapi.Record{
		"name":             "Wookie",
		"average_height":   "210",
		"skin_colors":      "gray",
		"hair_colors":      "black, brown",
		"eye_colors":       "n/a",
		"average_lifespan": "400",
		"language":         "Shyriiwook",
	})
	require.NoError(t, err)
	assert.Equal(t, 210.0, *s.AverageHeight)
	assert.Equal(t, int64(400), *s.AverageLifespan)
	assert.Equal(t, models.StringList{"gray"}, s.SkinColors)
	assert.Equal(t, models.StringList{"black", "brown"}, s.HairColors)
	assert.Equal(t, models.StringList{}, s.EyeColors)

	s, err = MapSpecies(swapi.Record{"name": "Droid", "average_lifespan": "indefinite"})
	require.NoError(t, err)
	assert.Nil(t, s.AverageLifespan)
}

func TestMapVehicle(t *testing.T) {
	v, err := MapVehicle(swapi.Record{
		"name":            "Sand Crawler",
		"model":           "Digger Crawler",
		"cost_in_credits": "150000",
		"length":          "36.8 ",
		"crew":            "46",
	})
	require.NoError(t, err)
	assert.Equal(t, "150000", *v.CostInCredits)
	assert.Equal(t, "36.8 ", *v.Length)

	_, err = MapVehicle(swapi.Record{"name": "Speeder"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
