package dto

import "github.com/swcatalog/starwars/internal/app/models"

// CreateMovieRequest represents movie creation data
type CreateMovieRequest struct {
	Title        string   `json:"title" binding:"required,notblank" example:"A New Hope"`
	EpisodeID    *int64   `json:"episode_id" binding:"required,min=0" example:"4"`
	OpeningCrawl string   `json:"opening_crawl" binding:"required,notblank" example:"It is a period of civil war."`
	Director     string   `json:"director" binding:"required,notblank" example:"George Lucas"`
	Producer     string   `json:"producer" binding:"required,notblank" example:"Gary Kurtz, Rick McCallum"`
	ReleaseDate  string   `json:"release_date" binding:"required,datetime=2006-01-02" example:"1977-05-25"`
	Characters   []string `json:"characters"`
	Planets      []string `json:"planets"`
	Starships    []string `json:"starships"`
	Vehicles     []string `json:"vehicles"`
	Species      []string `json:"species"`
}

// ToModel converts the request into a movie
func (r *CreateMovieRequest) ToModel() (*models.Movie, error) {
	released, err := models.ParseDate(r.ReleaseDate)
	if err != nil {
		return nil, err
	}
	movie := &models.Movie{
		Title:        r.Title,
		OpeningCrawl: r.OpeningCrawl,
		Director:     r.Director,
		Producer:     r.Producer,
		ReleaseDate:  released,
		Characters:   models.StringList(r.Characters),
		Planets:      models.StringList(r.Planets),
		Starships:    models.StringList(r.Starships),
		Vehicles:     models.StringList(r.Vehicles),
		Species:      models.StringList(r.Species),
	}
	if r.EpisodeID != nil {
		movie.EpisodeID = *r.EpisodeID
	}
	return movie, nil
}
