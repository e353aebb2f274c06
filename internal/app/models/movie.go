package models

import "time"

// Movie represents a film of the saga
type Movie struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	EpisodeID    int64      `json:"episode_id"`
	OpeningCrawl string     `json:"opening_crawl"`
	Director     string     `json:"director"`
	Producer     string     `json:"producer"`
	ReleaseDate  Date       `json:"release_date"`
	Characters   StringList `json:"characters"`
	Planets      StringList `json:"planets"`
	Starships    StringList `json:"starships"`
	Vehicles     StringList `json:"vehicles"`
	Species      StringList `json:"species"`
	Created      time.Time  `json:"created"`
	Edited       time.Time  `json:"edited"`
}
