package entity

import (
	"time"
)

type Rating string

const (
	RatingG    Rating = "G"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG-13"
	RatingR    Rating = "R"
)

type Movie struct {
	Base
	Title           string     `db:"title"`
	Description     *string    `db:"description"`
	DurationMinutes int        `db:"duration_minutes"`
	Rating          Rating     `db:"rating"`
	ReleaseDate     *time.Time `db:"release_date"`
	Language        string     `db:"language"`
}
