package domain

import "time"

// Movie represents the canonical movie entity in the database/service.
// Every movie belongs to exactly one director; genres are attached through
// the movie_genres join table.
type Movie struct {
	ID          int64
	Title       string
	DirectorID  int64
	ReleaseYear int
	Cast        *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MovieDetails is a movie together with its resolved director, genre set,
// and rating statistics. Read paths return this rather than the bare row.
type MovieDetails struct {
	Movie    Movie
	Director Director
	Genres   []Genre
	Stats    RatingStats
}
