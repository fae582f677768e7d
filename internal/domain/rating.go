package domain

import "time"

// Rating is a single anonymous score (1-10) submitted for a movie.
type Rating struct {
	ID        int64
	MovieID   int64
	Score     int
	CreatedAt time.Time
}

// RatingStats provides average and count for a movie's ratings.
// Average is nil when the movie has no ratings; a movie cannot be rated 0,
// so nil is unambiguous.
type RatingStats struct {
	Average *float64
	Count   int64
}
