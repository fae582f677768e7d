package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/filmgrid/movie-catalog/internal/domain"
)

// RatingsRepository provides helpers for movie ratings.
type RatingsRepository struct {
	db Querier
}

// RatingCreateParams captures the payload required to record a rating.
type RatingCreateParams struct {
	MovieID int64
	Score   int
}

// Create records a new rating for a movie. created_at is set by the store
// and immutable afterwards.
func (r *RatingsRepository) Create(ctx context.Context, params RatingCreateParams) (domain.Rating, error) {
	const query = `
        INSERT INTO movie_ratings (movie_id, score)
        VALUES ($1,$2)
        RETURNING id, movie_id, score, created_at
    `
	return scanRating(r.db.QueryRow(ctx, query, params.MovieID, params.Score))
}

// ListByMovie returns all ratings for a movie, oldest first.
func (r *RatingsRepository) ListByMovie(ctx context.Context, movieID int64) ([]domain.Rating, error) {
	const query = `
        SELECT id, movie_id, score, created_at
        FROM movie_ratings
        WHERE movie_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]domain.Rating, 0)
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

// DeleteByMovie removes every rating row for a movie. Deleting zero rows is
// not an error; a movie may simply have no ratings yet.
func (r *RatingsRepository) DeleteByMovie(ctx context.Context, movieID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM movie_ratings WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("delete ratings: %w", err)
	}
	return nil
}

// Stats computes the rating average and count for a movie directly from the
// stored rows. AVG over zero rows is NULL, which scans into a nil Average.
func (r *RatingsRepository) Stats(ctx context.Context, movieID int64) (domain.RatingStats, error) {
	const query = `
        SELECT ROUND(AVG(score)::numeric, 1)::float8 AS average,
               COUNT(*)::int8 AS count
        FROM movie_ratings
        WHERE movie_id = $1
    `

	var stats domain.RatingStats
	if err := r.db.QueryRow(ctx, query, movieID).Scan(&stats.Average, &stats.Count); err != nil {
		return domain.RatingStats{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	return stats, nil
}

func scanRating(row pgx.Row) (domain.Rating, error) {
	var rating domain.Rating
	err := row.Scan(
		&rating.ID,
		&rating.MovieID,
		&rating.Score,
		&rating.CreatedAt,
	)
	if err != nil {
		return domain.Rating{}, err
	}
	return rating, nil
}
