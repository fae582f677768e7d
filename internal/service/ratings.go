package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/filmgrid/movie-catalog/internal/domain"
	"github.com/filmgrid/movie-catalog/internal/repository"
)

// AddRating records a score for a movie after checking the movie exists and
// the score is within bounds.
func (s *Service) AddRating(ctx context.Context, movieID int64, score int) (domain.Rating, error) {
	if err := s.checkMovieExists(ctx, movieID); err != nil {
		return domain.Rating{}, err
	}
	if score < minScore || score > maxScore {
		return domain.Rating{}, &ValidationError{
			Message: fmt.Sprintf("score must be an integer between %d and %d", minScore, maxScore),
		}
	}
	return s.repo.Ratings.Create(ctx, repository.RatingCreateParams{
		MovieID: movieID,
		Score:   score,
	})
}

// ListRatings returns all ratings for a movie.
func (s *Service) ListRatings(ctx context.Context, movieID int64) ([]domain.Rating, error) {
	if err := s.checkMovieExists(ctx, movieID); err != nil {
		return nil, err
	}
	return s.repo.Ratings.ListByMovie(ctx, movieID)
}

// GetMovieStats computes the average rating and rating count for a movie
// from the current rows; nothing is cached between calls.
func (s *Service) GetMovieStats(ctx context.Context, movieID int64) (domain.RatingStats, error) {
	if err := s.checkMovieExists(ctx, movieID); err != nil {
		return domain.RatingStats{}, err
	}
	return s.repo.Ratings.Stats(ctx, movieID)
}

func (s *Service) checkMovieExists(ctx context.Context, movieID int64) error {
	if _, err := s.repo.Movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "movie", ID: movieID}
		}
		return err
	}
	return nil
}
