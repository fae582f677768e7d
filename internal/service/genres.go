package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/filmgrid/movie-catalog/internal/domain"
	"github.com/filmgrid/movie-catalog/internal/repository"
)

// GenreInput carries the fields for creating a genre.
type GenreInput struct {
	Name        string
	Description *string
}

// GenreUpdateInput carries the partial-update field set for a genre.
type GenreUpdateInput struct {
	Name        *string
	Description *string
}

// ListGenres returns a page of genres plus the unfiltered total.
func (s *Service) ListGenres(ctx context.Context, skip, limit int) ([]domain.Genre, int64, error) {
	genres, err := s.repo.Genres.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Genres.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}

// GetGenre fetches a genre or reports NotFoundError.
func (s *Service) GetGenre(ctx context.Context, id int64) (domain.Genre, error) {
	genre, err := s.repo.Genres.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Genre{}, &NotFoundError{Resource: "genre", ID: id}
		}
		return domain.Genre{}, err
	}
	return genre, nil
}

// CreateGenre validates the input, enforces name uniqueness, and persists a
// new genre.
func (s *Service) CreateGenre(ctx context.Context, in GenreInput) (domain.Genre, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateGenreName(name); err != nil {
		return domain.Genre{}, err
	}
	if err := s.checkGenreNameFree(ctx, name, 0); err != nil {
		return domain.Genre{}, err
	}

	return s.repo.Genres.Create(ctx, repository.GenreCreateParams{
		Name:        name,
		Description: in.Description,
	})
}

// UpdateGenre validates the supplied fields and applies them. A rename to
// the genre's own current name is allowed.
func (s *Service) UpdateGenre(ctx context.Context, id int64, in GenreUpdateInput) (domain.Genre, error) {
	params := repository.GenreUpdateParams{Description: in.Description}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validateGenreName(name); err != nil {
			return domain.Genre{}, err
		}
		if err := s.checkGenreNameFree(ctx, name, id); err != nil {
			return domain.Genre{}, err
		}
		params.Name = &name
	}

	genre, err := s.repo.Genres.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Genre{}, &NotFoundError{Resource: "genre", ID: id}
		}
		return domain.Genre{}, err
	}
	return genre, nil
}

// DeleteGenre removes a genre and its movie associations. Movies are never
// deleted as a side effect.
func (s *Service) DeleteGenre(ctx context.Context, id int64) error {
	if err := s.repo.Genres.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "genre", ID: id}
		}
		return err
	}
	return nil
}

// checkGenreNameFree reports ConflictError when name is already taken by a
// genre other than selfID. The match is exact and case-sensitive.
func (s *Service) checkGenreNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.repo.Genres.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return &ConflictError{Message: fmt.Sprintf("genre %q already exists", name)}
}

func validateGenreName(name string) error {
	if name == "" {
		return &ValidationError{Message: "genre name cannot be empty"}
	}
	if utf8.RuneCountInString(name) > maxGenreNameLen {
		return &ValidationError{Message: fmt.Sprintf("genre name must be at most %d characters", maxGenreNameLen)}
	}
	return nil
}
