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

// DirectorInput carries the fields for creating a director.
type DirectorInput struct {
	Name        string
	BirthYear   *int
	Description *string
}

// DirectorUpdateInput carries the partial-update field set for a director.
// Nil fields leave the stored value unchanged.
type DirectorUpdateInput struct {
	Name        *string
	BirthYear   *int
	Description *string
}

// ListDirectors returns a page of directors plus the unfiltered total.
func (s *Service) ListDirectors(ctx context.Context, skip, limit int) ([]domain.Director, int64, error) {
	directors, err := s.repo.Directors.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Directors.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return directors, total, nil
}

// GetDirector fetches a director or reports NotFoundError.
func (s *Service) GetDirector(ctx context.Context, id int64) (domain.Director, error) {
	director, err := s.repo.Directors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Director{}, &NotFoundError{Resource: "director", ID: id}
		}
		return domain.Director{}, err
	}
	return director, nil
}

// CreateDirector validates the input and persists a new director.
func (s *Service) CreateDirector(ctx context.Context, in DirectorInput) (domain.Director, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateDirectorName(name); err != nil {
		return domain.Director{}, err
	}
	if err := validateBirthYear(in.BirthYear); err != nil {
		return domain.Director{}, err
	}

	return s.repo.Directors.Create(ctx, repository.DirectorCreateParams{
		Name:        name,
		BirthYear:   in.BirthYear,
		Description: in.Description,
	})
}

// UpdateDirector validates the supplied fields and applies them. Absent
// fields are left unchanged.
func (s *Service) UpdateDirector(ctx context.Context, id int64, in DirectorUpdateInput) (domain.Director, error) {
	params := repository.DirectorUpdateParams{
		BirthYear:   in.BirthYear,
		Description: in.Description,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validateDirectorName(name); err != nil {
			return domain.Director{}, err
		}
		params.Name = &name
	}
	if err := validateBirthYear(in.BirthYear); err != nil {
		return domain.Director{}, err
	}

	director, err := s.repo.Directors.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Director{}, &NotFoundError{Resource: "director", ID: id}
		}
		return domain.Director{}, err
	}
	return director, nil
}

// DeleteDirector removes a director. The store cascades the delete to all
// owned movies and, transitively, their ratings and genre associations.
func (s *Service) DeleteDirector(ctx context.Context, id int64) error {
	if err := s.repo.Directors.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "director", ID: id}
		}
		return err
	}
	return nil
}

func validateDirectorName(name string) error {
	if name == "" {
		return &ValidationError{Message: "director name cannot be empty"}
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return &ValidationError{Message: fmt.Sprintf("director name must be at most %d characters", maxNameLen)}
	}
	return nil
}

func validateBirthYear(year *int) error {
	if year != nil && (*year < minYear || *year > maxYear) {
		return &ValidationError{Message: fmt.Sprintf("birth year must be between %d and %d", minYear, maxYear)}
	}
	return nil
}
