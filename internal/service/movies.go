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

// MovieInput carries the fields for creating a movie.
type MovieInput struct {
	Title       string
	DirectorID  int64
	ReleaseYear int
	Cast        *string
	Description *string
	GenreIDs    []int64
}

// MovieUpdateInput carries the partial-update field set for a movie. Nil
// fields leave the stored value unchanged. A non-nil GenreIDs replaces the
// movie's genre set wholesale; it is never merged.
type MovieUpdateInput struct {
	Title       *string
	DirectorID  *int64
	ReleaseYear *int
	Cast        *string
	Description *string
	GenreIDs    []int64
}

// MovieFilters holds the optional search predicates combined by AND.
type MovieFilters struct {
	Title       *string
	ReleaseYear *int
	GenreName   *string
}

// ListMovies returns a page of movie details matching the filters plus the
// total match count independent of the page window.
func (s *Service) ListMovies(ctx context.Context, skip, limit int, filters MovieFilters) ([]domain.MovieDetails, int64, error) {
	repoFilters := repository.MovieSearchFilters{
		Title:       filters.Title,
		ReleaseYear: filters.ReleaseYear,
		GenreName:   filters.GenreName,
	}

	movies, err := s.repo.Movies.Search(ctx, repoFilters, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Movies.CountWithFilters(ctx, repoFilters)
	if err != nil {
		return nil, 0, err
	}

	details := make([]domain.MovieDetails, 0, len(movies))
	for _, movie := range movies {
		d, err := s.movieDetails(ctx, s.repo, movie)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, d)
	}
	return details, total, nil
}

// GetMovie fetches a movie with director, genres, and rating stats, or
// reports NotFoundError.
func (s *Service) GetMovie(ctx context.Context, id int64) (domain.MovieDetails, error) {
	movie, err := s.repo.Movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.MovieDetails{}, &NotFoundError{Resource: "movie", ID: id}
		}
		return domain.MovieDetails{}, err
	}
	return s.movieDetails(ctx, s.repo, movie)
}

// CreateMovie validates the input, checks the referenced director and
// genres, and persists the movie together with its genre set in one
// transaction. An invalid genre id fails the whole creation; no partial
// genre attachment survives.
func (s *Service) CreateMovie(ctx context.Context, in MovieInput) (domain.MovieDetails, error) {
	title := strings.TrimSpace(in.Title)
	if err := validateMovieTitle(title); err != nil {
		return domain.MovieDetails{}, err
	}
	if err := validateReleaseYear(in.ReleaseYear); err != nil {
		return domain.MovieDetails{}, err
	}

	var out domain.MovieDetails
	err := s.withTx(ctx, func(repo *repository.Repository) error {
		if err := checkDirectorRef(ctx, repo, in.DirectorID); err != nil {
			return err
		}
		if err := checkGenreRefs(ctx, repo, in.GenreIDs); err != nil {
			return err
		}

		movie, err := repo.Movies.Create(ctx, repository.MovieCreateParams{
			Title:       title,
			DirectorID:  in.DirectorID,
			ReleaseYear: in.ReleaseYear,
			Cast:        in.Cast,
			Description: in.Description,
		})
		if err != nil {
			return err
		}
		if len(in.GenreIDs) > 0 {
			if err := repo.Movies.ReplaceGenres(ctx, movie.ID, in.GenreIDs); err != nil {
				return err
			}
		}

		out, err = s.movieDetails(ctx, repo, movie)
		return err
	})
	if err != nil {
		return domain.MovieDetails{}, err
	}
	return out, nil
}

// UpdateMovie applies the supplied fields to an existing movie. When a
// genre set is supplied the old associations are removed and the new ones
// inserted, all in the same transaction as the movie write.
//
// Two concurrent updates to the same movie are not serialized here: each
// runs in its own read-committed transaction and the last commit wins
// wholesale, including the genre set.
func (s *Service) UpdateMovie(ctx context.Context, id int64, in MovieUpdateInput) (domain.MovieDetails, error) {
	params := repository.MovieUpdateParams{
		DirectorID:  in.DirectorID,
		ReleaseYear: in.ReleaseYear,
		Cast:        in.Cast,
		Description: in.Description,
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if err := validateMovieTitle(title); err != nil {
			return domain.MovieDetails{}, err
		}
		params.Title = &title
	}
	if in.ReleaseYear != nil {
		if err := validateReleaseYear(*in.ReleaseYear); err != nil {
			return domain.MovieDetails{}, err
		}
	}

	var out domain.MovieDetails
	err := s.withTx(ctx, func(repo *repository.Repository) error {
		if _, err := repo.Movies.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &NotFoundError{Resource: "movie", ID: id}
			}
			return err
		}
		if in.DirectorID != nil {
			if err := checkDirectorRef(ctx, repo, *in.DirectorID); err != nil {
				return err
			}
		}
		if in.GenreIDs != nil {
			if err := checkGenreRefs(ctx, repo, in.GenreIDs); err != nil {
				return err
			}
		}

		movie, err := repo.Movies.Update(ctx, id, params)
		if err != nil {
			return err
		}
		if in.GenreIDs != nil {
			if err := repo.Movies.ReplaceGenres(ctx, id, in.GenreIDs); err != nil {
				return err
			}
		}

		out, err = s.movieDetails(ctx, repo, movie)
		return err
	})
	if err != nil {
		return domain.MovieDetails{}, err
	}
	return out, nil
}

// DeleteMovie removes a movie, its ratings, and its genre associations in
// one transaction. Ratings go first so no orphaned rating row can survive;
// the movie delete clears the association rows via the store cascade.
func (s *Service) DeleteMovie(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(repo *repository.Repository) error {
		if _, err := repo.Movies.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &NotFoundError{Resource: "movie", ID: id}
			}
			return err
		}
		if err := repo.Ratings.DeleteByMovie(ctx, id); err != nil {
			return err
		}
		return repo.Movies.Delete(ctx, id)
	})
}

func (s *Service) movieDetails(ctx context.Context, repo *repository.Repository, movie domain.Movie) (domain.MovieDetails, error) {
	director, err := repo.Directors.GetByID(ctx, movie.DirectorID)
	if err != nil {
		return domain.MovieDetails{}, fmt.Errorf("load director %d: %w", movie.DirectorID, err)
	}
	genres, err := repo.Movies.ListGenres(ctx, movie.ID)
	if err != nil {
		return domain.MovieDetails{}, fmt.Errorf("load genres for movie %d: %w", movie.ID, err)
	}
	stats, err := repo.Ratings.Stats(ctx, movie.ID)
	if err != nil {
		return domain.MovieDetails{}, err
	}
	return domain.MovieDetails{
		Movie:    movie,
		Director: director,
		Genres:   genres,
		Stats:    stats,
	}, nil
}

// checkDirectorRef verifies the referenced director exists. A dangling
// reference is a client input problem, so it surfaces as ValidationError
// rather than NotFoundError.
func checkDirectorRef(ctx context.Context, repo *repository.Repository, directorID int64) error {
	if _, err := repo.Directors.GetByID(ctx, directorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ValidationError{Message: fmt.Sprintf("director with id %d not found", directorID)}
		}
		return err
	}
	return nil
}

// checkGenreRefs verifies that every supplied genre id resolves to an
// existing genre.
func checkGenreRefs(ctx context.Context, repo *repository.Repository, genreIDs []int64) error {
	for _, genreID := range genreIDs {
		if _, err := repo.Genres.GetByID(ctx, genreID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &ValidationError{Message: fmt.Sprintf("genre with id %d not found", genreID)}
			}
			return err
		}
	}
	return nil
}

func validateMovieTitle(title string) error {
	if title == "" {
		return &ValidationError{Message: "movie title cannot be empty"}
	}
	if utf8.RuneCountInString(title) > maxNameLen {
		return &ValidationError{Message: fmt.Sprintf("movie title must be at most %d characters", maxNameLen)}
	}
	return nil
}

func validateReleaseYear(year int) error {
	if year < minYear || year > maxYear {
		return &ValidationError{Message: fmt.Sprintf("release year must be between %d and %d", minYear, maxYear)}
	}
	return nil
}
