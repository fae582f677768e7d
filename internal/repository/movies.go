package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/filmgrid/movie-catalog/internal/domain"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	db Querier
}

const movieColumns = `
    m.id,
    m.title,
    m.director_id,
    m.release_year,
    m.cast_members,
    m.description,
    m.created_at,
    m.updated_at
`

// MovieCreateParams bundles the fields required to create a movie.
type MovieCreateParams struct {
	Title       string
	DirectorID  int64
	ReleaseYear int
	Cast        *string
	Description *string
}

// MovieUpdateParams carries the partial-update field set. Nil fields are
// left unchanged.
type MovieUpdateParams struct {
	Title       *string
	DirectorID  *int64
	ReleaseYear *int
	Cast        *string
	Description *string
}

// MovieSearchFilters encapsulates the optional search predicates. Absent
// filters are omitted from the conjunction.
type MovieSearchFilters struct {
	Title       *string
	ReleaseYear *int
	GenreName   *string
}

// Create inserts a new movie row and returns the stored entity.
func (r *MoviesRepository) Create(ctx context.Context, params MovieCreateParams) (domain.Movie, error) {
	query := fmt.Sprintf(`
        INSERT INTO movies AS m (title, director_id, release_year, cast_members, description)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING %s
    `, movieColumns)

	row := r.db.QueryRow(ctx, query, params.Title, params.DirectorID, params.ReleaseYear, params.Cast, params.Description)
	return scanMovie(row)
}

// GetByID fetches a movie by its identifier.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies m WHERE m.id = $1`, movieColumns)
	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// List returns movies ordered by insertion (id ascending).
func (r *MoviesRepository) List(ctx context.Context, skip, limit int) ([]domain.Movie, error) {
	return r.Search(ctx, MovieSearchFilters{}, skip, limit)
}

// Count returns the total number of movies, unfiltered.
func (r *MoviesRepository) Count(ctx context.Context) (int64, error) {
	return r.CountWithFilters(ctx, MovieSearchFilters{})
}

// buildFilterClause constructs the shared predicate conjunction for Search
// and CountWithFilters. The genre predicate needs a join against the
// association table; callers de-duplicate with DISTINCT because a movie may
// match through multiple genre rows.
func buildFilterClause(filters MovieSearchFilters) (join, where string, args []any) {
	conds := make([]string, 0, 3)
	args = make([]any, 0, 3)
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Title != nil && strings.TrimSpace(*filters.Title) != "" {
		conds = append(conds, "m.title ILIKE "+arg("%"+strings.TrimSpace(*filters.Title)+"%"))
	}
	if filters.ReleaseYear != nil {
		conds = append(conds, "m.release_year = "+arg(*filters.ReleaseYear))
	}
	if filters.GenreName != nil && strings.TrimSpace(*filters.GenreName) != "" {
		join = " JOIN movie_genres mg ON mg.movie_id = m.id JOIN genres g ON g.id = mg.genre_id"
		conds = append(conds, "g.name ILIKE "+arg("%"+strings.TrimSpace(*filters.GenreName)+"%"))
	}

	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	return join, where, args
}

// Search returns movies matching the conjunction of the supplied filters,
// ordered by id ascending, with pagination applied after filtering.
func (r *MoviesRepository) Search(ctx context.Context, filters MovieSearchFilters, skip, limit int) ([]domain.Movie, error) {
	join, where, args := buildFilterClause(filters)

	sel := "SELECT"
	if join != "" {
		sel = "SELECT DISTINCT"
	}
	query := fmt.Sprintf("%s %s FROM movies m%s%s ORDER BY m.id ASC OFFSET $%d LIMIT $%d",
		sel, movieColumns, join, where, len(args)+1, len(args)+2)
	args = append(args, skip, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// CountWithFilters counts the movies matching the same predicate
// conjunction used by Search.
func (r *MoviesRepository) CountWithFilters(ctx context.Context, filters MovieSearchFilters) (int64, error) {
	join, where, args := buildFilterClause(filters)

	query := fmt.Sprintf("SELECT COUNT(DISTINCT m.id) FROM movies m%s%s", join, where)
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return total, nil
}

// Update applies the non-nil fields of params to an existing row.
func (r *MoviesRepository) Update(ctx context.Context, id int64, params MovieUpdateParams) (domain.Movie, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Title != nil {
		set = append(set, "title = "+arg(*params.Title))
	}
	if params.DirectorID != nil {
		set = append(set, "director_id = "+arg(*params.DirectorID))
	}
	if params.ReleaseYear != nil {
		set = append(set, "release_year = "+arg(*params.ReleaseYear))
	}
	if params.Cast != nil {
		set = append(set, "cast_members = "+arg(*params.Cast))
	}
	if params.Description != nil {
		set = append(set, "description = "+arg(*params.Description))
	}

	query := fmt.Sprintf(`UPDATE movies AS m SET %s WHERE m.id = $1 RETURNING %s`,
		strings.Join(set, ", "), movieColumns)

	movie, err := scanMovie(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// Delete removes a movie row. The schema cascades the delete to genre
// associations and ratings.
func (r *MoviesRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceGenres swaps a movie's genre set wholesale: the old associations
// are removed and the new ones inserted. Callers run this inside a
// transaction together with the movie write.
func (r *MoviesRepository) ReplaceGenres(ctx context.Context, movieID int64, genreIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("clear genre associations: %w", err)
	}
	for _, genreID := range genreIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1,$2)`,
			movieID, genreID); err != nil {
			return fmt.Errorf("attach genre %d: %w", genreID, err)
		}
	}
	return nil
}

// ListGenres returns the genres associated with a movie, ordered by genre id.
func (r *MoviesRepository) ListGenres(ctx context.Context, movieID int64) ([]domain.Genre, error) {
	const query = `
        SELECT g.id, g.name, g.description, g.created_at, g.updated_at
        FROM genres g
        JOIN movie_genres mg ON mg.genre_id = g.id
        WHERE mg.movie_id = $1
        ORDER BY g.id ASC
    `
	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.DirectorID,
		&movie.ReleaseYear,
		&movie.Cast,
		&movie.Description,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
