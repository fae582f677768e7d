package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/filmgrid/movie-catalog/internal/domain"
)

// GenresRepository provides persistence helpers for genre entities.
type GenresRepository struct {
	db Querier
}

const genreColumns = `
    id,
    name,
    description,
    created_at,
    updated_at
`

// GenreCreateParams bundles the fields required to create a genre.
type GenreCreateParams struct {
	Name        string
	Description *string
}

// GenreUpdateParams carries the partial-update field set. Nil fields are
// left unchanged.
type GenreUpdateParams struct {
	Name        *string
	Description *string
}

// Create inserts a new genre row and returns the stored entity. Uniqueness
// of the name is checked by the service layer beforehand; a store-level
// violation surfaces as a plain error.
func (r *GenresRepository) Create(ctx context.Context, params GenreCreateParams) (domain.Genre, error) {
	query := fmt.Sprintf(`
        INSERT INTO genres (name, description)
        VALUES ($1,$2)
        RETURNING %s
    `, genreColumns)

	return scanGenre(r.db.QueryRow(ctx, query, params.Name, params.Description))
}

// GetByID fetches a genre by its identifier.
func (r *GenresRepository) GetByID(ctx context.Context, id int64) (domain.Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM genres WHERE id = $1`, genreColumns)
	genre, err := scanGenre(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Genre{}, ErrNotFound
		}
		return domain.Genre{}, err
	}
	return genre, nil
}

// GetByName fetches a genre by exact, case-sensitive name.
func (r *GenresRepository) GetByName(ctx context.Context, name string) (domain.Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM genres WHERE name = $1`, genreColumns)
	genre, err := scanGenre(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Genre{}, ErrNotFound
		}
		return domain.Genre{}, err
	}
	return genre, nil
}

// List returns genres ordered by insertion (id ascending).
func (r *GenresRepository) List(ctx context.Context, skip, limit int) ([]domain.Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM genres ORDER BY id ASC OFFSET $1 LIMIT $2`, genreColumns)
	rows, err := r.db.Query(ctx, query, skip, limit)
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

// Count returns the total number of genres.
func (r *GenresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count genres: %w", err)
	}
	return total, nil
}

// Update applies the non-nil fields of params to an existing row.
func (r *GenresRepository) Update(ctx context.Context, id int64, params GenreUpdateParams) (domain.Genre, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Name != nil {
		set = append(set, "name = "+arg(*params.Name))
	}
	if params.Description != nil {
		set = append(set, "description = "+arg(*params.Description))
	}

	query := fmt.Sprintf(`UPDATE genres SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), genreColumns)

	genre, err := scanGenre(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Genre{}, ErrNotFound
		}
		return domain.Genre{}, err
	}
	return genre, nil
}

// Delete removes a genre row. The join-table cascade clears movie
// associations; movies themselves are never touched.
func (r *GenresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanGenre(row pgx.Row) (domain.Genre, error) {
	var genre domain.Genre
	err := row.Scan(
		&genre.ID,
		&genre.Name,
		&genre.Description,
		&genre.CreatedAt,
		&genre.UpdatedAt,
	)
	if err != nil {
		return domain.Genre{}, err
	}
	return genre, nil
}
