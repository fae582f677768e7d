package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/filmgrid/movie-catalog/internal/domain"
)

// DirectorsRepository provides persistence helpers for director entities.
type DirectorsRepository struct {
	db Querier
}

const directorColumns = `
    id,
    name,
    birth_year,
    description,
    created_at,
    updated_at
`

// DirectorCreateParams bundles the fields required to create a director.
type DirectorCreateParams struct {
	Name        string
	BirthYear   *int
	Description *string
}

// DirectorUpdateParams carries the partial-update field set. Nil fields are
// left unchanged.
type DirectorUpdateParams struct {
	Name        *string
	BirthYear   *int
	Description *string
}

// Create inserts a new director row and returns the stored entity.
func (r *DirectorsRepository) Create(ctx context.Context, params DirectorCreateParams) (domain.Director, error) {
	query := fmt.Sprintf(`
        INSERT INTO directors (name, birth_year, description)
        VALUES ($1,$2,$3)
        RETURNING %s
    `, directorColumns)

	row := r.db.QueryRow(ctx, query, params.Name, params.BirthYear, params.Description)
	return scanDirector(row)
}

// GetByID fetches a director by its identifier.
func (r *DirectorsRepository) GetByID(ctx context.Context, id int64) (domain.Director, error) {
	query := fmt.Sprintf(`SELECT %s FROM directors WHERE id = $1`, directorColumns)
	director, err := scanDirector(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Director{}, ErrNotFound
		}
		return domain.Director{}, err
	}
	return director, nil
}

// List returns directors ordered by insertion (id ascending).
func (r *DirectorsRepository) List(ctx context.Context, skip, limit int) ([]domain.Director, error) {
	query := fmt.Sprintf(`SELECT %s FROM directors ORDER BY id ASC OFFSET $1 LIMIT $2`, directorColumns)
	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	directors := make([]domain.Director, 0)
	for rows.Next() {
		director, err := scanDirector(rows)
		if err != nil {
			return nil, err
		}
		directors = append(directors, director)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return directors, nil
}

// Count returns the total number of directors.
func (r *DirectorsRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM directors`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count directors: %w", err)
	}
	return total, nil
}

// Update applies the non-nil fields of params to an existing row.
func (r *DirectorsRepository) Update(ctx context.Context, id int64, params DirectorUpdateParams) (domain.Director, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Name != nil {
		set = append(set, "name = "+arg(*params.Name))
	}
	if params.BirthYear != nil {
		set = append(set, "birth_year = "+arg(*params.BirthYear))
	}
	if params.Description != nil {
		set = append(set, "description = "+arg(*params.Description))
	}

	query := fmt.Sprintf(`UPDATE directors SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), directorColumns)

	director, err := scanDirector(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Director{}, ErrNotFound
		}
		return domain.Director{}, err
	}
	return director, nil
}

// Delete removes a director row. The schema cascades the delete to owned
// movies, their ratings, and their genre associations.
func (r *DirectorsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanDirector(row pgx.Row) (domain.Director, error) {
	var director domain.Director
	err := row.Scan(
		&director.ID,
		&director.Name,
		&director.BirthYear,
		&director.Description,
		&director.CreatedAt,
		&director.UpdatedAt,
	)
	if err != nil {
		return domain.Director{}, err
	}
	return director, nil
}
