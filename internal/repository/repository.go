package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmgrid/movie-catalog/internal/store"
)

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("repository: not found")

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code runs
// standalone or inside a transaction handle.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository aggregates all domain-specific repositories.
type Repository struct {
	Directors *DirectorsRepository
	Genres    *GenresRepository
	Movies    *MoviesRepository
	Ratings   *RatingsRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithQuerier(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return NewWithQuerier(pool)
}

// NewWithQuerier binds all repositories to the given querier.
func NewWithQuerier(q Querier) *Repository {
	return &Repository{
		Directors: &DirectorsRepository{db: q},
		Genres:    &GenresRepository{db: q},
		Movies:    &MoviesRepository{db: q},
		Ratings:   &RatingsRepository{db: q},
	}
}

// WithTx returns a Repository whose operations all run on the given
// transaction.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return NewWithQuerier(tx)
}
