// Package service implements the business rules of the movie catalog:
// input validation, referential checks, and multi-step orchestration
// inside single transaction boundaries. It is the only layer that turns
// rule violations into the NotFound/Validation/Conflict taxonomy the
// adapter maps to status codes.
package service

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/filmgrid/movie-catalog/internal/repository"
)

// Validation bounds shared across entities.
const (
	minYear = 1800
	maxYear = 2100

	maxNameLen      = 255
	maxGenreNameLen = 100

	minScore = 1
	maxScore = 10
)

// TxRunner runs a function inside a transaction, committing on nil and
// rolling back on error. *store.Store satisfies it.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// Service bundles the per-entity business logic over a shared repository.
type Service struct {
	db     TxRunner
	repo   *repository.Repository
	logger *log.Logger
}

// New constructs a Service. The logger falls back to log.Default when nil.
func New(db TxRunner, repo *repository.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{db: db, repo: repo, logger: logger}
}

// withTx runs fn against a repository bound to a fresh transaction. No
// intermediate state of a multi-step operation is ever externally
// observable.
func (s *Service) withTx(ctx context.Context, fn func(repo *repository.Repository) error) error {
	return s.db.WithTx(ctx, func(tx pgx.Tx) error {
		return fn(s.repo.WithTx(tx))
	})
}
