package domain

import "time"

// Director represents a person who directed one or more movies.
type Director struct {
	ID          int64
	Name        string
	BirthYear   *int
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
